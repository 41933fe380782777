package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SleepLog struct {
	gorm.Model
	UserID       uint            `gorm:"index;not null" json:"user_id"`
	SleepDate    time.Time       `gorm:"index;not null" json:"sleep_date"`
	HoursSlept   decimal.Decimal `gorm:"type:numeric(4,1)" json:"hours_slept"`
	SleepQuality int             `json:"sleep_quality"` // 1-5
	Bedtime      *time.Time      `json:"bedtime,omitempty"`
	WakeTime     *time.Time      `json:"wake_time,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}
