package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyGoal holds a user's daily targets. Users without a row fall back
// to the configured defaults.
type DailyGoal struct {
	gorm.Model
	UserID          uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	Calories        int             `json:"calories"` // e.g. 2000 kcal
	ProteinG        decimal.Decimal `gorm:"type:numeric(6,1)" json:"protein_g"`
	CarbsG          decimal.Decimal `gorm:"type:numeric(6,1)" json:"carbs_g"`
	FatsG           decimal.Decimal `gorm:"type:numeric(6,1)" json:"fats_g"`
	WaterGlasses    decimal.Decimal `gorm:"type:numeric(4,1)" json:"water_glasses"`
	ExerciseMinutes int             `json:"exercise_minutes"`
	SleepHours      decimal.Decimal `gorm:"type:numeric(4,1)" json:"sleep_hours"`
}
