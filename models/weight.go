package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WeightLog is an append-only time series; RecordedAt is CreatedAt.
type WeightLog struct {
	gorm.Model
	UserID   uint            `gorm:"index;not null" json:"user_id"`
	WeightKg decimal.Decimal `gorm:"type:numeric(5,1);not null" json:"weight_kg"`
	Notes    string          `json:"notes,omitempty"`
}
