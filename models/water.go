package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	WaterUnitGlasses = "glasses"
	WaterUnitML      = "ml"
	WaterUnitOz      = "oz"
)

type WaterLog struct {
	gorm.Model
	UserID uint            `gorm:"index;not null" json:"user_id"`
	Amount decimal.Decimal `gorm:"type:numeric(6,1);not null" json:"amount"`
	Unit   string          `gorm:"default:glasses" json:"unit"` // glasses|ml|oz
}

func ValidWaterUnit(u string) bool {
	switch u {
	case WaterUnitGlasses, WaterUnitML, WaterUnitOz:
		return true
	}
	return false
}
