package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FoodItem is a catalog entry backing the meal-log autocomplete.
// Seeded out-of-band; not owned by any user.
type FoodItem struct {
	gorm.Model
	Name      string          `gorm:"uniqueIndex;not null" json:"name"`
	LocalName string          `json:"local_name,omitempty"`
	Calories  int             `json:"calories"` // per serving
	ProteinG  decimal.Decimal `gorm:"type:numeric(6,1)" json:"protein_g"`
	CarbsG    decimal.Decimal `gorm:"type:numeric(6,1)" json:"carbs_g"`
	FatsG     decimal.Decimal `gorm:"type:numeric(6,1)" json:"fats_g"`
	Category  string          `json:"category,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
}
