package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Meal slots accepted by the API.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealLog is one logged food item. Immutable once created; the only
// mutation allowed is an owner delete.
type MealLog struct {
	gorm.Model
	UserID   uint            `gorm:"index;not null" json:"user_id"`
	FoodName string          `gorm:"not null" json:"food_name"`
	MealType string          `json:"meal_type"` // breakfast|lunch|dinner|snack
	Calories int             `gorm:"not null" json:"calories"`
	ProteinG decimal.Decimal `gorm:"type:numeric(6,1)" json:"protein_g"`
	CarbsG   decimal.Decimal `gorm:"type:numeric(6,1)" json:"carbs_g"`
	FatsG    decimal.Decimal `gorm:"type:numeric(6,1)" json:"fats_g"`
	Portion  string          `json:"portion,omitempty"`
	Notes    string          `json:"notes,omitempty"`
	LogDate  time.Time       `gorm:"index;not null" json:"log_date"` // midnight in the app time zone
}

func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}
