package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string  `gorm:"uniqueIndex;not null" json:"email"`
	Password      string  `gorm:"not null" json:"-"`
	FirstName     string  `json:"first_name,omitempty"`
	LastName      string  `json:"last_name,omitempty"`
	HeightCm      float64 `json:"height_cm,omitempty"`
	GoalWeightKg  float64 `json:"goal_weight_kg,omitempty"`
	ActivityLevel string  `json:"activity_level,omitempty"`
}
