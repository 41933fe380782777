package models

import (
	"time"

	"gorm.io/gorm"
)

type ExerciseLog struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	ExerciseName    string    `gorm:"not null" json:"exercise_name"`
	ExerciseType    string    `json:"exercise_type,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  int       `json:"calories_burned"`
	Intensity       string    `json:"intensity,omitempty"` // low|medium|high
	Notes           string    `json:"notes,omitempty"`
	LogDate         time.Time `gorm:"index;not null" json:"log_date"`
}
