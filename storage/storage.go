package storage

import (
	"context"
	"errors"
	"time"

	"backend/models"
)

// ErrNotFound is returned for lookups and deletes that match nothing.
// Deletes return it both for a missing id and for a row owned by another
// user, so callers cannot probe for other users' data.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail guards the unique index on users.email when two
// signups race past the existence check.
var ErrDuplicateEmail = errors.New("email already registered")

// Store is the event log behind the trackers and the dashboard. Two
// implementations exist: GormStore (Postgres) and MemoryStore (tests).
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error

	// Meals. day must be midnight in the app time zone.
	CreateMeal(ctx context.Context, m *models.MealLog) error
	MealsByDate(ctx context.Context, userID uint, day time.Time) ([]models.MealLog, error)
	ListMeals(ctx context.Context, userID uint, limit int) ([]models.MealLog, error)
	DeleteMeal(ctx context.Context, id, userID uint) error

	// Exercises
	CreateExercise(ctx context.Context, e *models.ExerciseLog) error
	ExercisesByDate(ctx context.Context, userID uint, day time.Time) ([]models.ExerciseLog, error)
	ListExercises(ctx context.Context, userID uint, limit int) ([]models.ExerciseLog, error)
	DeleteExercise(ctx context.Context, id, userID uint) error

	// Sleep. LatestSleep picks the entry with the greatest sleep date on
	// or before the given day; equal dates break toward the highest id.
	CreateSleep(ctx context.Context, s *models.SleepLog) error
	LatestSleep(ctx context.Context, userID uint, onOrBefore time.Time) (*models.SleepLog, error)
	ListSleep(ctx context.Context, userID uint, limit int) ([]models.SleepLog, error)

	// Weight
	CreateWeight(ctx context.Context, w *models.WeightLog) error
	LatestWeight(ctx context.Context, userID uint) (*models.WeightLog, error)
	ListWeights(ctx context.Context, userID uint, limit int) ([]models.WeightLog, error)

	// Water. Water entries are timestamped, not dated; the day window is
	// [day, day+24h) over CreatedAt.
	CreateWater(ctx context.Context, w *models.WaterLog) error
	WaterByDate(ctx context.Context, userID uint, day time.Time) ([]models.WaterLog, error)
	ListWater(ctx context.Context, userID uint, limit int) ([]models.WaterLog, error)

	// Food catalog
	SearchFoods(ctx context.Context, q string, limit int) ([]models.FoodItem, error)
	CountFoods(ctx context.Context) (int64, error)
	CreateFoods(ctx context.Context, foods []models.FoodItem) error

	// Goals
	GoalByUser(ctx context.Context, userID uint) (*models.DailyGoal, error)
	SaveGoal(ctx context.Context, g *models.DailyGoal) error
}
