package services

import (
	"context"
	"strings"
	"time"

	"backend/models"
	"backend/storage"

	"github.com/shopspring/decimal"
)

const recentLimit = 5

// TrackerService owns the entry lifecycle: validate, default the log
// date to today, persist. Entries are immutable after creation; the only
// mutation is an owner delete.
type TrackerService struct {
	store storage.Store
	loc   *time.Location
}

func NewTrackerService(store storage.Store, loc *time.Location) *TrackerService {
	return &TrackerService{store: store, loc: loc}
}

type MealInput struct {
	FoodName string           `json:"food_name"`
	MealType string           `json:"meal_type"`
	Calories *int             `json:"calories"`
	ProteinG decimal.Decimal  `json:"protein_g"`
	CarbsG   decimal.Decimal  `json:"carbs_g"`
	FatsG    decimal.Decimal  `json:"fats_g"`
	Portion  string           `json:"portion"`
	Notes    string           `json:"notes"`
	LogDate  string           `json:"log_date"` // YYYY-MM-DD, defaults to today
}

func (s *TrackerService) LogMeal(ctx context.Context, userID uint, in MealInput) (*models.MealLog, error) {
	in.FoodName = strings.TrimSpace(in.FoodName)
	if in.FoodName == "" {
		return nil, validationf("food name is required")
	}
	if in.Calories == nil {
		return nil, validationf("calories is required")
	}
	if *in.Calories < 0 {
		return nil, validationf("calories must be non-negative")
	}
	if in.MealType != "" && !models.ValidMealType(in.MealType) {
		return nil, validationf("meal type must be one of breakfast, lunch, dinner, snack")
	}
	if in.ProteinG.Sign() < 0 || in.CarbsG.Sign() < 0 || in.FatsG.Sign() < 0 {
		return nil, validationf("nutrient grams must be non-negative")
	}
	day, err := parseDay(in.LogDate, s.loc)
	if err != nil {
		return nil, err
	}

	meal := &models.MealLog{
		UserID:   userID,
		FoodName: in.FoodName,
		MealType: in.MealType,
		Calories: *in.Calories,
		ProteinG: in.ProteinG.Round(1),
		CarbsG:   in.CarbsG.Round(1),
		FatsG:    in.FatsG.Round(1),
		Portion:  in.Portion,
		Notes:    in.Notes,
		LogDate:  day,
	}
	if err := s.store.CreateMeal(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *TrackerService) MealsForDay(ctx context.Context, userID uint, date string) ([]models.MealLog, error) {
	day, err := parseDay(date, s.loc)
	if err != nil {
		return nil, err
	}
	return s.store.MealsByDate(ctx, userID, day)
}

func (s *TrackerService) DeleteMeal(ctx context.Context, userID, id uint) error {
	return s.store.DeleteMeal(ctx, id, userID)
}

type ExerciseInput struct {
	ExerciseName    string `json:"exercise_name"`
	ExerciseType    string `json:"exercise_type"`
	DurationMinutes *int   `json:"duration_minutes"`
	CaloriesBurned  *int   `json:"calories_burned"`
	Intensity       string `json:"intensity"`
	Notes           string `json:"notes"`
	LogDate         string `json:"log_date"`
}

func (s *TrackerService) LogExercise(ctx context.Context, userID uint, in ExerciseInput) (*models.ExerciseLog, error) {
	in.ExerciseName = strings.TrimSpace(in.ExerciseName)
	if in.ExerciseName == "" {
		return nil, validationf("exercise name is required")
	}
	switch in.Intensity {
	case "", "low", "medium", "high":
	default:
		return nil, validationf("intensity must be low, medium or high")
	}
	e := &models.ExerciseLog{
		UserID:       userID,
		ExerciseName: in.ExerciseName,
		ExerciseType: in.ExerciseType,
		Intensity:    in.Intensity,
		Notes:        in.Notes,
	}
	if in.DurationMinutes != nil {
		if *in.DurationMinutes < 0 {
			return nil, validationf("duration must be non-negative")
		}
		e.DurationMinutes = *in.DurationMinutes
	}
	if in.CaloriesBurned != nil {
		if *in.CaloriesBurned < 0 {
			return nil, validationf("calories burned must be non-negative")
		}
		e.CaloriesBurned = *in.CaloriesBurned
	}
	day, err := parseDay(in.LogDate, s.loc)
	if err != nil {
		return nil, err
	}
	e.LogDate = day
	if err := s.store.CreateExercise(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *TrackerService) ExercisesForDay(ctx context.Context, userID uint, date string) ([]models.ExerciseLog, error) {
	day, err := parseDay(date, s.loc)
	if err != nil {
		return nil, err
	}
	return s.store.ExercisesByDate(ctx, userID, day)
}

func (s *TrackerService) DeleteExercise(ctx context.Context, userID, id uint) error {
	return s.store.DeleteExercise(ctx, id, userID)
}

type SleepInput struct {
	SleepDate    string          `json:"sleep_date"` // YYYY-MM-DD, defaults to today
	HoursSlept   decimal.Decimal `json:"hours_slept"`
	SleepQuality *int            `json:"sleep_quality"`
	Bedtime      *time.Time      `json:"bedtime"`
	WakeTime     *time.Time      `json:"wake_time"`
	Notes        string          `json:"notes"`
}

func (s *TrackerService) LogSleep(ctx context.Context, userID uint, in SleepInput) (*models.SleepLog, error) {
	if in.HoursSlept.Sign() < 0 {
		return nil, validationf("hours slept must be non-negative")
	}
	sl := &models.SleepLog{
		UserID:     userID,
		HoursSlept: in.HoursSlept.Round(1),
		Bedtime:    in.Bedtime,
		WakeTime:   in.WakeTime,
		Notes:      in.Notes,
	}
	if in.SleepQuality != nil {
		if *in.SleepQuality < 1 || *in.SleepQuality > 5 {
			return nil, validationf("sleep quality must be between 1 and 5")
		}
		sl.SleepQuality = *in.SleepQuality
	}
	day, err := parseDay(in.SleepDate, s.loc)
	if err != nil {
		return nil, err
	}
	sl.SleepDate = day
	if err := s.store.CreateSleep(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

type WeightInput struct {
	WeightKg decimal.Decimal `json:"weight_kg"`
	Notes    string          `json:"notes"`
}

func (s *TrackerService) LogWeight(ctx context.Context, userID uint, in WeightInput) (*models.WeightLog, error) {
	if in.WeightKg.Sign() <= 0 {
		return nil, validationf("weight must be positive")
	}
	w := &models.WeightLog{
		UserID:   userID,
		WeightKg: in.WeightKg.Round(1),
		Notes:    in.Notes,
	}
	if err := s.store.CreateWeight(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

type WaterInput struct {
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
}

func (s *TrackerService) LogWater(ctx context.Context, userID uint, in WaterInput) (*models.WaterLog, error) {
	if in.Amount.Sign() <= 0 {
		return nil, validationf("amount must be positive")
	}
	if in.Unit == "" {
		in.Unit = models.WaterUnitGlasses
	}
	if !models.ValidWaterUnit(in.Unit) {
		return nil, validationf("unit must be glasses, ml or oz")
	}
	w := &models.WaterLog{
		UserID: userID,
		Amount: in.Amount.Round(1),
		Unit:   in.Unit,
	}
	if err := s.store.CreateWater(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *TrackerService) SleepHistory(ctx context.Context, userID uint, limit int) ([]models.SleepLog, error) {
	return s.store.ListSleep(ctx, userID, limit)
}

func (s *TrackerService) WeightHistory(ctx context.Context, userID uint, limit int) ([]models.WeightLog, error) {
	return s.store.ListWeights(ctx, userID, limit)
}

func (s *TrackerService) WaterForDay(ctx context.Context, userID uint, date string) ([]models.WaterLog, error) {
	day, err := parseDay(date, s.loc)
	if err != nil {
		return nil, err
	}
	return s.store.WaterByDate(ctx, userID, day)
}

// RecentActivity is the combined feed behind GET /api/recent: the latest
// handful of each category for the dashboard cards.
type RecentActivity struct {
	Meals     []models.MealLog     `json:"meals"`
	Exercises []models.ExerciseLog `json:"exercises"`
	Sleep     []models.SleepLog    `json:"sleep"`
	Weights   []models.WeightLog   `json:"weights"`
	Water     []models.WaterLog    `json:"water"`
}

func (s *TrackerService) Recent(ctx context.Context, userID uint) (*RecentActivity, error) {
	meals, err := s.store.ListMeals(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}
	exercises, err := s.store.ListExercises(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}
	sleep, err := s.store.ListSleep(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}
	weights, err := s.store.ListWeights(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}
	water, err := s.store.ListWater(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}
	return &RecentActivity{
		Meals:     meals,
		Exercises: exercises,
		Sleep:     sleep,
		Weights:   weights,
		Water:     water,
	}, nil
}
