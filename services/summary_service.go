package services

import (
	"context"
	"errors"
	"time"

	"backend/models"
	"backend/storage"

	"github.com/shopspring/decimal"
)

// Glass equivalents for water logged in other units.
var (
	mlPerGlass = decimal.NewFromInt(250)
	ozPerGlass = decimal.NewFromInt(8)
)

// DailySummary is the rollup of one user's logged events for one day.
// All totals are zero-filled when nothing was logged; LatestSleep is the
// most recent sleep entry on or before the day, from any prior day.
type DailySummary struct {
	Date                 string           `json:"date"`
	TotalCalories        int              `json:"total_calories"`
	TotalProtein         decimal.Decimal  `json:"total_protein_g"`
	TotalCarbs           decimal.Decimal  `json:"total_carbs_g"`
	TotalFats            decimal.Decimal  `json:"total_fats_g"`
	MealCount            int              `json:"meal_count"`
	TotalExerciseMinutes int              `json:"total_exercise_minutes"`
	TotalCaloriesBurned  int              `json:"total_calories_burned"`
	ExerciseCount        int              `json:"exercise_count"`
	TotalWaterGlasses    decimal.Decimal  `json:"total_water_glasses"`
	LatestSleep          *models.SleepLog `json:"latest_sleep,omitempty"`
}

// SummaryService is the daily aggregator: a pure read over the store,
// no caching, no side effects.
type SummaryService struct {
	store storage.Store
	loc   *time.Location
}

func NewSummaryService(store storage.Store, loc *time.Location) *SummaryService {
	return &SummaryService{store: store, loc: loc}
}

// Summary rolls up totals for the day containing date. Zero rows is a
// valid all-zero result, never an error.
func (s *SummaryService) Summary(ctx context.Context, userID uint, date time.Time) (*DailySummary, error) {
	day := dayStart(date, s.loc)

	out := &DailySummary{
		Date:         day.Format("2006-01-02"),
		TotalProtein: decimal.Zero,
		TotalCarbs:   decimal.Zero,
		TotalFats:    decimal.Zero,
	}

	meals, err := s.store.MealsByDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	for _, m := range meals {
		out.TotalCalories += m.Calories
		out.TotalProtein = out.TotalProtein.Add(m.ProteinG)
		out.TotalCarbs = out.TotalCarbs.Add(m.CarbsG)
		out.TotalFats = out.TotalFats.Add(m.FatsG)
	}
	out.MealCount = len(meals)

	exercises, err := s.store.ExercisesByDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	for _, e := range exercises {
		out.TotalExerciseMinutes += e.DurationMinutes
		out.TotalCaloriesBurned += e.CaloriesBurned
	}
	out.ExerciseCount = len(exercises)

	water, err := s.store.WaterByDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	glasses := decimal.Zero
	for _, w := range water {
		glasses = glasses.Add(waterToGlasses(w))
	}
	out.TotalWaterGlasses = glasses

	sleep, err := s.store.LatestSleep(ctx, userID, day)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	out.LatestSleep = sleep // nil when none exists

	return out, nil
}

func waterToGlasses(w models.WaterLog) decimal.Decimal {
	switch w.Unit {
	case models.WaterUnitML:
		return w.Amount.Div(mlPerGlass)
	case models.WaterUnitOz:
		return w.Amount.Div(ozPerGlass)
	default:
		return w.Amount
	}
}
