package services

import (
	"context"
	"errors"
	"time"

	"backend/models"
	"backend/storage"

	"github.com/shopspring/decimal"
)

// Progress returns actual/goal capped at 1. A goal of zero or less means
// "no target": progress is 0, never a division by zero. Total function,
// no error paths.
func Progress(actual, goal decimal.Decimal) float64 {
	if goal.Sign() <= 0 {
		return 0
	}
	r, _ := actual.Div(goal).Float64()
	if r > 1 {
		return 1
	}
	return r
}

// NutrientProgress is one dashboard gauge.
type NutrientProgress struct {
	Consumed decimal.Decimal `json:"consumed"`
	Goal     decimal.Decimal `json:"goal"`
	Ratio    float64         `json:"ratio"` // 0..1, the UI multiplies by 100
}

// Dashboard is the payload behind GET /api/dashboard and the websocket
// refresh pushes.
type Dashboard struct {
	Date     string                      `json:"date"`
	Goals    *models.DailyGoal           `json:"goals"`
	Summary  *DailySummary               `json:"summary"`
	Progress map[string]NutrientProgress `json:"progress"`
}

type GoalService struct {
	store    storage.Store
	summary  *SummaryService
	defaults models.DailyGoal
}

func NewGoalService(store storage.Store, summary *SummaryService, defaults models.DailyGoal) *GoalService {
	return &GoalService{store: store, summary: summary, defaults: defaults}
}

// GoalsFor returns the user's goal row, or the configured defaults when
// the user never set one.
func (s *GoalService) GoalsFor(ctx context.Context, userID uint) (*models.DailyGoal, error) {
	goal, err := s.store.GoalByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g := s.defaults
			g.UserID = userID
			return &g, nil
		}
		return nil, err
	}
	return goal, nil
}

// Evaluate maps a summary against a goal, one capped ratio per tracked
// metric.
func (s *GoalService) Evaluate(sum *DailySummary, goal *models.DailyGoal) map[string]NutrientProgress {
	calories := decimal.NewFromInt(int64(sum.TotalCalories))
	exercise := decimal.NewFromInt(int64(sum.TotalExerciseMinutes))
	sleep := decimal.Zero
	if sum.LatestSleep != nil {
		sleep = sum.LatestSleep.HoursSlept
	}

	goalCalories := decimal.NewFromInt(int64(goal.Calories))
	goalExercise := decimal.NewFromInt(int64(goal.ExerciseMinutes))

	entry := func(actual, target decimal.Decimal) NutrientProgress {
		return NutrientProgress{Consumed: actual, Goal: target, Ratio: Progress(actual, target)}
	}

	return map[string]NutrientProgress{
		"calories": entry(calories, goalCalories),
		"protein":  entry(sum.TotalProtein, goal.ProteinG),
		"carbs":    entry(sum.TotalCarbs, goal.CarbsG),
		"fats":     entry(sum.TotalFats, goal.FatsG),
		"water":    entry(sum.TotalWaterGlasses, goal.WaterGlasses),
		"exercise": entry(exercise, goalExercise),
		"sleep":    entry(sleep, goal.SleepHours),
	}
}

// ParseDate resolves a YYYY-MM-DD query param in the app time zone;
// empty means today.
func (s *GoalService) ParseDate(date string) (time.Time, error) {
	return parseDay(date, s.summary.loc)
}

// GoalsAndProgress assembles the dashboard for the day containing date.
func (s *GoalService) GoalsAndProgress(ctx context.Context, userID uint, date time.Time) (*Dashboard, error) {
	goal, err := s.GoalsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	sum, err := s.summary.Summary(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Date:     sum.Date,
		Goals:    goal,
		Summary:  sum,
		Progress: s.Evaluate(sum, goal),
	}, nil
}

type GoalInput struct {
	Calories        int             `json:"calories"`
	ProteinG        decimal.Decimal `json:"protein_g"`
	CarbsG          decimal.Decimal `json:"carbs_g"`
	FatsG           decimal.Decimal `json:"fats_g"`
	WaterGlasses    decimal.Decimal `json:"water_glasses"`
	ExerciseMinutes int             `json:"exercise_minutes"`
	SleepHours      decimal.Decimal `json:"sleep_hours"`
}

// UpsertGoal creates or replaces the user's daily targets.
func (s *GoalService) UpsertGoal(ctx context.Context, userID uint, in GoalInput) (*models.DailyGoal, error) {
	if in.Calories < 0 || in.ExerciseMinutes < 0 ||
		in.ProteinG.Sign() < 0 || in.CarbsG.Sign() < 0 || in.FatsG.Sign() < 0 ||
		in.WaterGlasses.Sign() < 0 || in.SleepHours.Sign() < 0 {
		return nil, validationf("goal values must be non-negative")
	}
	g := &models.DailyGoal{
		UserID:          userID,
		Calories:        in.Calories,
		ProteinG:        in.ProteinG,
		CarbsG:          in.CarbsG,
		FatsG:           in.FatsG,
		WaterGlasses:    in.WaterGlasses,
		ExerciseMinutes: in.ExerciseMinutes,
		SleepHours:      in.SleepHours,
	}
	if err := s.store.SaveGoal(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
