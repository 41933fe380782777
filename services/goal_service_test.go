package services_test

import (
	"context"
	"testing"
	"time"

	"backend/models"
	"backend/services"
	"backend/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() models.DailyGoal {
	return models.DailyGoal{
		Calories:        2000,
		ProteinG:        decimal.NewFromInt(100),
		CarbsG:          decimal.NewFromInt(250),
		FatsG:           decimal.NewFromInt(65),
		WaterGlasses:    decimal.NewFromInt(8),
		ExerciseMinutes: 30,
		SleepHours:      decimal.NewFromInt(8),
	}
}

func newGoalFixture() (*storage.MemoryStore, *services.GoalService) {
	store := storage.NewMemoryStore()
	summary := services.NewSummaryService(store, time.UTC)
	return store, services.NewGoalService(store, summary, testDefaults())
}

func TestProgressContract(t *testing.T) {
	t.Parallel()

	g := decimal.NewFromInt(100)
	assert.Equal(t, 0.0, services.Progress(decimal.Zero, g))
	assert.Equal(t, 1.0, services.Progress(g, g))
	assert.Equal(t, 1.0, services.Progress(g.Mul(decimal.NewFromInt(2)), g), "progress is capped, not 2.0")
	assert.Equal(t, 0.0, services.Progress(decimal.NewFromInt(500), decimal.Zero), "zero goal never divides")
	assert.Equal(t, 0.0, services.Progress(decimal.NewFromInt(500), decimal.NewFromInt(-1)))
	assert.InDelta(t, 0.5, services.Progress(decimal.NewFromInt(50), g), 1e-9)
}

func TestEvaluateCapsOvershoot(t *testing.T) {
	t.Parallel()
	_, svc := newGoalFixture()

	sum := &services.DailySummary{
		TotalProtein: dec("125.5"),
		TotalCarbs:   decimal.Zero,
		TotalFats:    decimal.Zero,
	}
	goal := testDefaults()

	progress := svc.Evaluate(sum, &goal)
	assert.Equal(t, 1.0, progress["protein"].Ratio, "125.5 of 100 caps at 1.0, not 1.255")
	assert.Equal(t, 0.0, progress["calories"].Ratio)
}

func TestEvaluateIncludesSleepFromLatestEntry(t *testing.T) {
	t.Parallel()
	_, svc := newGoalFixture()

	goal := testDefaults()
	sum := &services.DailySummary{
		TotalProtein: decimal.Zero,
		TotalCarbs:   decimal.Zero,
		TotalFats:    decimal.Zero,
		LatestSleep:  &models.SleepLog{HoursSlept: dec("6.0")},
	}

	progress := svc.Evaluate(sum, &goal)
	assert.InDelta(t, 0.75, progress["sleep"].Ratio, 1e-9)

	sum.LatestSleep = nil
	progress = svc.Evaluate(sum, &goal)
	assert.Equal(t, 0.0, progress["sleep"].Ratio)
}

func TestGoalsForFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	_, svc := newGoalFixture()

	goal, err := svc.GoalsFor(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), goal.UserID)
	assert.Equal(t, 2000, goal.Calories)
}

func TestUpsertGoalRoundTrips(t *testing.T) {
	t.Parallel()
	_, svc := newGoalFixture()
	ctx := context.Background()

	_, err := svc.UpsertGoal(ctx, 7, services.GoalInput{
		Calories: 1800,
		ProteinG: dec("150"),
	})
	require.NoError(t, err)

	goal, err := svc.GoalsFor(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1800, goal.Calories)
	assert.True(t, goal.ProteinG.Equal(dec("150")))

	// second upsert replaces, not duplicates
	_, err = svc.UpsertGoal(ctx, 7, services.GoalInput{Calories: 2200})
	require.NoError(t, err)
	goal, err = svc.GoalsFor(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2200, goal.Calories)
}

func TestUpsertGoalRejectsNegatives(t *testing.T) {
	t.Parallel()
	_, svc := newGoalFixture()

	_, err := svc.UpsertGoal(context.Background(), 7, services.GoalInput{Calories: -1})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestGoalsAndProgressEndToEnd(t *testing.T) {
	t.Parallel()
	store, svc := newGoalFixture()
	ctx := context.Background()
	d := day(2026, 3, 10)

	for _, cal := range []int{300, 450, 220} {
		require.NoError(t, store.CreateMeal(ctx, &models.MealLog{
			UserID: 1, FoodName: "food", Calories: cal, ProteinG: dec("10.0"), LogDate: d,
		}))
	}

	dash, err := svc.GoalsAndProgress(ctx, 1, d)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", dash.Date)
	assert.Equal(t, 970, dash.Summary.TotalCalories)
	assert.Equal(t, 3, dash.Summary.MealCount)
	assert.InDelta(t, 0.485, dash.Progress["calories"].Ratio, 1e-9)
	assert.InDelta(t, 0.3, dash.Progress["protein"].Ratio, 1e-9)
}
