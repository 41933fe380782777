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

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newSummaryFixture() (*storage.MemoryStore, *services.SummaryService) {
	store := storage.NewMemoryStore()
	return store, services.NewSummaryService(store, time.UTC)
}

func TestSummaryEmptyDayIsAllZero(t *testing.T) {
	t.Parallel()
	_, svc := newSummaryFixture()

	sum, err := svc.Summary(context.Background(), 1, day(2026, 3, 10))
	require.NoError(t, err)

	assert.Equal(t, 0, sum.TotalCalories)
	assert.True(t, sum.TotalProtein.IsZero())
	assert.True(t, sum.TotalCarbs.IsZero())
	assert.True(t, sum.TotalFats.IsZero())
	assert.Equal(t, 0, sum.MealCount)
	assert.Equal(t, 0, sum.TotalExerciseMinutes)
	assert.Equal(t, 0, sum.TotalCaloriesBurned)
	assert.Equal(t, 0, sum.ExerciseCount)
	assert.True(t, sum.TotalWaterGlasses.IsZero())
	assert.Nil(t, sum.LatestSleep)
}

func TestSummarySumsMealsForTheDay(t *testing.T) {
	t.Parallel()
	store, svc := newSummaryFixture()
	ctx := context.Background()
	d := day(2026, 3, 10)

	for _, cal := range []int{300, 450, 220} {
		require.NoError(t, store.CreateMeal(ctx, &models.MealLog{
			UserID: 1, FoodName: "food", Calories: cal, LogDate: d,
		}))
	}
	// another user and another day must not leak in
	require.NoError(t, store.CreateMeal(ctx, &models.MealLog{
		UserID: 2, FoodName: "other", Calories: 999, LogDate: d,
	}))
	require.NoError(t, store.CreateMeal(ctx, &models.MealLog{
		UserID: 1, FoodName: "yesterday", Calories: 999, LogDate: day(2026, 3, 9),
	}))

	sum, err := svc.Summary(ctx, 1, d)
	require.NoError(t, err)
	assert.Equal(t, 970, sum.TotalCalories)
	assert.Equal(t, 3, sum.MealCount)
}

func TestSummaryDecimalSumsDoNotDrift(t *testing.T) {
	t.Parallel()
	store, svc := newSummaryFixture()
	ctx := context.Background()
	d := day(2026, 3, 10)

	// 1000 entries of 0.1 g protein each must sum to exactly 100.0
	for i := 0; i < 1000; i++ {
		require.NoError(t, store.CreateMeal(ctx, &models.MealLog{
			UserID:   1,
			FoodName: "crumb",
			Calories: 1,
			ProteinG: dec("0.1"),
			LogDate:  d,
		}))
	}

	sum, err := svc.Summary(ctx, 1, d)
	require.NoError(t, err)
	assert.True(t, sum.TotalProtein.Equal(dec("100.0")),
		"expected exactly 100.0, got %s", sum.TotalProtein)
}

func TestSummaryExerciseTotals(t *testing.T) {
	t.Parallel()
	store, svc := newSummaryFixture()
	ctx := context.Background()
	d := day(2026, 3, 10)

	require.NoError(t, store.CreateExercise(ctx, &models.ExerciseLog{
		UserID: 1, ExerciseName: "run", DurationMinutes: 30, CaloriesBurned: 280, LogDate: d,
	}))
	require.NoError(t, store.CreateExercise(ctx, &models.ExerciseLog{
		UserID: 1, ExerciseName: "yoga", DurationMinutes: 45, LogDate: d,
	}))

	sum, err := svc.Summary(ctx, 1, d)
	require.NoError(t, err)
	assert.Equal(t, 75, sum.TotalExerciseMinutes)
	assert.Equal(t, 280, sum.TotalCaloriesBurned)
	assert.Equal(t, 2, sum.ExerciseCount)
}

func TestSummaryWaterUnitConversion(t *testing.T) {
	t.Parallel()
	store, svc := newSummaryFixture()
	ctx := context.Background()

	require.NoError(t, store.CreateWater(ctx, &models.WaterLog{UserID: 1, Amount: dec("2"), Unit: models.WaterUnitGlasses}))
	require.NoError(t, store.CreateWater(ctx, &models.WaterLog{UserID: 1, Amount: dec("500"), Unit: models.WaterUnitML}))
	require.NoError(t, store.CreateWater(ctx, &models.WaterLog{UserID: 1, Amount: dec("8"), Unit: models.WaterUnitOz}))

	// MemoryStore stamps CreatedAt with now, so query today
	sum, err := svc.Summary(ctx, 1, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, sum.TotalWaterGlasses.Equal(dec("5")),
		"2 glasses + 500ml + 8oz should be 5 glasses, got %s", sum.TotalWaterGlasses)
}

func TestSummaryLatestSleepCarriesOverFromPriorDays(t *testing.T) {
	t.Parallel()
	store, svc := newSummaryFixture()
	ctx := context.Background()

	require.NoError(t, store.CreateSleep(ctx, &models.SleepLog{
		UserID: 1, SleepDate: day(2026, 3, 7), HoursSlept: dec("6.5"),
	}))
	require.NoError(t, store.CreateSleep(ctx, &models.SleepLog{
		UserID: 1, SleepDate: day(2026, 3, 9), HoursSlept: dec("7.0"),
	}))
	// future entry must not be picked for an earlier dashboard date
	require.NoError(t, store.CreateSleep(ctx, &models.SleepLog{
		UserID: 1, SleepDate: day(2026, 3, 12), HoursSlept: dec("9.0"),
	}))

	sum, err := svc.Summary(ctx, 1, day(2026, 3, 10))
	require.NoError(t, err)
	require.NotNil(t, sum.LatestSleep)
	assert.Equal(t, day(2026, 3, 9), sum.LatestSleep.SleepDate)
	assert.True(t, sum.LatestSleep.HoursSlept.Equal(dec("7.0")))
}

func TestSummaryLatestSleepTieBreaksOnMostRecentlyCreated(t *testing.T) {
	t.Parallel()
	store, svc := newSummaryFixture()
	ctx := context.Background()
	d := day(2026, 3, 10)

	first := &models.SleepLog{UserID: 1, SleepDate: d, HoursSlept: dec("6.0")}
	second := &models.SleepLog{UserID: 1, SleepDate: d, HoursSlept: dec("8.0")}
	require.NoError(t, store.CreateSleep(ctx, first))
	require.NoError(t, store.CreateSleep(ctx, second))

	sum, err := svc.Summary(ctx, 1, d)
	require.NoError(t, err)
	require.NotNil(t, sum.LatestSleep)
	assert.Equal(t, second.ID, sum.LatestSleep.ID)
}

func TestSummaryNoSleepEverIsAbsentNotError(t *testing.T) {
	t.Parallel()
	_, svc := newSummaryFixture()

	sum, err := svc.Summary(context.Background(), 42, day(2026, 3, 10))
	require.NoError(t, err)
	assert.Nil(t, sum.LatestSleep)
}
