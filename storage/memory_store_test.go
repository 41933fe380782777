package storage_test

import (
	"context"
	"testing"
	"time"

	"backend/models"
	"backend/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteOwnedIsNonLeaking(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()

	meal := &models.MealLog{UserID: 1, FoodName: "rice", Calories: 130, LogDate: time.Now()}
	require.NoError(t, store.CreateMeal(ctx, meal))

	assert.ErrorIs(t, store.DeleteMeal(ctx, meal.ID, 2), storage.ErrNotFound)
	assert.ErrorIs(t, store.DeleteMeal(ctx, 424242, 2), storage.ErrNotFound)
	assert.NoError(t, store.DeleteMeal(ctx, meal.ID, 1))
	assert.ErrorIs(t, store.DeleteMeal(ctx, meal.ID, 1), storage.ErrNotFound, "second delete misses")
}

func TestSearchFoodsRanking(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateFoods(ctx, []models.FoodItem{
		{Name: "Brown Rice"},
		{Name: "Rice"},
		{Name: "Rice Pudding"},
	}))

	foods, err := store.SearchFoods(ctx, "rice", 10)
	require.NoError(t, err)
	require.Len(t, foods, 3)
	assert.Equal(t, "Rice", foods[0].Name, "exact match first")
	assert.Equal(t, "Rice Pudding", foods[1].Name, "prefix match before substring")
	assert.Equal(t, "Brown Rice", foods[2].Name)
}

func TestCreateFoodsSkipsDuplicateNames(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateFoods(ctx, []models.FoodItem{{Name: "Rice"}}))
	require.NoError(t, store.CreateFoods(ctx, []models.FoodItem{{Name: "Rice"}, {Name: "Dal"}}))

	n, err := store.CountFoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCreateUserEnforcesUniqueEmail(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &models.User{Email: "a@b.com", Password: "x"}))
	err := store.CreateUser(ctx, &models.User{Email: "a@b.com", Password: "y"})
	assert.ErrorIs(t, err, storage.ErrDuplicateEmail)
}

func TestLatestSleepOrdering(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()
	d := func(day int) time.Time { return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC) }

	_, err := store.LatestSleep(ctx, 1, d(10))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	old := &models.SleepLog{UserID: 1, SleepDate: d(8), HoursSlept: decimal.NewFromInt(6)}
	newer := &models.SleepLog{UserID: 1, SleepDate: d(9), HoursSlept: decimal.NewFromInt(7)}
	future := &models.SleepLog{UserID: 1, SleepDate: d(11), HoursSlept: decimal.NewFromInt(8)}
	other := &models.SleepLog{UserID: 2, SleepDate: d(10), HoursSlept: decimal.NewFromInt(9)}
	for _, sl := range []*models.SleepLog{old, newer, future, other} {
		require.NoError(t, store.CreateSleep(ctx, sl))
	}

	got, err := store.LatestSleep(ctx, 1, d(10))
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
}

func TestGoalUpsertKeepsOneRowPerUser(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()

	first := &models.DailyGoal{UserID: 3, Calories: 1800}
	require.NoError(t, store.SaveGoal(ctx, first))
	second := &models.DailyGoal{UserID: 3, Calories: 2100}
	require.NoError(t, store.SaveGoal(ctx, second))

	got, err := store.GoalByUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 2100, got.Calories)
	assert.Equal(t, first.ID, got.ID, "upsert reuses the existing row")
}

func TestListMealsNewestFirstWithLimit(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()
	d := func(day int) time.Time { return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC) }

	for i := 1; i <= 4; i++ {
		require.NoError(t, store.CreateMeal(ctx, &models.MealLog{
			UserID: 1, FoodName: "m", Calories: i, LogDate: d(i),
		}))
	}

	meals, err := store.ListMeals(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, 4, meals[0].Calories)
	assert.Equal(t, 3, meals[1].Calories)
}
