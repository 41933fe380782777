package services_test

import (
	"context"
	"testing"

	"backend/services"
	"backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	svc := services.NewFoodService(store)
	ctx := context.Background()

	n, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	again, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, again, "a populated catalog is left alone")

	count, err := store.CountFoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), count)
}

func TestSearchRequiresTwoCharacters(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	svc := services.NewFoodService(store)
	ctx := context.Background()

	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	foods, err := svc.Search(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, foods)

	foods, err = svc.Search(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, foods)

	foods, err = svc.Search(ctx, "samosa")
	require.NoError(t, err)
	assert.NotEmpty(t, foods)
}

func TestSearchMatchesLocalNames(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	svc := services.NewFoodService(store)
	ctx := context.Background()

	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	foods, err := svc.Search(ctx, "palak")
	require.NoError(t, err)
	require.NotEmpty(t, foods)
	assert.Equal(t, "Spinach", foods[0].Name)
}
