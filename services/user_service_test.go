package services_test

import (
	"context"
	"testing"

	"backend/models"
	"backend/services"
	"backend/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileWithoutWeightHasNoBMI(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()
	user := &models.User{Email: "p@x.com", Password: "h", HeightCm: 170}
	require.NoError(t, store.CreateUser(ctx, user))

	svc := services.NewUserService(store)
	p, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, p.User.ID)
	assert.Nil(t, p.LatestWeight)
	assert.Zero(t, p.BMI)
	assert.Empty(t, p.BMICategory)
}

func TestProfileComputesBMIFromLatestWeight(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()
	user := &models.User{Email: "bmi@x.com", Password: "h", HeightCm: 180}
	require.NoError(t, store.CreateUser(ctx, user))
	require.NoError(t, store.CreateWeight(ctx, &models.WeightLog{
		UserID: user.ID, WeightKg: decimal.NewFromInt(90),
	}))
	require.NoError(t, store.CreateWeight(ctx, &models.WeightLog{
		UserID: user.ID, WeightKg: decimal.NewFromInt(81),
	}))

	svc := services.NewUserService(store)
	p, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, p.LatestWeight)
	assert.True(t, p.LatestWeight.WeightKg.Equal(decimal.NewFromInt(81)), "latest sample wins")
	assert.InDelta(t, 25.0, p.BMI, 0.01) // 81 / 1.8^2
	assert.Equal(t, "Overweight", p.BMICategory)
}

func TestUpdateProfilePatchesOnlyProvidedFields(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()
	user := &models.User{Email: "u@x.com", Password: "h", FirstName: "Asha", HeightCm: 160}
	require.NoError(t, store.CreateUser(ctx, user))

	svc := services.NewUserService(store)
	last := "Perera"
	height := 162.5
	updated, err := svc.UpdateProfile(ctx, user.ID, services.ProfileInput{
		LastName: &last,
		HeightCm: &height,
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", updated.FirstName)
	assert.Equal(t, "Perera", updated.LastName)
	assert.Equal(t, 162.5, updated.HeightCm)

	bad := -3.0
	_, err = svc.UpdateProfile(ctx, user.ID, services.ProfileInput{HeightCm: &bad})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.UpdateProfile(ctx, 999, services.ProfileInput{LastName: &last})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
