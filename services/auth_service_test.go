package services_test

import (
	"context"
	"testing"

	"backend/services"
	"backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() *services.AuthService {
	return services.NewAuthService(storage.NewMemoryStore(), []byte("test-secret"))
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	svc := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, services.RegisterInput{
		Email:     "Asha@Example.com",
		Password:  "hunter22",
		FirstName: "Asha",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email, "email is normalized")
	assert.NotEqual(t, "hunter22", user.Password, "password is stored hashed")

	token, logged, err := svc.Login(ctx, "asha@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, services.RegisterInput{Email: "a@b.com", Password: "password"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, services.RegisterInput{Email: "a@b.com", Password: "password"})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestLoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	t.Parallel()
	svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, services.RegisterInput{Email: "a@b.com", Password: "password"})
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, "a@b.com", "nope")
	_, _, unknownEmail := svc.Login(ctx, "nobody@b.com", "password")

	assert.ErrorIs(t, wrongPassword, services.ErrBadCredentials)
	assert.ErrorIs(t, unknownEmail, services.ErrBadCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}
