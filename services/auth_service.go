package services

import (
	"context"
	"errors"
	"strings"

	"backend/models"
	"backend/storage"
	"backend/utils"
)

// ErrBadCredentials covers both unknown email and wrong password, so a
// login attempt cannot probe which emails are registered.
var ErrBadCredentials = errors.New("invalid email or password")

type AuthService struct {
	store     storage.Store
	jwtSecret []byte
}

func NewAuthService(store storage.Store, jwtSecret []byte) *AuthService {
	return &AuthService{store: store, jwtSecret: jwtSecret}
}

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := s.store.UserByEmail(ctx, in.Email); err == nil {
		return nil, validationf("user with this email already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:     in.Email,
		Password:  hashed,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, validationf("user with this email already exists")
		}
		return nil, err
	}
	return user, nil
}

// Login returns a signed token and the user on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, ErrBadCredentials
		}
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrBadCredentials
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
