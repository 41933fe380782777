package services

import (
	"context"
	"errors"

	"backend/models"
	"backend/storage"
	"backend/utils"
)

type UserService struct {
	store storage.Store
}

func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// Profile is the user plus their latest weight sample and, when both
// height and weight are known, a BMI readout.
type Profile struct {
	User         *models.User      `json:"user"`
	LatestWeight *models.WeightLog `json:"latest_weight,omitempty"`
	BMI          float64           `json:"bmi,omitempty"`
	BMICategory  string            `json:"bmi_category,omitempty"`
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := &Profile{User: user}

	weight, err := s.store.LatestWeight(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return p, nil
	}
	p.LatestWeight = weight

	if user.HeightCm > 0 {
		kg, _ := weight.WeightKg.Float64()
		if bmi, err := utils.CalculateBMI(user.HeightCm, kg); err == nil {
			p.BMI = bmi
			p.BMICategory = utils.BMICategory(bmi)
		}
	}
	return p, nil
}

type ProfileInput struct {
	FirstName     *string  `json:"first_name"`
	LastName      *string  `json:"last_name"`
	HeightCm      *float64 `json:"height_cm"`
	GoalWeightKg  *float64 `json:"goal_weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
}

// UpdateProfile patches the mutable profile fields. Email and password
// are not touched here.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (*models.User, error) {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.HeightCm != nil {
		if *in.HeightCm < 0 {
			return nil, validationf("height must be non-negative")
		}
		user.HeightCm = *in.HeightCm
	}
	if in.GoalWeightKg != nil {
		if *in.GoalWeightKg < 0 {
			return nil, validationf("goal weight must be non-negative")
		}
		user.GoalWeightKg = *in.GoalWeightKg
	}
	if in.ActivityLevel != nil {
		user.ActivityLevel = *in.ActivityLevel
	}
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
