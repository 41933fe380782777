package services

import (
	"context"
	"strings"

	"backend/models"
	"backend/storage"
)

const searchLimit = 20

type FoodService struct {
	store storage.Store
}

func NewFoodService(store storage.Store) *FoodService {
	return &FoodService{store: store}
}

// Search backs the meal-log autocomplete. Queries under two characters
// return nothing rather than the whole catalog.
func (s *FoodService) Search(ctx context.Context, q string) ([]models.FoodItem, error) {
	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return []models.FoodItem{}, nil
	}
	foods, err := s.store.SearchFoods(ctx, q, searchLimit)
	if err != nil {
		return nil, err
	}
	if foods == nil {
		foods = []models.FoodItem{}
	}
	return foods, nil
}

// Seed loads the bundled catalog once. Safe to call on every boot;
// a non-empty table is left alone.
func (s *FoodService) Seed(ctx context.Context) (int, error) {
	n, err := s.store.CountFoods(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	foods := CatalogFoods()
	if err := s.store.CreateFoods(ctx, foods); err != nil {
		return 0, err
	}
	return len(foods), nil
}
