package storage

import (
	"context"
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the Postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ---------- Users ----------

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	err := s.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) UpdateUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Save(u).Error
}

// ---------- Meals ----------

func (s *GormStore) CreateMeal(ctx context.Context, m *models.MealLog) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *GormStore) MealsByDate(ctx context.Context, userID uint, day time.Time) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userID, day).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *GormStore) ListMeals(ctx context.Context, userID uint, limit int) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("log_date DESC, created_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

func (s *GormStore) DeleteMeal(ctx context.Context, id, userID uint) error {
	return s.deleteOwned(ctx, &models.MealLog{}, id, userID)
}

// ---------- Exercises ----------

func (s *GormStore) CreateExercise(ctx context.Context, e *models.ExerciseLog) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *GormStore) ExercisesByDate(ctx context.Context, userID uint, day time.Time) ([]models.ExerciseLog, error) {
	var out []models.ExerciseLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userID, day).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (s *GormStore) ListExercises(ctx context.Context, userID uint, limit int) ([]models.ExerciseLog, error) {
	var out []models.ExerciseLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("log_date DESC, created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (s *GormStore) DeleteExercise(ctx context.Context, id, userID uint) error {
	return s.deleteOwned(ctx, &models.ExerciseLog{}, id, userID)
}

// ---------- Sleep ----------

func (s *GormStore) CreateSleep(ctx context.Context, sl *models.SleepLog) error {
	return s.db.WithContext(ctx).Create(sl).Error
}

func (s *GormStore) LatestSleep(ctx context.Context, userID uint, onOrBefore time.Time) (*models.SleepLog, error) {
	var sl models.SleepLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND sleep_date <= ?", userID, onOrBefore).
		Order("sleep_date DESC, id DESC").
		First(&sl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sl, nil
}

func (s *GormStore) ListSleep(ctx context.Context, userID uint, limit int) ([]models.SleepLog, error) {
	var out []models.SleepLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sleep_date DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ---------- Weight ----------

func (s *GormStore) CreateWeight(ctx context.Context, w *models.WeightLog) error {
	return s.db.WithContext(ctx).Create(w).Error
}

func (s *GormStore) LatestWeight(ctx context.Context, userID uint) (*models.WeightLog, error) {
	var w models.WeightLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (s *GormStore) ListWeights(ctx context.Context, userID uint, limit int) ([]models.WeightLog, error) {
	var out []models.WeightLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ---------- Water ----------

func (s *GormStore) CreateWater(ctx context.Context, w *models.WaterLog) error {
	return s.db.WithContext(ctx).Create(w).Error
}

func (s *GormStore) WaterByDate(ctx context.Context, userID uint, day time.Time) ([]models.WaterLog, error) {
	var out []models.WaterLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, day, day.Add(24*time.Hour)).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (s *GormStore) ListWater(ctx context.Context, userID uint, limit int) ([]models.WaterLog, error) {
	var out []models.WaterLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ---------- Food catalog ----------

func (s *GormStore) SearchFoods(ctx context.Context, q string, limit int) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	pattern := "%" + q + "%"
	err := s.db.WithContext(ctx).
		Where("name ILIKE ? OR local_name ILIKE ?", pattern, pattern).
		Order(clause.OrderBy{Expression: clause.Expr{
			// exact and prefix matches float above plain substring hits
			SQL:                "CASE WHEN LOWER(name) = LOWER(?) THEN 0 WHEN name ILIKE ? THEN 1 ELSE 2 END, name",
			Vars:               []interface{}{q, q + "%"},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Find(&foods).Error
	return foods, err
}

func (s *GormStore) CountFoods(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.FoodItem{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CreateFoods(ctx context.Context, foods []models.FoodItem) error {
	if len(foods) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(foods, 100).Error
}

// ---------- Goals ----------

func (s *GormStore) GoalByUser(ctx context.Context, userID uint) (*models.DailyGoal, error) {
	var g models.DailyGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (s *GormStore) SaveGoal(ctx context.Context, g *models.DailyGoal) error {
	var existing models.DailyGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", g.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.WithContext(ctx).Create(g).Error
	}
	if err != nil {
		return err
	}
	g.ID = existing.ID
	g.CreatedAt = existing.CreatedAt
	return s.db.WithContext(ctx).Save(g).Error
}

// deleteOwned removes a row only when it belongs to userID. A miss and a
// row owned by someone else are both ErrNotFound.
func (s *GormStore) deleteOwned(ctx context.Context, model interface{}, id, userID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
