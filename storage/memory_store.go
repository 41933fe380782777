package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"backend/models"
)

// MemoryStore keeps everything in per-process maps. It exists for tests
// and local hacking; behavior mirrors GormStore, ownership checks included.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID uint

	users     map[uint]models.User
	meals     map[uint]models.MealLog
	exercises map[uint]models.ExerciseLog
	sleep     map[uint]models.SleepLog
	weights   map[uint]models.WeightLog
	water     map[uint]models.WaterLog
	foods     map[uint]models.FoodItem
	goals     map[uint]models.DailyGoal // keyed by user id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[uint]models.User),
		meals:     make(map[uint]models.MealLog),
		exercises: make(map[uint]models.ExerciseLog),
		sleep:     make(map[uint]models.SleepLog),
		weights:   make(map[uint]models.WeightLog),
		water:     make(map[uint]models.WaterLog),
		foods:     make(map[uint]models.FoodItem),
		goals:     make(map[uint]models.DailyGoal),
	}
}

func (s *MemoryStore) assignID() (uint, time.Time) {
	s.nextID++
	return s.nextID, time.Now()
}

// ---------- Users ----------

func (s *MemoryStore) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	u.ID, u.CreatedAt = s.assignID()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := u
	return &out, nil
}

func (s *MemoryStore) UpdateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return ErrNotFound
	}
	u.UpdatedAt = time.Now()
	s.users[u.ID] = *u
	return nil
}

// ---------- Meals ----------

func (s *MemoryStore) CreateMeal(ctx context.Context, m *models.MealLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID, m.CreatedAt = s.assignID()
	m.UpdatedAt = m.CreatedAt
	s.meals[m.ID] = *m
	return nil
}

func (s *MemoryStore) MealsByDate(ctx context.Context, userID uint, day time.Time) ([]models.MealLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MealLog
	for _, m := range s.meals {
		if m.UserID == userID && m.LogDate.Equal(day) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListMeals(ctx context.Context, userID uint, limit int) ([]models.MealLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MealLog
	for _, m := range s.meals {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LogDate.Equal(out[j].LogDate) {
			return out[i].LogDate.After(out[j].LogDate)
		}
		return out[i].ID > out[j].ID
	})
	return capSlice(out, limit), nil
}

func (s *MemoryStore) DeleteMeal(ctx context.Context, id, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meals[id]
	if !ok || m.UserID != userID {
		return ErrNotFound
	}
	delete(s.meals, id)
	return nil
}

// ---------- Exercises ----------

func (s *MemoryStore) CreateExercise(ctx context.Context, e *models.ExerciseLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID, e.CreatedAt = s.assignID()
	e.UpdatedAt = e.CreatedAt
	s.exercises[e.ID] = *e
	return nil
}

func (s *MemoryStore) ExercisesByDate(ctx context.Context, userID uint, day time.Time) ([]models.ExerciseLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ExerciseLog
	for _, e := range s.exercises {
		if e.UserID == userID && e.LogDate.Equal(day) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListExercises(ctx context.Context, userID uint, limit int) ([]models.ExerciseLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ExerciseLog
	for _, e := range s.exercises {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LogDate.Equal(out[j].LogDate) {
			return out[i].LogDate.After(out[j].LogDate)
		}
		return out[i].ID > out[j].ID
	})
	return capSlice(out, limit), nil
}

func (s *MemoryStore) DeleteExercise(ctx context.Context, id, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.exercises[id]
	if !ok || e.UserID != userID {
		return ErrNotFound
	}
	delete(s.exercises, id)
	return nil
}

// ---------- Sleep ----------

func (s *MemoryStore) CreateSleep(ctx context.Context, sl *models.SleepLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl.ID, sl.CreatedAt = s.assignID()
	sl.UpdatedAt = sl.CreatedAt
	s.sleep[sl.ID] = *sl
	return nil
}

func (s *MemoryStore) LatestSleep(ctx context.Context, userID uint, onOrBefore time.Time) (*models.SleepLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best *models.SleepLog
	for id := range s.sleep {
		sl := s.sleep[id]
		if sl.UserID != userID || sl.SleepDate.After(onOrBefore) {
			continue
		}
		if best == nil ||
			sl.SleepDate.After(best.SleepDate) ||
			(sl.SleepDate.Equal(best.SleepDate) && sl.ID > best.ID) {
			copied := sl
			best = &copied
		}
	}
	if best == nil {
		return nil, ErrNotFound
	}
	return best, nil
}

func (s *MemoryStore) ListSleep(ctx context.Context, userID uint, limit int) ([]models.SleepLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SleepLog
	for _, sl := range s.sleep {
		if sl.UserID == userID {
			out = append(out, sl)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SleepDate.Equal(out[j].SleepDate) {
			return out[i].SleepDate.After(out[j].SleepDate)
		}
		return out[i].ID > out[j].ID
	})
	return capSlice(out, limit), nil
}

// ---------- Weight ----------

func (s *MemoryStore) CreateWeight(ctx context.Context, w *models.WeightLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.ID, w.CreatedAt = s.assignID()
	w.UpdatedAt = w.CreatedAt
	s.weights[w.ID] = *w
	return nil
}

func (s *MemoryStore) LatestWeight(ctx context.Context, userID uint) (*models.WeightLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best *models.WeightLog
	for id := range s.weights {
		w := s.weights[id]
		if w.UserID != userID {
			continue
		}
		if best == nil || w.ID > best.ID {
			copied := w
			best = &copied
		}
	}
	if best == nil {
		return nil, ErrNotFound
	}
	return best, nil
}

func (s *MemoryStore) ListWeights(ctx context.Context, userID uint, limit int) ([]models.WeightLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.WeightLog
	for _, w := range s.weights {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return capSlice(out, limit), nil
}

// ---------- Water ----------

func (s *MemoryStore) CreateWater(ctx context.Context, w *models.WaterLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.ID, w.CreatedAt = s.assignID()
	w.UpdatedAt = w.CreatedAt
	s.water[w.ID] = *w
	return nil
}

func (s *MemoryStore) WaterByDate(ctx context.Context, userID uint, day time.Time) ([]models.WaterLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	end := day.Add(24 * time.Hour)
	var out []models.WaterLog
	for _, w := range s.water {
		if w.UserID == userID && !w.CreatedAt.Before(day) && w.CreatedAt.Before(end) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListWater(ctx context.Context, userID uint, limit int) ([]models.WaterLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.WaterLog
	for _, w := range s.water {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return capSlice(out, limit), nil
}

// ---------- Food catalog ----------

func (s *MemoryStore) SearchFoods(ctx context.Context, q string, limit int) ([]models.FoodItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(q)
	var out []models.FoodItem
	for _, f := range s.foods {
		name := strings.ToLower(f.Name)
		local := strings.ToLower(f.LocalName)
		if strings.Contains(name, needle) || (local != "" && strings.Contains(local, needle)) {
			out = append(out, f)
		}
	}
	rank := func(f models.FoodItem) int {
		name := strings.ToLower(f.Name)
		switch {
		case name == needle:
			return 0
		case strings.HasPrefix(name, needle):
			return 1
		default:
			return 2
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i].Name < out[j].Name
	})
	return capSlice(out, limit), nil
}

func (s *MemoryStore) CountFoods(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.foods)), nil
}

func (s *MemoryStore) CreateFoods(ctx context.Context, foods []models.FoodItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byName := make(map[string]bool, len(s.foods))
	for _, f := range s.foods {
		byName[f.Name] = true
	}
	for i := range foods {
		if byName[foods[i].Name] {
			continue
		}
		foods[i].ID, foods[i].CreatedAt = s.assignID()
		foods[i].UpdatedAt = foods[i].CreatedAt
		s.foods[foods[i].ID] = foods[i]
		byName[foods[i].Name] = true
	}
	return nil
}

// ---------- Goals ----------

func (s *MemoryStore) GoalByUser(ctx context.Context, userID uint) (*models.DailyGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.goals[userID]
	if !ok {
		return nil, ErrNotFound
	}
	out := g
	return &out, nil
}

func (s *MemoryStore) SaveGoal(ctx context.Context, g *models.DailyGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.goals[g.UserID]; ok {
		g.ID = existing.ID
		g.CreatedAt = existing.CreatedAt
		g.UpdatedAt = time.Now()
	} else {
		g.ID, g.CreatedAt = s.assignID()
		g.UpdatedAt = g.CreatedAt
	}
	s.goals[g.UserID] = *g
	return nil
}

func capSlice[T any](in []T, limit int) []T {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}
