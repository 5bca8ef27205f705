package diary

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/repository"
)

type statKey struct {
	user string
	day  string
}

// fakeDiaryRepo keeps state in memory. Transaction writes are buffered and
// applied under one lock at commit, so additions stay atomic like the SQL
// upsert they stand in for.
type fakeDiaryRepo struct {
	mu      sync.Mutex
	foods   map[int]domain.Food
	users   map[string]bool
	entries map[int64]domain.FoodLogEntry
	stats   map[statKey]domain.DailyStat
	nextID  int64

	failCommit bool
}

func newFakeDiaryRepo(users ...string) *fakeDiaryRepo {
	r := &fakeDiaryRepo{
		foods:   map[int]domain.Food{},
		users:   map[string]bool{},
		entries: map[int64]domain.FoodLogEntry{},
		stats:   map[statKey]domain.DailyStat{},
	}
	for _, u := range users {
		r.users[u] = true
	}
	return r
}

func (r *fakeDiaryRepo) addFood(f domain.Food) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.foods[f.ID] = f
}

func (r *fakeDiaryRepo) entryCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func keyOf(user string, date time.Time) statKey {
	return statKey{user: user, day: domain.FormatDay(date)}
}

// upsertLocked must be called with mu held.
func (r *fakeDiaryRepo) upsertLocked(userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error) {
	if !r.users[userID] {
		return nil, domain.ErrUserNotFound
	}
	k := keyOf(userID, date)
	stat, ok := r.stats[k]
	if !ok {
		r.nextID++
		stat = domain.DailyStat{ID: r.nextID, UserID: userID, Date: date}
	}
	stat.Nutrients = stat.Nutrients.Add(delta)
	r.stats[k] = stat
	return &stat, nil
}

func (r *fakeDiaryRepo) UpsertDailyStat(_ context.Context, userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.upsertLocked(userID, date, delta)
}

func (r *fakeDiaryRepo) GetDailyStat(_ context.Context, userID string, date time.Time) (*domain.DailyStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stat, ok := r.stats[keyOf(userID, date)]
	if !ok {
		return nil, nil
	}
	return &stat, nil
}

func (r *fakeDiaryRepo) ListDailyStats(_ context.Context, userID string, start, end time.Time) ([]domain.DailyStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.DailyStat
	for _, s := range r.stats {
		if s.UserID == userID && !s.Date.Before(start) && !s.Date.After(end) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeDiaryRepo) ListFoodLogEntries(_ context.Context, userID string, start, end time.Time) ([]domain.FoodLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.FoodLogEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDiaryRepo) BeginTx(_ context.Context) (repository.DiaryTx, error) {
	return &fakeDiaryTx{repo: r}, nil
}

type fakeDiaryTx struct {
	repo *fakeDiaryRepo
	ops  []func() error
	done bool
}

func (t *fakeDiaryTx) Commit(_ context.Context) error {
	if t.done {
		return errors.New("tx closed")
	}
	t.done = true
	if t.repo.failCommit {
		return errors.New("commit failed")
	}
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for _, op := range t.ops {
		if err := op(); err != nil {
			return err
		}
	}
	return nil
}

func (t *fakeDiaryTx) Rollback(_ context.Context) error {
	t.done = true
	return nil
}

func (t *fakeDiaryTx) GetFood(_ context.Context, foodID int) (*domain.Food, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	f, ok := t.repo.foods[foodID]
	if !ok {
		return nil, domain.ErrFoodNotFound
	}
	return &f, nil
}

func (t *fakeDiaryTx) CreateFoodLogEntry(_ context.Context, entry *domain.FoodLogEntry) (*domain.FoodLogEntry, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if !t.repo.users[entry.UserID] {
		return nil, domain.ErrUserNotFound
	}
	t.repo.nextID++
	created := *entry
	created.ID = t.repo.nextID
	t.ops = append(t.ops, func() error {
		t.repo.entries[created.ID] = created
		return nil
	})
	return &created, nil
}

func (t *fakeDiaryTx) DeleteFoodLogEntry(_ context.Context, userID string, entryID int64) (*domain.FoodLogEntry, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	e, ok := t.repo.entries[entryID]
	if !ok || e.UserID != userID {
		return nil, domain.ErrEntryNotFound
	}
	t.ops = append(t.ops, func() error {
		delete(t.repo.entries, entryID)
		return nil
	})
	return &e, nil
}

func (t *fakeDiaryTx) UpsertDailyStat(_ context.Context, userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if !t.repo.users[userID] {
		return nil, domain.ErrUserNotFound
	}
	preview := t.repo.stats[keyOf(userID, date)]
	preview.UserID, preview.Date = userID, date
	preview.Nutrients = preview.Nutrients.Add(delta)
	t.ops = append(t.ops, func() error {
		_, err := t.repo.upsertLocked(userID, date, delta)
		return err
	})
	return &preview, nil
}

func (t *fakeDiaryTx) SubtractDailyStat(_ context.Context, userID string, date time.Time, amount domain.Nutrients) (*domain.DailyStat, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	k := keyOf(userID, date)
	stat, ok := t.repo.stats[k]
	if !ok {
		return nil, nil
	}
	stat.Nutrients = stat.Nutrients.Sub(amount)
	t.ops = append(t.ops, func() error {
		current := t.repo.stats[k]
		current.Nutrients = current.Nutrients.Sub(amount)
		t.repo.stats[k] = current
		return nil
	})
	return &stat, nil
}
