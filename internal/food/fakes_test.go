package food

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

type fakeFoodRepo struct {
	mu       sync.Mutex
	foods    map[int]domain.Food
	nextID   int
	searches int
	failWith error
}

func newFakeFoodRepo(foods ...domain.Food) *fakeFoodRepo {
	r := &fakeFoodRepo{foods: make(map[int]domain.Food), nextID: 1}
	for _, f := range foods {
		f.ID = r.nextID
		r.nextID++
		r.foods[f.ID] = f
	}
	return r
}

func (r *fakeFoodRepo) CreateFood(_ context.Context, food *domain.Food) (*domain.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, f := range r.foods {
		if strings.EqualFold(f.Name, food.Name) {
			return nil, domain.ErrAlreadyExists
		}
	}
	created := *food
	created.ID = r.nextID
	r.nextID++
	r.foods[created.ID] = created
	return &created, nil
}

func (r *fakeFoodRepo) GetFoodByID(_ context.Context, id int) (*domain.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.foods[id]
	if !ok {
		return nil, domain.ErrFoodNotFound
	}
	return &f, nil
}

func (r *fakeFoodRepo) GetFoodByName(_ context.Context, name string) (*domain.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.foods {
		if strings.EqualFold(f.Name, name) {
			return &f, nil
		}
	}
	return nil, domain.ErrFoodNotFound
}

func (r *fakeFoodRepo) SearchFoods(_ context.Context, query string, limit int) ([]domain.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches++
	var out []domain.Food
	for _, f := range r.foods {
		if strings.Contains(strings.ToLower(f.Name), strings.ToLower(query)) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeFoodRepo) DeleteFood(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.foods[id]; !ok {
		return domain.ErrFoodNotFound
	}
	delete(r.foods, id)
	return nil
}

func (r *fakeFoodRepo) searchCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.searches
}

type fakeProvider struct {
	mu         sync.Mutex
	candidates []domain.ImportCandidate
	err        error
	calls      int
}

func (p *fakeProvider) Lookup(_ context.Context, _, _ string) ([]domain.ImportCandidate, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.candidates, nil
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
