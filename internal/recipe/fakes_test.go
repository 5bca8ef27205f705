package recipe

import (
	"context"
	"errors"
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/repository"
)

type recipeState struct {
	foods       map[int]domain.Food
	ingredients map[int]domain.Ingredient
	lines       map[int]domain.RecipeLine
	nextID      int
}

func (s recipeState) clone() recipeState {
	return recipeState{
		foods:       maps.Clone(s.foods),
		ingredients: maps.Clone(s.ingredients),
		lines:       maps.Clone(s.lines),
		nextID:      s.nextID,
	}
}

func (s *recipeState) id() int {
	s.nextID++
	return s.nextID
}

func (s recipeState) foodByName(name string) (*domain.Food, error) {
	for _, f := range s.foods {
		if strings.EqualFold(f.Name, name) {
			return &f, nil
		}
	}
	return nil, domain.ErrFoodNotFound
}

func (s recipeState) linesOf(foodID int) []domain.RecipeLine {
	var out []domain.RecipeLine
	for _, l := range s.lines {
		if l.FoodID == foodID {
			ing := s.ingredients[l.IngredientID]
			l.IngredientName = ing.Name
			l.IngredientNutrients = ing.Nutrients
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fakeRecipeRepo serializes transactions and applies their writes only on commit.
type fakeRecipeRepo struct {
	txMu  sync.Mutex
	mu    sync.Mutex
	state recipeState

	failLineInsert bool
	commits        int
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{state: recipeState{
		foods:       map[int]domain.Food{},
		ingredients: map[int]domain.Ingredient{},
		lines:       map[int]domain.RecipeLine{},
	}}
}

func (r *fakeRecipeRepo) snapshot() recipeState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.clone()
}

func (r *fakeRecipeRepo) addIngredient(name string, n domain.Nutrients) domain.Ingredient {
	r.mu.Lock()
	defer r.mu.Unlock()
	ing := domain.Ingredient{ID: r.state.id(), Name: name, Nutrients: n}
	r.state.ingredients[ing.ID] = ing
	return ing
}

func (r *fakeRecipeRepo) addFood(name string, n domain.Nutrients) domain.Food {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := domain.Food{ID: r.state.id(), Name: name, Nutrients: n}
	r.state.foods[f.ID] = f
	return f
}

func (r *fakeRecipeRepo) CreateIngredient(_ context.Context, ing *domain.Ingredient) (*domain.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.state.ingredients {
		if strings.EqualFold(existing.Name, ing.Name) {
			return nil, domain.ErrAlreadyExists
		}
	}
	created := *ing
	created.ID = r.state.id()
	r.state.ingredients[created.ID] = created
	return &created, nil
}

func (r *fakeRecipeRepo) GetIngredientByID(_ context.Context, id int) (*domain.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ing, ok := r.state.ingredients[id]
	if !ok {
		return nil, domain.ErrIngredientNotFound
	}
	return &ing, nil
}

func (r *fakeRecipeRepo) GetIngredientsByNames(_ context.Context, names []string) (map[string]domain.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]domain.Ingredient{}
	for _, n := range names {
		for _, ing := range r.state.ingredients {
			if strings.EqualFold(ing.Name, n) {
				out[strings.ToLower(ing.Name)] = ing
			}
		}
	}
	return out, nil
}

func (r *fakeRecipeRepo) GetFoodByName(_ context.Context, name string) (*domain.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.foodByName(name)
}

func (r *fakeRecipeRepo) GetRecipeLines(_ context.Context, foodID int) ([]domain.RecipeLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.linesOf(foodID), nil
}

func (r *fakeRecipeRepo) BeginTx(_ context.Context) (repository.RecipeTx, error) {
	r.txMu.Lock()
	return &fakeRecipeTx{repo: r, work: r.snapshot()}, nil
}

type fakeRecipeTx struct {
	repo *fakeRecipeRepo
	work recipeState
	done bool
}

func (t *fakeRecipeTx) Commit(_ context.Context) error {
	if t.done {
		return errors.New("tx closed")
	}
	t.repo.mu.Lock()
	t.repo.state = t.work
	t.repo.commits++
	t.repo.mu.Unlock()
	t.done = true
	t.repo.txMu.Unlock()
	return nil
}

func (t *fakeRecipeTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.repo.txMu.Unlock()
	return nil
}

func (t *fakeRecipeTx) CreateFood(_ context.Context, food *domain.Food) (*domain.Food, error) {
	if _, err := t.work.foodByName(food.Name); err == nil {
		return nil, domain.ErrAlreadyExists
	}
	created := *food
	created.ID = t.work.id()
	t.work.foods[created.ID] = created
	return &created, nil
}

func (t *fakeRecipeTx) GetFoodForUpdate(_ context.Context, foodID int) (*domain.Food, error) {
	f, ok := t.work.foods[foodID]
	if !ok {
		return nil, domain.ErrFoodNotFound
	}
	return &f, nil
}

func (t *fakeRecipeTx) UpdateFoodNutrients(_ context.Context, foodID int, n domain.Nutrients) error {
	f := t.work.foods[foodID]
	f.Nutrients = n
	t.work.foods[foodID] = f
	return nil
}

func (t *fakeRecipeTx) UpdateFoodDescription(_ context.Context, foodID int, description *string) error {
	f := t.work.foods[foodID]
	f.Description = description
	t.work.foods[foodID] = f
	return nil
}

func (t *fakeRecipeTx) GetRecipeLines(_ context.Context, foodID int) ([]domain.RecipeLine, error) {
	return t.work.linesOf(foodID), nil
}

func (t *fakeRecipeTx) CreateRecipeLine(_ context.Context, foodID, ingredientID, grams int) (*domain.RecipeLine, error) {
	if t.repo.failLineInsert {
		return nil, errors.New("insert failed")
	}
	line := domain.RecipeLine{ID: t.work.id(), FoodID: foodID, IngredientID: ingredientID, Grams: grams}
	t.work.lines[line.ID] = line
	return &line, nil
}

func (t *fakeRecipeTx) DeleteRecipeLines(_ context.Context, foodID int) error {
	for id, l := range t.work.lines {
		if l.FoodID == foodID {
			delete(t.work.lines, id)
		}
	}
	return nil
}

func (t *fakeRecipeTx) DeleteRecipeLine(_ context.Context, lineID int) (int, error) {
	l, ok := t.work.lines[lineID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	delete(t.work.lines, lineID)
	return l.FoodID, nil
}

func (t *fakeRecipeTx) DeleteIngredient(_ context.Context, ingredientID int) ([]int, error) {
	if _, ok := t.work.ingredients[ingredientID]; !ok {
		return nil, domain.ErrIngredientNotFound
	}
	var foods []int
	for id, l := range t.work.lines {
		if l.IngredientID == ingredientID {
			foods = append(foods, l.FoodID)
			delete(t.work.lines, id)
		}
	}
	delete(t.work.ingredients, ingredientID)
	return foods, nil
}

type countingInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (c *countingInvalidator) InvalidateCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
}

func (c *countingInvalidator) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
