package recipe

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/DietDiary_Go/internal/concurrency"
	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/logger"
	"github.com/osse101/DietDiary_Go/internal/metrics"
	"github.com/osse101/DietDiary_Go/internal/repository"
)

// CacheInvalidator is notified after any write that adds or changes foods.
type CacheInvalidator interface {
	InvalidateCache()
}

// Service composes foods from ingredients.
type Service interface {
	CreateRecipe(ctx context.Context, input CreateRecipeInput) (*domain.Food, error)
	ReplaceRecipe(ctx context.Context, input ReplaceRecipeInput) (*domain.Food, error)
	GetRecipe(ctx context.Context, foodName string) (*domain.Recipe, error)
	DeleteRecipeLine(ctx context.Context, lineID int) (*domain.Food, error)

	CreateIngredient(ctx context.Context, input CreateIngredientInput) (*domain.Ingredient, error)
	GetIngredient(ctx context.Context, id int) (*domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, id int) error
}

type service struct {
	repo        repository.Recipe
	locks       *concurrency.LockManager
	invalidator CacheInvalidator
}

// NewService creates a recipe composer. invalidator may be nil.
func NewService(repo repository.Recipe, locks *concurrency.LockManager, invalidator CacheInvalidator) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:        repo,
		locks:       locks,
		invalidator: invalidator,
	}
}

// resolvedLine is a validated line joined with its ingredient.
type resolvedLine struct {
	ingredient domain.Ingredient
	grams      int
}

func (s *service) CreateRecipe(ctx context.Context, input CreateRecipeInput) (*domain.Food, error) {
	log := logger.FromContext(ctx)

	input.normalize()
	if err := validateInput(input, ErrMsgInvalidRecipe); err != nil {
		return nil, err
	}

	var created *domain.Food
	err := s.locks.WithLock(nameLockKey(input.Food), func() error {
		if _, err := s.repo.GetFoodByName(ctx, input.Food); err == nil {
			return fmt.Errorf("%w: "+ErrMsgFoodExists, domain.ErrAlreadyExists, input.Food)
		} else if !errors.Is(err, domain.ErrFoodNotFound) {
			return err
		}

		lines, err := s.resolveLines(ctx, input.Lines)
		if err != nil {
			return err
		}
		total, err := totalOf(lines)
		if err != nil {
			return err
		}

		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
		}
		defer repository.SafeRollback(ctx, tx)

		created, err = tx.CreateFood(ctx, &domain.Food{
			Name:        input.Food,
			Nutrients:   total,
			CreatedBy:   input.CreatedBy,
			Description: input.Description,
		})
		if err != nil {
			return err
		}

		if err := writeLines(ctx, tx, created.ID, lines); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate()
	metrics.RecipesWritten.WithLabelValues(metrics.OperationCreate).Inc()
	log.Info(LogMsgRecipeCreated, "food_id", created.ID, "food", created.Name, "lines", len(input.Lines))
	return created, nil
}

func (s *service) ReplaceRecipe(ctx context.Context, input ReplaceRecipeInput) (*domain.Food, error) {
	log := logger.FromContext(ctx)

	input.normalize()
	if err := validateInput(input, ErrMsgInvalidRecipe); err != nil {
		return nil, err
	}

	var updated *domain.Food
	err := s.locks.WithLock(nameLockKey(input.Food), func() error {
		food, err := s.repo.GetFoodByName(ctx, input.Food)
		if err != nil {
			return err
		}

		lines, err := s.resolveLines(ctx, input.Lines)
		if err != nil {
			return err
		}
		total, err := totalOf(lines)
		if err != nil {
			return err
		}

		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
		}
		defer repository.SafeRollback(ctx, tx)

		// The row may have been deleted between the read and the lock.
		locked, err := tx.GetFoodForUpdate(ctx, food.ID)
		if err != nil {
			return err
		}

		if err := tx.DeleteRecipeLines(ctx, locked.ID); err != nil {
			return err
		}
		if err := writeLines(ctx, tx, locked.ID, lines); err != nil {
			return err
		}

		locked.Nutrients = total
		if err := tx.UpdateFoodNutrients(ctx, locked.ID, locked.Nutrients); err != nil {
			return err
		}
		if input.Description != nil {
			if err := tx.UpdateFoodDescription(ctx, locked.ID, input.Description); err != nil {
				return err
			}
			locked.Description = input.Description
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
		}
		updated = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate()
	metrics.RecipesWritten.WithLabelValues(metrics.OperationReplace).Inc()
	log.Info(LogMsgRecipeReplaced, "food_id", updated.ID, "food", updated.Name, "lines", len(input.Lines))
	return updated, nil
}

func (s *service) GetRecipe(ctx context.Context, foodName string) (*domain.Recipe, error) {
	foodName = strings.TrimSpace(foodName)
	if foodName == "" {
		return nil, fmt.Errorf("%w: food name is required", domain.ErrInvalidInput)
	}

	food, err := s.repo.GetFoodByName(ctx, foodName)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetRecipeLines(ctx, food.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrRecipeNotFound
	}

	recipe := &domain.Recipe{
		Food:        food.Name,
		Description: food.Description,
		Nutrients:   food.Nutrients,
		Ingredients: make([]domain.RecipeItem, 0, len(lines)),
	}
	for _, line := range lines {
		recipe.Ingredients = append(recipe.Ingredients, domain.RecipeItem{
			Ingredient: line.IngredientName,
			Grams:      line.Grams,
		})
	}
	return recipe, nil
}

func (s *service) DeleteRecipeLine(ctx context.Context, lineID int) (*domain.Food, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	foodID, err := tx.DeleteRecipeLine(ctx, lineID)
	if err != nil {
		return nil, err
	}

	food, err := recompute(ctx, tx, foodID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	s.invalidate()
	log.Info(LogMsgLineDeleted, "line_id", lineID, "food_id", foodID)
	return food, nil
}

func (s *service) CreateIngredient(ctx context.Context, input CreateIngredientInput) (*domain.Ingredient, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input, ErrMsgInvalidIngredient); err != nil {
		return nil, err
	}
	if err := input.Nutrients.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateIngredient(ctx, &domain.Ingredient{
		Name:      input.Name,
		Nutrients: input.Nutrients,
		CreatedBy: input.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgIngredientCreated, "ingredient_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *service) GetIngredient(ctx context.Context, id int) (*domain.Ingredient, error) {
	return s.repo.GetIngredientByID(ctx, id)
}

// DeleteIngredient removes the ingredient and re-derives every food whose
// recipe used it, all in one transaction.
func (s *service) DeleteIngredient(ctx context.Context, id int) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	affected, err := tx.DeleteIngredient(ctx, id)
	if err != nil {
		return err
	}

	// Lock rows in a stable order so concurrent deletes cannot deadlock.
	slices.Sort(affected)
	affected = slices.Compact(affected)
	for _, foodID := range affected {
		if _, err := recompute(ctx, tx, foodID); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	s.invalidate()
	logger.FromContext(ctx).Info(LogMsgIngredientDeleted, "ingredient_id", id, "foods", len(affected))
	return nil
}

// resolveLines looks every ingredient up before anything is written. The
// first missing name, in submission order, is reported.
func (s *service) resolveLines(ctx context.Context, lines []Line) ([]resolvedLine, error) {
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		names = append(names, l.Ingredient)
	}

	found, err := s.repo.GetIngredientsByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgResolveIngredients, err)
	}

	resolved := make([]resolvedLine, 0, len(lines))
	for _, l := range lines {
		ing, ok := found[strings.ToLower(l.Ingredient)]
		if !ok {
			return nil, fmt.Errorf("%w: "+ErrMsgMissingIngredient, domain.ErrIngredientNotFound, l.Ingredient)
		}
		resolved = append(resolved, resolvedLine{ingredient: ing, grams: l.Grams})
	}
	return resolved, nil
}

func (s *service) invalidate() {
	if s.invalidator != nil {
		s.invalidator.InvalidateCache()
	}
}

func writeLines(ctx context.Context, tx repository.RecipeTx, foodID int, lines []resolvedLine) error {
	for _, l := range lines {
		if _, err := tx.CreateRecipeLine(ctx, foodID, l.ingredient.ID, l.grams); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgWriteLines, err)
		}
	}
	return nil
}

// recompute locks the food and overwrites its totals from the lines that
// remain, never adjusting the stored values incrementally.
func recompute(ctx context.Context, tx repository.RecipeTx, foodID int) (*domain.Food, error) {
	food, err := tx.GetFoodForUpdate(ctx, foodID)
	if err != nil {
		return nil, err
	}

	lines, err := tx.GetRecipeLines(ctx, foodID)
	if err != nil {
		return nil, err
	}

	var sum domain.NutrientSum
	for _, l := range lines {
		sum = sum.AddScaled(l.IngredientNutrients, l.Grams)
	}
	if food.Nutrients, err = sum.Round(); err != nil {
		return nil, err
	}

	if err := tx.UpdateFoodNutrients(ctx, foodID, food.Nutrients); err != nil {
		return nil, fmt.Errorf(ErrMsgRecomputeTotals+": %w", foodID, err)
	}
	return food, nil
}

// totalOf sums scaled ingredient values from zero and rounds once.
func totalOf(lines []resolvedLine) (domain.Nutrients, error) {
	var sum domain.NutrientSum
	for _, l := range lines {
		sum = sum.AddScaled(l.ingredient.Nutrients, l.grams)
	}
	return sum.Round()
}

func nameLockKey(name string) string {
	return lockKeyFoodName + cases.Fold().String(name)
}
