package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DietDiary_Go/internal/database/generated"
	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/repository"
)

// RecipeRepository implements repository.Recipe for PostgreSQL
type RecipeRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// RecipeTx is a transaction scoped to recipe writes
type RecipeTx struct {
	pgTx
}

// BeginTx starts a new transaction
func (r *RecipeRepository) BeginTx(ctx context.Context) (repository.RecipeTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &RecipeTx{pgTx{tx: tx, q: r.q.WithTx(tx)}}, nil
}

// CreateIngredient inserts an ingredient; name collisions yield domain.ErrAlreadyExists.
func (r *RecipeRepository) CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) (*domain.Ingredient, error) {
	if err := ingredient.Nutrients.CheckStorable(); err != nil {
		return nil, err
	}
	createdBy, err := ptrToUUID(ingredient.CreatedBy)
	if err != nil {
		return nil, err
	}

	row, err := r.q.CreateIngredient(ctx, generated.CreateIngredientParams{
		Name:      ingredient.Name,
		Calories:  int32(ingredient.Nutrients.Calories),
		Fat:       int32(ingredient.Nutrients.Fat),
		Protein:   int32(ingredient.Nutrients.Protein),
		Carbon:    int32(ingredient.Nutrients.Carbon),
		CreatedBy: createdBy,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: ingredient %q", domain.ErrAlreadyExists, ingredient.Name)
		}
		if _, ok := foreignKeyViolation(err); ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, *ingredient.CreatedBy)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateIngredient, err)
	}
	return mapIngredient(row), nil
}

// GetIngredientByID fetches an ingredient by primary key.
func (r *RecipeRepository) GetIngredientByID(ctx context.Context, id int) (*domain.Ingredient, error) {
	row, err := r.q.GetIngredientByID(ctx, int32(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrIngredientNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredients, err)
	}
	return mapIngredient(row), nil
}

// GetIngredientsByNames resolves names in one round trip, keyed by lower-cased name.
func (r *RecipeRepository) GetIngredientsByNames(ctx context.Context, names []string) (map[string]domain.Ingredient, error) {
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}

	rows, err := r.q.GetIngredientsByNames(ctx, lowered)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredients, err)
	}

	result := make(map[string]domain.Ingredient, len(rows))
	for _, row := range rows {
		result[strings.ToLower(row.Name)] = *mapIngredient(row)
	}
	return result, nil
}

// GetFoodByName matches the name case-insensitively.
func (r *RecipeRepository) GetFoodByName(ctx context.Context, name string) (*domain.Food, error) {
	return getFoodByName(ctx, r.q, name)
}

// GetRecipeLines lists a food's lines with their ingredient values.
func (r *RecipeRepository) GetRecipeLines(ctx context.Context, foodID int) ([]domain.RecipeLine, error) {
	return getRecipeLines(ctx, r.q, foodID)
}

// CreateFood inserts the composite food inside the transaction.
func (t *RecipeTx) CreateFood(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	return createFood(ctx, t.q, food)
}

// GetFoodForUpdate locks the food row until the transaction ends.
func (t *RecipeTx) GetFoodForUpdate(ctx context.Context, foodID int) (*domain.Food, error) {
	return getFoodByID(ctx, t.q, foodID, true)
}

// UpdateFoodNutrients overwrites the stored per-100g values.
func (t *RecipeTx) UpdateFoodNutrients(ctx context.Context, foodID int, n domain.Nutrients) error {
	if err := n.CheckStorable(); err != nil {
		return err
	}
	err := t.q.UpdateFoodNutrients(ctx, generated.UpdateFoodNutrientsParams{
		FoodID:   int32(foodID),
		Calories: int32(n.Calories),
		Fat:      int32(n.Fat),
		Protein:  int32(n.Protein),
		Carbon:   int32(n.Carbon),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateFood, err)
	}
	return nil
}

// UpdateFoodDescription replaces the recipe description.
func (t *RecipeTx) UpdateFoodDescription(ctx context.Context, foodID int, description *string) error {
	err := t.q.UpdateFoodDescription(ctx, generated.UpdateFoodDescriptionParams{
		FoodID:      int32(foodID),
		Description: ptrToText(description),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateFood, err)
	}
	return nil
}

// GetRecipeLines reads lines inside the transaction.
func (t *RecipeTx) GetRecipeLines(ctx context.Context, foodID int) ([]domain.RecipeLine, error) {
	return getRecipeLines(ctx, t.q, foodID)
}

// CreateRecipeLine links an ingredient to a food.
func (t *RecipeTx) CreateRecipeLine(ctx context.Context, foodID, ingredientID, grams int) (*domain.RecipeLine, error) {
	g, err := toInt4(grams)
	if err != nil {
		return nil, err
	}
	row, err := t.q.CreateRecipeLine(ctx, generated.CreateRecipeLineParams{
		FoodID:       int32(foodID),
		IngredientID: int32(ingredientID),
		Grams:        g,
	})
	if err != nil {
		if constraint, ok := foreignKeyViolation(err); ok {
			if strings.Contains(constraint, ConstraintFragmentFoodID) {
				return nil, fmt.Errorf("%w: id %d", domain.ErrFoodNotFound, foodID)
			}
			return nil, fmt.Errorf("%w: id %d", domain.ErrIngredientNotFound, ingredientID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateRecipeLine, err)
	}
	return &domain.RecipeLine{
		ID:           int(row.RecipeLineID),
		FoodID:       int(row.FoodID),
		IngredientID: int(row.IngredientID),
		Grams:        int(row.Grams),
	}, nil
}

// DeleteRecipeLines removes every line of a food.
func (t *RecipeTx) DeleteRecipeLines(ctx context.Context, foodID int) error {
	if err := t.q.DeleteRecipeLinesByFood(ctx, int32(foodID)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecipeLines, err)
	}
	return nil
}

// DeleteRecipeLine removes a single line and reports its food.
func (t *RecipeTx) DeleteRecipeLine(ctx context.Context, lineID int) (int, error) {
	foodID, err := t.q.DeleteRecipeLine(ctx, int32(lineID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: recipe line %d", domain.ErrNotFound, lineID)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecipeLines, err)
	}
	return int(foodID), nil
}

// DeleteIngredient removes an ingredient and its lines, returning the affected foods.
func (t *RecipeTx) DeleteIngredient(ctx context.Context, ingredientID int) ([]int, error) {
	ids, err := t.q.GetFoodIDsByIngredient(ctx, int32(ingredientID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteIngredient, err)
	}

	n, err := t.q.DeleteIngredient(ctx, int32(ingredientID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteIngredient, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrIngredientNotFound, ingredientID)
	}

	foodIDs := make([]int, len(ids))
	for i, id := range ids {
		foodIDs[i] = int(id)
	}
	return foodIDs, nil
}
