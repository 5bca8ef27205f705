package repository

import (
	"context"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

// Recipe defines the interface for ingredients and recipe lines.
type Recipe interface {
	CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) (*domain.Ingredient, error)
	GetIngredientByID(ctx context.Context, id int) (*domain.Ingredient, error)
	// GetIngredientsByNames matches case-insensitively and keys the result by
	// lower-cased name. Missing names are simply absent from the map.
	GetIngredientsByNames(ctx context.Context, names []string) (map[string]domain.Ingredient, error)
	GetFoodByName(ctx context.Context, name string) (*domain.Food, error)
	GetRecipeLines(ctx context.Context, foodID int) ([]domain.RecipeLine, error)

	BeginTx(ctx context.Context) (RecipeTx, error)
}

// RecipeTx groups the writes that must land together when a recipe changes.
type RecipeTx interface {
	Tx
	CreateFood(ctx context.Context, food *domain.Food) (*domain.Food, error)
	GetFoodForUpdate(ctx context.Context, foodID int) (*domain.Food, error)
	UpdateFoodNutrients(ctx context.Context, foodID int, nutrients domain.Nutrients) error
	UpdateFoodDescription(ctx context.Context, foodID int, description *string) error
	GetRecipeLines(ctx context.Context, foodID int) ([]domain.RecipeLine, error)
	CreateRecipeLine(ctx context.Context, foodID, ingredientID, grams int) (*domain.RecipeLine, error)
	DeleteRecipeLines(ctx context.Context, foodID int) error
	// DeleteRecipeLine returns the owning food's ID.
	DeleteRecipeLine(ctx context.Context, lineID int) (int, error)
	// DeleteIngredient returns the IDs of foods whose recipes used it.
	DeleteIngredient(ctx context.Context, ingredientID int) ([]int, error)
}
