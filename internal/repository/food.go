package repository

import (
	"context"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

// Food defines the interface for the food directory.
// Lookups return domain.ErrFoodNotFound when nothing matches and inserts
// return domain.ErrAlreadyExists on a case-insensitive name collision.
type Food interface {
	CreateFood(ctx context.Context, food *domain.Food) (*domain.Food, error)
	GetFoodByID(ctx context.Context, id int) (*domain.Food, error)
	GetFoodByName(ctx context.Context, name string) (*domain.Food, error)
	SearchFoods(ctx context.Context, query string, limit int) ([]domain.Food, error)
	DeleteFood(ctx context.Context, id int) error
}
