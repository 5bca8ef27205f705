package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DietDiary_Go/internal/database/generated"
	"github.com/osse101/DietDiary_Go/internal/domain"
)

// FoodRepository implements repository.Food for PostgreSQL
type FoodRepository struct {
	q *generated.Queries
}

// NewFoodRepository creates a new FoodRepository
func NewFoodRepository(pool *pgxpool.Pool) *FoodRepository {
	return &FoodRepository{q: generated.New(pool)}
}

// CreateFood inserts a base food.
func (r *FoodRepository) CreateFood(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	return createFood(ctx, r.q, food)
}

// GetFoodByID fetches a food by primary key.
func (r *FoodRepository) GetFoodByID(ctx context.Context, id int) (*domain.Food, error) {
	return getFoodByID(ctx, r.q, id, false)
}

// GetFoodByName matches the name case-insensitively.
func (r *FoodRepository) GetFoodByName(ctx context.Context, name string) (*domain.Food, error) {
	return getFoodByName(ctx, r.q, name)
}

// SearchFoods returns foods whose name contains query, ignoring case.
func (r *FoodRepository) SearchFoods(ctx context.Context, query string, limit int) ([]domain.Food, error) {
	rows, err := r.q.SearchFoodsByName(ctx, generated.SearchFoodsByNameParams{
		Pattern:    likePattern(query),
		MaxResults: int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchFoods, err)
	}

	foods := make([]domain.Food, 0, len(rows))
	for _, row := range rows {
		foods = append(foods, *mapFood(row))
	}
	return foods, nil
}

// DeleteFood removes a food; recipe lines and log entries cascade.
func (r *FoodRepository) DeleteFood(ctx context.Context, id int) error {
	n, err := r.q.DeleteFood(ctx, int32(id))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteFood, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrFoodNotFound, id)
	}
	return nil
}
