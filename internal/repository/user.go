package repository

import (
	"context"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, username, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
