package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DietDiary_Go/internal/database/generated"
	"github.com/osse101/DietDiary_Go/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	q *generated.Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{q: generated.New(pool)}
}

// CreateUser inserts a user; duplicate username or email yields domain.ErrAlreadyExists.
func (r *UserRepository) CreateUser(ctx context.Context, username, email string) (*domain.User, error) {
	row, err := r.q.CreateUser(ctx, generated.CreateUserParams{Username: username, Email: email})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: user %q", domain.ErrAlreadyExists, username)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return mapUser(row), nil
}

// GetUserByID returns domain.ErrUserNotFound when absent.
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	row, err := r.q.GetUserByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserByID, err)
	}
	return mapUser(row), nil
}

// GetUserByUsername returns domain.ErrUserNotFound when absent.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserByUsername, err)
	}
	return mapUser(row), nil
}

func mapUser(row generated.User) *domain.User {
	return &domain.User{
		ID:        row.UserID.String(),
		Username:  row.Username,
		Email:     row.Email,
		CreatedAt: row.CreatedAt.Time,
	}
}
