package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/logger"
	"github.com/osse101/DietDiary_Go/internal/repository"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Service manages diary owners.
type Service interface {
	RegisterUser(ctx context.Context, input RegisterInput) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// RegisterInput carries the fields needed to create a user.
type RegisterInput struct {
	Username string `validate:"required,max=150,excludesall=<>"`
	Email    string `validate:"required,email"`
}

type service struct {
	repo  repository.User
	cache *userCache
}

// NewService creates a user service.
func NewService(repo repository.User) Service {
	return &service{
		repo:  repo,
		cache: newUserCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

// RegisterUser creates a user. Usernames and emails are unique.
func (s *service) RegisterUser(ctx context.Context, input RegisterInput) (*domain.User, error) {
	log := logger.FromContext(ctx)

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	log.Info(LogMsgRegisterUserCalled, "username", input.Username)

	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidUser, err)
	}

	created, err := s.repo.CreateUser(ctx, input.Username, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: "+ErrMsgUsernameTaken, domain.ErrAlreadyExists, input.Username)
		}
		return nil, err
	}

	s.cache.Set(created)
	log.Info(LogMsgUserRegistered, "user_id", created.ID, "username", created.Username)
	return created, nil
}

func (s *service) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, strings.TrimSpace(userID))
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameNeeded)
	}

	if u, ok := s.cache.Get(username); ok {
		logger.FromContext(ctx).Debug(LogMsgUserCacheHit, "username", username)
		return u, nil
	}

	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	s.cache.Set(u)
	return u, nil
}
