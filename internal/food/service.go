package food

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/logger"
	"github.com/osse101/DietDiary_Go/internal/metrics"
	"github.com/osse101/DietDiary_Go/internal/repository"
)

// Provider looks foods up in an external nutrition database.
type Provider interface {
	Lookup(ctx context.Context, name, lang string) ([]domain.ImportCandidate, error)
}

// Service resolves food names against the local directory, importing from
// the provider when nothing matches.
type Service interface {
	SearchOrImport(ctx context.Context, name, lang string) ([]domain.Food, error)
	CreateFood(ctx context.Context, input CreateFoodInput) (*domain.Food, error)
	GetFood(ctx context.Context, id int) (*domain.Food, error)
	GetFoodByName(ctx context.Context, name string) (*domain.Food, error)
	DeleteFood(ctx context.Context, id int) error
	InvalidateCache()
}

// CreateFoodInput describes a base food entered by hand.
type CreateFoodInput struct {
	Name        string
	Nutrients   domain.Nutrients
	CreatedBy   *string
	Description *string
}

// CacheConfig sizes the search cache. A zero Size disables caching.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type service struct {
	repo     repository.Food
	provider Provider
	cache    *expirable.LRU[string, []domain.Food]
	limit    int
}

// NewService creates a food resolver. provider may be nil, in which case
// searches never import.
func NewService(repo repository.Food, provider Provider, cacheCfg CacheConfig) Service {
	s := &service{
		repo:     repo,
		provider: provider,
		limit:    DefaultSearchLimit,
	}
	if cacheCfg.Size > 0 {
		ttl := cacheCfg.TTL
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		s.cache = expirable.NewLRU[string, []domain.Food](cacheCfg.Size, nil, ttl)
	}
	return s
}

func (s *service) SearchOrImport(ctx context.Context, name, lang string) ([]domain.Food, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = domain.DefaultLanguage
	}

	key := cacheKey(name)
	if s.cache != nil {
		if foods, ok := s.cache.Get(key); ok {
			log.Debug(LogMsgCacheHit, "name", name)
			metrics.FoodCacheHits.Inc()
			metrics.FoodSearches.WithLabelValues(metrics.ResultLocal).Inc()
			return cloneFoods(foods), nil
		}
	}

	foods, err := s.repo.SearchFoods(ctx, name, s.limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSearchFailed, err)
	}
	if len(foods) > 0 {
		log.Debug(LogMsgLocalMatch, "name", name, "count", len(foods))
		s.remember(key, foods)
		metrics.FoodSearches.WithLabelValues(metrics.ResultLocal).Inc()
		return foods, nil
	}

	if s.provider == nil {
		metrics.FoodSearches.WithLabelValues(metrics.ResultNotFound).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrFoodNotFound, ErrMsgProviderMissing)
	}

	log.Info(LogMsgImporting, "name", name, "lang", lang)
	candidates, err := s.provider.Lookup(ctx, name, lang)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(metrics.ResultFailure).Inc()
		metrics.FoodSearches.WithLabelValues(metrics.ResultNotFound).Inc()
		return nil, err
	}
	metrics.ProviderRequests.WithLabelValues(metrics.ResultSuccess).Inc()

	imported, err := s.importCandidates(ctx, candidates)
	if err != nil {
		return nil, err
	}
	if imported > 0 {
		s.InvalidateCache()
	}

	foods, err = s.repo.SearchFoods(ctx, name, s.limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSearchFailed, err)
	}
	if len(foods) == 0 {
		metrics.FoodSearches.WithLabelValues(metrics.ResultNotFound).Inc()
		return nil, fmt.Errorf("%w: "+ErrMsgNoUsableImports, domain.ErrFoodNotFound, name)
	}

	s.remember(key, foods)
	metrics.FoodSearches.WithLabelValues(metrics.ResultImported).Inc()
	return foods, nil
}

// importCandidates inserts each candidate independently. A name collision
// means another writer got there first and is not an error.
func (s *service) importCandidates(ctx context.Context, candidates []domain.ImportCandidate) (int, error) {
	log := logger.FromContext(ctx)

	imported := 0
	for _, c := range candidates {
		food := &domain.Food{Name: strings.TrimSpace(c.Name), Nutrients: c.Nutrients}
		if err := validateFood(food.Name, food.Nutrients, nil); err != nil {
			log.Warn(LogMsgCandidateRejected, "name", c.Name, "error", err)
			continue
		}

		created, err := s.repo.CreateFood(ctx, food)
		if errors.Is(err, domain.ErrAlreadyExists) {
			log.Debug(LogMsgCandidateExists, "name", food.Name)
			continue
		}
		if err != nil {
			return imported, fmt.Errorf(ErrMsgImportFailed+": %w", food.Name, err)
		}

		imported++
		metrics.FoodsImported.Inc()
		log.Info(LogMsgImported, "food_id", created.ID, "name", created.Name)
	}
	return imported, nil
}

func (s *service) CreateFood(ctx context.Context, input CreateFoodInput) (*domain.Food, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(input.Name)
	if err := validateFood(name, input.Nutrients, input.Description); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateFood(ctx, &domain.Food{
		Name:        name,
		Nutrients:   input.Nutrients,
		CreatedBy:   input.CreatedBy,
		Description: input.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateFoodFailed, err)
	}

	s.InvalidateCache()
	log.Info(LogMsgFoodCreated, "food_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *service) GetFood(ctx context.Context, id int) (*domain.Food, error) {
	return s.repo.GetFoodByID(ctx, id)
}

func (s *service) GetFoodByName(ctx context.Context, name string) (*domain.Food, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}
	return s.repo.GetFoodByName(ctx, name)
}

func (s *service) DeleteFood(ctx context.Context, id int) error {
	if err := s.repo.DeleteFood(ctx, id); err != nil {
		return err
	}
	s.InvalidateCache()
	logger.FromContext(ctx).Info(LogMsgFoodDeleted, "food_id", id)
	return nil
}

// InvalidateCache drops every cached search. Any write to the directory
// must call it.
func (s *service) InvalidateCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

func (s *service) remember(key string, foods []domain.Food) {
	if s.cache != nil {
		s.cache.Add(key, cloneFoods(foods))
	}
}

func validateFood(name string, n domain.Nutrients, description *string) error {
	if name == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}
	if utf8.RuneCountInString(name) > domain.MaxFoodNameLength {
		return fmt.Errorf("%w: "+ErrMsgNameTooLong, domain.ErrInvalidInput, domain.MaxFoodNameLength)
	}
	if description != nil && utf8.RuneCountInString(*description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: "+ErrMsgDescriptionLong, domain.ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return n.Validate()
}

// cacheKey folds case so "Apple" and "APPLE" share an entry. Casers are not
// safe for concurrent use, so one is built per call.
func cacheKey(name string) string {
	return cases.Fold().String(name)
}

func cloneFoods(foods []domain.Food) []domain.Food {
	out := make([]domain.Food, len(foods))
	copy(out, foods)
	return out
}
