package food

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

var noCache = CacheConfig{}

func TestSearchOrImport_LocalMatchSkipsProvider(t *testing.T) {
	repo := newFakeFoodRepo(domain.Food{Name: "Apple", Nutrients: domain.Nutrients{Calories: 52}})
	provider := &fakeProvider{}
	svc := NewService(repo, provider, noCache)

	foods, err := svc.SearchOrImport(context.Background(), "app", "en")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Apple", foods[0].Name)
	assert.Equal(t, 0, provider.callCount())
}

func TestSearchOrImport_ImportsWhenNoLocalMatch(t *testing.T) {
	repo := newFakeFoodRepo()
	provider := &fakeProvider{candidates: []domain.ImportCandidate{
		{Name: "Banana", Nutrients: domain.Nutrients{Calories: 89, Fat: 0, Protein: 1, Carbon: 22}},
		{Name: "Banana bread", Nutrients: domain.Nutrients{Calories: 326, Fat: 10, Protein: 4, Carbon: 54}},
	}}
	svc := NewService(repo, provider, noCache)

	foods, err := svc.SearchOrImport(context.Background(), "banana", "")
	require.NoError(t, err)
	assert.Len(t, foods, 2)
	assert.Equal(t, 1, provider.callCount())

	again, err := svc.SearchOrImport(context.Background(), "banana", "en")
	require.NoError(t, err)
	assert.Len(t, again, 2)
	assert.Equal(t, 1, provider.callCount(), "second search must be served locally")
}

func TestSearchOrImport_ExistingCandidateIsSkipped(t *testing.T) {
	repo := newFakeFoodRepo(domain.Food{Name: "Oat Milk"})
	provider := &fakeProvider{candidates: []domain.ImportCandidate{
		{Name: "oat milk", Nutrients: domain.Nutrients{Calories: 45}},
		{Name: "Oatmeal", Nutrients: domain.Nutrients{Calories: 68}},
	}}
	svc := NewService(repo, provider, noCache)

	foods, err := svc.SearchOrImport(context.Background(), "oatmeal", "en")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Oatmeal", foods[0].Name)
}

func TestSearchOrImport_RejectsInvalidCandidates(t *testing.T) {
	repo := newFakeFoodRepo()
	provider := &fakeProvider{candidates: []domain.ImportCandidate{
		{Name: strings.Repeat("x", domain.MaxFoodNameLength+1)},
		{Name: "  "},
		{Name: "xxx giant", Nutrients: domain.Nutrients{Calories: 4294967446}},
	}}
	svc := NewService(repo, provider, noCache)

	_, err := svc.SearchOrImport(context.Background(), "xxx", "en")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestSearchOrImport_ProviderFailure(t *testing.T) {
	upstream := fmt.Errorf("%w: %w", domain.ErrFoodNotFound, domain.ErrUpstreamUnavailable)
	svc := NewService(newFakeFoodRepo(), &fakeProvider{err: upstream}, noCache)

	_, err := svc.SearchOrImport(context.Background(), "kale", "en")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestSearchOrImport_NoProvider(t *testing.T) {
	svc := NewService(newFakeFoodRepo(), nil, noCache)

	_, err := svc.SearchOrImport(context.Background(), "kale", "en")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestSearchOrImport_EmptyName(t *testing.T) {
	svc := NewService(newFakeFoodRepo(), &fakeProvider{}, noCache)

	_, err := svc.SearchOrImport(context.Background(), "   ", "en")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchOrImport_DatabaseErrorDuringImport(t *testing.T) {
	repo := newFakeFoodRepo()
	repo.failWith = errors.New("connection reset")
	provider := &fakeProvider{candidates: []domain.ImportCandidate{{Name: "Kiwi"}}}
	svc := NewService(repo, provider, noCache)

	_, err := svc.SearchOrImport(context.Background(), "kiwi", "en")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestSearchOrImport_CacheFoldsCase(t *testing.T) {
	repo := newFakeFoodRepo(domain.Food{Name: "Apple"})
	svc := NewService(repo, nil, CacheConfig{Size: 8})

	_, err := svc.SearchOrImport(context.Background(), "Apple", "en")
	require.NoError(t, err)
	_, err = svc.SearchOrImport(context.Background(), "APPLE", "en")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.searchCount())
}

func TestSearchOrImport_WritesPurgeCache(t *testing.T) {
	repo := newFakeFoodRepo(domain.Food{Name: "Apple"})
	svc := NewService(repo, nil, CacheConfig{Size: 8})
	ctx := context.Background()

	foods, err := svc.SearchOrImport(ctx, "apple", "en")
	require.NoError(t, err)
	require.Len(t, foods, 1)

	_, err = svc.CreateFood(ctx, CreateFoodInput{Name: "Apple pie", Nutrients: domain.Nutrients{Calories: 237}})
	require.NoError(t, err)

	foods, err = svc.SearchOrImport(ctx, "apple", "en")
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}

func TestSearchOrImport_ConcurrentImportsConverge(t *testing.T) {
	repo := newFakeFoodRepo()
	provider := &fakeProvider{candidates: []domain.ImportCandidate{{Name: "Mango", Nutrients: domain.Nutrients{Calories: 60}}}}
	svc := NewService(repo, provider, noCache)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			foods, err := svc.SearchOrImport(context.Background(), "mango", "en")
			if err == nil && len(foods) != 1 {
				err = fmt.Errorf("got %d foods", len(foods))
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, repo.foods, 1)
}

func TestCreateFood(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateFoodInput
		wantErr error
	}{
		{
			name:  "valid",
			input: CreateFoodInput{Name: " Toast ", Nutrients: domain.Nutrients{Calories: 265, Fat: 3, Protein: 9, Carbon: 49}},
		},
		{
			name:    "duplicate ignoring case",
			input:   CreateFoodInput{Name: "egg"},
			wantErr: domain.ErrAlreadyExists,
		},
		{
			name:    "empty name",
			input:   CreateFoodInput{Name: ""},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "negative nutrients",
			input:   CreateFoodInput{Name: "Weird", Nutrients: domain.Nutrients{Fat: -1}},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "nutrients above limit",
			input:   CreateFoodInput{Name: "Huge", Nutrients: domain.Nutrients{Calories: domain.MaxNutrientValue + 1}},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "name too long",
			input:   CreateFoodInput{Name: strings.Repeat("a", domain.MaxFoodNameLength+1)},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeFoodRepo(domain.Food{Name: "Egg"}), nil, noCache)

			created, err := svc.CreateFood(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Toast", created.Name)
			assert.NotZero(t, created.ID)
		})
	}
}

func TestGetAndDeleteFood(t *testing.T) {
	repo := newFakeFoodRepo(domain.Food{Name: "Egg"})
	svc := NewService(repo, nil, noCache)
	ctx := context.Background()

	byName, err := svc.GetFoodByName(ctx, "EGG")
	require.NoError(t, err)

	byID, err := svc.GetFood(ctx, byName.ID)
	require.NoError(t, err)
	assert.Equal(t, byName, byID)

	require.NoError(t, svc.DeleteFood(ctx, byID.ID))
	assert.ErrorIs(t, svc.DeleteFood(ctx, byID.ID), domain.ErrFoodNotFound)

	_, err = svc.GetFood(ctx, byID.ID)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
