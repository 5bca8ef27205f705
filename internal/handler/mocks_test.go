package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/food"
	"github.com/osse101/DietDiary_Go/internal/recipe"
	"github.com/osse101/DietDiary_Go/internal/user"
)

const (
	testUserID  = "7f1c7c8e-3b0e-4d8e-9a57-0d6a2c1f4b11"
	otherUserID = "1a2b3c4d-5e6f-4a1b-8c2d-3e4f5a6b7c8d"
)

// MockFoodService mocks food.Service
type MockFoodService struct {
	mock.Mock
}

func (m *MockFoodService) SearchOrImport(ctx context.Context, name, lang string) ([]domain.Food, error) {
	args := m.Called(ctx, name, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

func (m *MockFoodService) CreateFood(ctx context.Context, input food.CreateFoodInput) (*domain.Food, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *MockFoodService) GetFood(ctx context.Context, id int) (*domain.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *MockFoodService) GetFoodByName(ctx context.Context, name string) (*domain.Food, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *MockFoodService) DeleteFood(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFoodService) InvalidateCache() {
	m.Called()
}

// MockRecipeService mocks recipe.Service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) CreateRecipe(ctx context.Context, input recipe.CreateRecipeInput) (*domain.Food, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *MockRecipeService) ReplaceRecipe(ctx context.Context, input recipe.ReplaceRecipeInput) (*domain.Food, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, foodName string) (*domain.Recipe, error) {
	args := m.Called(ctx, foodName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipeLine(ctx context.Context, lineID int) (*domain.Food, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *MockRecipeService) CreateIngredient(ctx context.Context, input recipe.CreateIngredientInput) (*domain.Ingredient, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockRecipeService) GetIngredient(ctx context.Context, id int) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockRecipeService) DeleteIngredient(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

// MockAccumulator mocks diary.Accumulator
type MockAccumulator struct {
	mock.Mock
}

func (m *MockAccumulator) RecordFood(ctx context.Context, userID string, foodID int, date time.Time) (*domain.DailyStat, error) {
	args := m.Called(ctx, userID, foodID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyStat), args.Error(1)
}

func (m *MockAccumulator) ApplyDelta(ctx context.Context, userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error) {
	args := m.Called(ctx, userID, date, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyStat), args.Error(1)
}

func (m *MockAccumulator) DeleteEntry(ctx context.Context, userID string, entryID int64) (*domain.DailyStat, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyStat), args.Error(1)
}

func (m *MockAccumulator) GetDay(ctx context.Context, userID string, date time.Time) (domain.DailyStat, bool, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(domain.DailyStat), args.Bool(1), args.Error(2)
}

func (m *MockAccumulator) ListEntries(ctx context.Context, userID string, date time.Time) ([]domain.FoodLogEntry, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodLogEntry), args.Error(1)
}

func (m *MockAccumulator) ListEntriesRange(ctx context.Context, userID string, start, end time.Time) ([]domain.FoodLogEntry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodLogEntry), args.Error(1)
}

// MockAggregator mocks diary.Aggregator
type MockAggregator struct {
	mock.Mock
}

func (m *MockAggregator) ListRange(ctx context.Context, userID string, start, end time.Time) ([]domain.DailyStat, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyStat), args.Error(1)
}

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, input user.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// newRequest builds a request, optionally with a JSON body and chi URL params.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func mustDay(s string) time.Time {
	d, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}
