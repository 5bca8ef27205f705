package bootstrap

import (
	"log/slog"

	"github.com/osse101/DietDiary_Go/internal/concurrency"
	"github.com/osse101/DietDiary_Go/internal/config"
	"github.com/osse101/DietDiary_Go/internal/diary"
	"github.com/osse101/DietDiary_Go/internal/food"
	"github.com/osse101/DietDiary_Go/internal/nutrition"
	"github.com/osse101/DietDiary_Go/internal/recipe"
	"github.com/osse101/DietDiary_Go/internal/server"
	"github.com/osse101/DietDiary_Go/internal/user"
)

// NutritionConfig maps application config onto the provider client.
func NutritionConfig(cfg *config.Config) nutrition.Config {
	return nutrition.Config{
		BaseURL:    cfg.NutritionAPIURL,
		APIKey:     cfg.NutritionAPIKey,
		Host:       cfg.NutritionAPIHost,
		Timeout:    cfg.NutritionAPITimeout,
		MaxRetries: nutrition.DefaultMaxRetries,
		RetryDelay: nutrition.DefaultRetryDelay,
	}
}

// InitializeServices builds the engine on top of repos. Recipe writes purge
// the food search cache since they add or change directory rows.
func InitializeServices(cfg *config.Config, repos *Repositories) server.Services {
	if !cfg.ProviderEnabled() {
		slog.Warn(LogMsgProviderDisabled)
	}

	foodSvc := food.NewService(repos.Food, nutrition.NewClient(NutritionConfig(cfg)), food.CacheConfig{
		Size: cfg.FoodCacheSize,
		TTL:  cfg.FoodCacheTTL,
	})

	svc := server.Services{
		Users:       user.NewService(repos.User),
		Foods:       foodSvc,
		Recipes:     recipe.NewService(repos.Recipe, concurrency.NewLockManager(), foodSvc),
		Accumulator: diary.NewAccumulator(repos.Diary),
		Aggregator:  diary.NewAggregator(repos.Diary),
	}

	slog.Info(LogMsgServicesReady)
	return svc
}
