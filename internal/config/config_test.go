package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "postgres", cfg.DBUser)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, DefaultDBName, cfg.DBName)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultNutritionAPITimeout, cfg.NutritionAPITimeout)
		assert.Equal(t, DefaultFoodCacheSize, cfg.FoodCacheSize)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Empty(t, cfg.JWTSecret)
		assert.False(t, cfg.ProviderEnabled())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvAPIKey, "custom-api-key")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvDBUser, "diary")
		t.Setenv(EnvDBPassword, "secret")
		t.Setenv(EnvDBHost, "db.example.com")
		t.Setenv(EnvDBPort, "5433")
		t.Setenv(EnvDBName, "diarydb")
		t.Setenv(EnvNutritionAPIKey, "rapid-key")
		t.Setenv(EnvNutritionAPITimeout, "3s")
		t.Setenv(EnvFoodCacheTTL, "1m")
		t.Setenv(EnvJWTSecret, "jwt-secret")
		t.Setenv(EnvTrustedProxies, "10.0.0.1,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "diary", cfg.DBUser)
		assert.Equal(t, "secret", cfg.DBPassword)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "diarydb", cfg.DBName)
		assert.Equal(t, 3*time.Second, cfg.NutritionAPITimeout)
		assert.Equal(t, time.Minute, cfg.FoodCacheTTL)
		assert.Equal(t, "jwt-secret", cfg.JWTSecret)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.True(t, cfg.ProviderEnabled())
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("rejects malformed numeric values", func(t *testing.T) {
		tests := []struct {
			name  string
			key   string
			value string
		}{
			{"port", EnvPort, "not-a-number"},
			{"float port", EnvPort, "8080.5"},
			{"empty port", EnvPort, ""},
			{"pool size", EnvDBMaxConns, "many"},
			{"timeout", EnvNutritionAPITimeout, "ten seconds"},
			{"cache ttl", EnvFoodCacheTTL, "5"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(EnvAPIKey, "test-key")
				t.Setenv(tt.key, tt.value)

				cfg, err := Load()

				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), "invalid "+tt.key)
			})
		}
	})

	t.Run("port range is not checked at load time", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "test-key")
		t.Setenv(EnvPort, "-1")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, -1, cfg.Port)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "diary",
		DBPassword: "p@ss",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBName:     "dietdiary",
	}
	assert.Equal(t, "postgres://diary:p@ss@localhost:5432/dietdiary?sslmode=disable", cfg.GetDBConnString())
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, splitList(" 10.0.0.1, ,10.0.0.2 "))
}

func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvPort, EnvAPIKey, EnvLogLevel, EnvLogFormat, EnvLogDir,
		EnvServiceName, EnvVersion, EnvEnvironment,
		EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBName,
		EnvDBMaxConns, EnvDBMaxConnIdle, EnvDBMaxConnLifetime,
		EnvJWTSecret, EnvTrustedProxies, EnvNutritionAPIURL, EnvNutritionAPIKey, EnvNutritionAPIHost,
		EnvNutritionAPITimeout, EnvFoodCacheSize, EnvFoodCacheTTL,
	}

	for _, key := range envVars {
		// t.Setenv registers restoration of the original value on cleanup.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
