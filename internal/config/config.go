package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdle     time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string   // API key for authentication
	JWTSecret      string   // optional; enables bearer tokens alongside the API key
	TrustedProxies []string // proxies allowed to set X-Forwarded-For

	NutritionAPIURL     string
	NutritionAPIKey     string
	NutritionAPIHost    string
	NutritionAPITimeout time.Duration

	FoodCacheSize int
	FoodCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		DBUser:     getEnv(EnvDBUser, "postgres"),
		DBPassword: getEnv(EnvDBPassword, "postgres"),
		DBHost:     getEnv(EnvDBHost, "localhost"),
		DBPort:     getEnv(EnvDBPort, "5432"),
		DBName:     getEnv(EnvDBName, DefaultDBName),

		APIKey:         getEnv(EnvAPIKey, ""),
		JWTSecret:      getEnv(EnvJWTSecret, ""),
		TrustedProxies: splitList(getEnv(EnvTrustedProxies, "")),

		NutritionAPIURL:  getEnv(EnvNutritionAPIURL, DefaultNutritionAPIURL),
		NutritionAPIKey:  getEnv(EnvNutritionAPIKey, ""),
		NutritionAPIHost: getEnv(EnvNutritionAPIHost, DefaultNutritionAPIHost),
	}

	var err error
	if cfg.Port, err = parseIntEnv(EnvPort, DefaultPort); err != nil {
		return nil, err
	}
	if cfg.DBMaxConns, err = parseIntEnv(EnvDBMaxConns, DefaultDBMaxConns); err != nil {
		return nil, err
	}
	if cfg.FoodCacheSize, err = parseIntEnv(EnvFoodCacheSize, DefaultFoodCacheSize); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnIdle, err = parseDurationEnv(EnvDBMaxConnIdle, DefaultDBMaxConnIdle); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnLifetime, err = parseDurationEnv(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime); err != nil {
		return nil, err
	}
	if cfg.NutritionAPITimeout, err = parseDurationEnv(EnvNutritionAPITimeout, DefaultNutritionAPITimeout); err != nil {
		return nil, err
	}
	if cfg.FoodCacheTTL, err = parseDurationEnv(EnvFoodCacheTTL, DefaultFoodCacheTTL); err != nil {
		return nil, err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// ProviderEnabled reports whether the external nutrition provider has credentials.
func (c *Config) ProviderEnabled() bool {
	return c.NutritionAPIURL != "" && c.NutritionAPIKey != ""
}
