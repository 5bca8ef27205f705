package config

import "time"

// Environment variable names
const (
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvLogDir              = "LOG_DIR"
	EnvEnvironment         = "ENVIRONMENT"
	EnvServiceName         = "SERVICE_NAME"
	EnvVersion             = "VERSION"
	EnvDBUser              = "DB_USER"
	EnvDBPassword          = "DB_PASSWORD"
	EnvDBHost              = "DB_HOST"
	EnvDBPort              = "DB_PORT"
	EnvDBName              = "DB_NAME"
	EnvDBMaxConns          = "DB_MAX_CONNS"
	EnvDBMaxConnIdle       = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLifetime   = "DB_MAX_CONN_LIFETIME"
	EnvAPIKey              = "API_KEY"
	EnvJWTSecret           = "JWT_SECRET"
	EnvTrustedProxies      = "TRUSTED_PROXIES"
	EnvNutritionAPIURL     = "NUTRITION_API_URL"
	EnvNutritionAPIKey     = "NUTRITION_API_KEY"
	EnvNutritionAPIHost    = "NUTRITION_API_HOST"
	EnvNutritionAPITimeout = "NUTRITION_API_TIMEOUT"
	EnvFoodCacheSize       = "FOOD_CACHE_SIZE"
	EnvFoodCacheTTL        = "FOOD_CACHE_TTL"
	EnvSchemaVersion       = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort                = 8080
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
	DefaultLogDir              = "logs"
	DefaultEnvironment         = "dev"
	DefaultServiceName         = "diet-diary"
	DefaultVersion             = "dev"
	DefaultDBName              = "dietdiary"
	DefaultDBMaxConns          = 10
	DefaultDBMaxConnIdle       = 5 * time.Minute
	DefaultDBMaxConnLifetime   = time.Hour
	DefaultNutritionAPIURL     = "https://dietagram.p.rapidapi.com"
	DefaultNutritionAPIHost    = "dietagram.p.rapidapi.com"
	DefaultNutritionAPITimeout = 10 * time.Second
	DefaultFoodCacheSize       = 256
	DefaultFoodCacheTTL        = 10 * time.Minute
)
