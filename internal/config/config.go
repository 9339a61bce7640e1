package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port     int
	LogLevel string
	LogJSON  bool

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// APIKey authenticates the discord front end and any other collaborator
	// allowed to call mutating endpoints.
	APIKey string

	// StoreTimeout bounds every call to the backing store. A timeout is
	// surfaced as domain.ErrStoreUnavailable, never a silent hang.
	StoreTimeout time.Duration

	// GambleMinimumStake is the smallest amount a user may wager.
	GambleMinimumStake int64

	// Airdrop knobs. The spawn cadence and weighting are the front end's
	// business; the TTL and prize bounds apply wherever an airdrop starts.
	AirdropTTL      time.Duration
	AirdropMinPrize int64
	AirdropMaxPrize int64

	LeaderboardLimit int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogJSON:    getEnv("LOG_FORMAT", "text") == "json",
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "dawsonrp"),
		APIKey:     getEnv("API_KEY", ""),

		StoreTimeout:       getEnvAsDuration("STORE_TIMEOUT", 5*time.Second),
		GambleMinimumStake: int64(getEnvAsInt("GAMBLE_MINIMUM_STAKE", 10)),
		AirdropTTL:         getEnvAsDuration("AIRDROP_TTL", 5*time.Minute),
		AirdropMinPrize:    int64(getEnvAsInt("AIRDROP_MIN_PRIZE", 50)),
		AirdropMaxPrize:    int64(getEnvAsInt("AIRDROP_MAX_PRIZE", 100)),
		LeaderboardLimit:   getEnvAsInt("LEADERBOARD_LIMIT", 25),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.AirdropMinPrize > cfg.AirdropMaxPrize {
		return nil, fmt.Errorf("AIRDROP_MIN_PRIZE (%d) exceeds AIRDROP_MAX_PRIZE (%d)",
			cfg.AirdropMinPrize, cfg.AirdropMaxPrize)
	}

	return cfg, nil
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

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns the default
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration retrieves a duration environment variable or returns the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
