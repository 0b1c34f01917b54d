package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// HTTP configuration
	ListenAddr string

	// Database configuration
	DatabaseURL string

	// Rewards configuration
	TokensPerKG      float64 // Conversion rate from saved kilograms to tokens
	MaxSavingsPerDay float64 // Anti-cheat ceiling for a single report, in kg
	LeaderboardSize  int     // Number of entries returned by the leaderboard
	HistoryLimit     int     // Number of ledger entries returned with totals

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// HTTP
		ListenAddr: os.Getenv("LISTEN_ADDR"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Rewards settings with defaults
		TokensPerKG:      10,
		MaxSavingsPerDay: 1000,
		LeaderboardSize:  20,
		HistoryLimit:     50,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.ListenAddr == "" {
		config.ListenAddr = ":7000"
	}

	// Override defaults if environment variables are set
	if rate := os.Getenv("TOKENS_PER_KG"); rate != "" {
		if parsedRate, err := strconv.ParseFloat(rate, 64); err == nil && parsedRate > 0 {
			config.TokensPerKG = parsedRate
		}
	}
	if ceiling := os.Getenv("MAX_SAVINGS_PER_DAY"); ceiling != "" {
		if parsedCeiling, err := strconv.ParseFloat(ceiling, 64); err == nil && parsedCeiling > 0 {
			config.MaxSavingsPerDay = parsedCeiling
		}
	}
	if size := os.Getenv("LEADERBOARD_SIZE"); size != "" {
		if parsedSize, err := strconv.Atoi(size); err == nil && parsedSize > 0 {
			config.LeaderboardSize = parsedSize
		}
	}
	if limit := os.Getenv("HISTORY_LIMIT"); limit != "" {
		if parsedLimit, err := strconv.Atoi(limit); err == nil && parsedLimit > 0 {
			config.HistoryLimit = parsedLimit
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
