package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/trendcast/models"
)

// Load initializes configuration from environment variables
func Load() (*models.Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &models.Config{}

	cfg.OutputDir = getEnvWithDefault("OUTPUT_DIR", "./charts")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.SaveCharts = getEnvBoolWithDefault("SAVE_CHARTS", true)
	cfg.Label = getEnvWithDefault("LABEL", "Custom Series")

	if raw := os.Getenv("PRICES"); raw != "" {
		prices, err := parsePrices(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing PRICES: %w", err)
		}
		cfg.Prices = prices
	}

	return cfg, nil
}

// parsePrices parses a comma-separated list of prices, e.g. "100, 102.5, 104"
func parsePrices(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	prices := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %w", part, err)
		}
		prices = append(prices, value)
	}
	return prices, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
