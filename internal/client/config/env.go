package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first when present; real
// environment variables win over .env entries (godotenv does not overwrite).
//
// Recognized variables:
//
//	STITCHDESK_API_URL        base REST API URL
//	STITCHDESK_ASSET_URL      base asset/storage URL
//	STITCHDESK_TIMEOUT        request timeout in seconds
//	STITCHDESK_PING_INTERVAL  online check interval in seconds
//	STITCHDESK_TOKEN_FILE     token file path
//	STITCHDESK_LOG_LEVEL      debug|info|warn|error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.BaseAPIURL = getEnv("STITCHDESK_API_URL", cfg.BaseAPIURL)
	cfg.BaseAssetURL = getEnv("STITCHDESK_ASSET_URL", cfg.BaseAssetURL)
	cfg.TokenFile = getEnv("STITCHDESK_TOKEN_FILE", cfg.TokenFile)
	cfg.LogLevel = getEnv("STITCHDESK_LOG_LEVEL", cfg.LogLevel)

	if v := getEnvAsInt("STITCHDESK_TIMEOUT", 0); v > 0 {
		cfg.RequestTimeout = time.Duration(v) * time.Second
	}
	if v := getEnvAsInt("STITCHDESK_PING_INTERVAL", 0); v > 0 {
		cfg.OnlineCheckInterval = time.Duration(v) * time.Second
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return valueInt
}
