package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	FrontendURL    string

	GameMode  string
	FirstTurn string
	AISeed    int64

	LogLevel string
	LogFile  string

	WSReadTimeout  time.Duration
	WSPingInterval time.Duration

	SessionIdleTimeout time.Duration
	CleanupInterval    time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOrigins := append([]string{frontendURL}, GetEnvAsList("ALLOWED_ORIGINS")...)

	// Game
	gameMode := GetEnvOneOf("GAME_MODE", "pvai", "pvai", "pvp")
	firstTurn := GetEnvOneOf("FIRST_TURN", "player", "player", "ai", "random")
	aiSeed := GetEnvAsInt64("AI_SEED", 0)

	// Logging
	logLevel := GetEnvOneOf("LOG_LEVEL", "info", "debug", "info", "warn", "error")
	logFile := GetEnv("LOG_FILE", "")

	// WebSocket keep-alive
	readTimeoutSec := GetEnvAsInt("WS_READ_TIMEOUT_SECONDS", 60)
	pingIntervalSec := GetEnvAsInt("WS_PING_INTERVAL_SECONDS", 30)
	if pingIntervalSec >= readTimeoutSec {
		log.Warn().Int("ping", pingIntervalSec).Int("timeout", readTimeoutSec).
			Msg("WS ping interval must be below the read timeout, using defaults")
		readTimeoutSec, pingIntervalSec = 60, 30
	}

	// Idle sessions
	sessionIdleMin := GetEnvAsInt("SESSION_IDLE_MINUTES", 60)
	cleanupIntervalMin := GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 10)
	if sessionIdleMin <= 0 {
		sessionIdleMin = 60
	}
	if cleanupIntervalMin <= 0 {
		cleanupIntervalMin = 10
	}

	AppConfig = &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,
		GameMode:       gameMode,
		FirstTurn:      firstTurn,
		AISeed:         aiSeed,
		LogLevel:       logLevel,
		LogFile:        logFile,
		WSReadTimeout:  time.Duration(readTimeoutSec) * time.Second,
		WSPingInterval: time.Duration(pingIntervalSec) * time.Second,

		SessionIdleTimeout: time.Duration(sessionIdleMin) * time.Minute,
		CleanupInterval:    time.Duration(cleanupIntervalMin) * time.Minute,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).
			Msg("Invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int64("default", defaultValue).
			Msg("Invalid integer value, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsList splits a comma separated value, dropping empty entries.
func GetEnvAsList(key string) []string {
	var values []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// GetEnvOneOf returns the lowercased value when it is one of allowed.
func GetEnvOneOf(key, defaultValue string, allowed ...string) string {
	value := strings.ToLower(GetEnv(key, defaultValue))
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	log.Warn().Str("key", key).Str("value", value).Str("default", defaultValue).
		Msg("Unsupported value, using default")
	return defaultValue
}
