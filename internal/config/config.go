package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	AllowedOrigins  []string
	FrontendURL     string
	RedisURL        string
	RedisPassword   string
	MoveCacheTTL    time.Duration
	BotMoveDelay    time.Duration
	FinishedGameTTL time.Duration
	StaticDir       string
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:8080")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + Localhost + CSV values)
	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Move cache
	redisURL := GetEnv("REDIS_URL", "localhost:6379")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	moveCacheTTLMin := GetEnvAsInt("MOVE_CACHE_TTL_MINUTES", 60)

	botMoveDelayMs := GetEnvAsInt("BOT_MOVE_DELAY_MS", 500)
	if botMoveDelayMs < 0 {
		botMoveDelayMs = 0
	}

	finishedGameTTLMin := GetEnvAsInt("FINISHED_GAME_TTL_MINUTES", 30)

	AppConfig = &Config{
		Port:            port,
		AllowedOrigins:  allowedOrigins,
		FrontendURL:     frontendURL,
		RedisURL:        redisURL,
		RedisPassword:   redisPassword,
		MoveCacheTTL:    time.Duration(moveCacheTTLMin) * time.Minute,
		BotMoveDelay:    time.Duration(botMoveDelayMs) * time.Millisecond,
		FinishedGameTTL: time.Duration(finishedGameTTLMin) * time.Minute,
		StaticDir:       GetEnv("STATIC_DIR", "./static"),
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
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
