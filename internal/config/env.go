package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServerSettings holds process-level settings for the HTTP server
type ServerSettings struct {
	Addr          string        // listen address
	ConfigFile    string        // optional engine configuration file
	RedisAddr     string        // empty means in-memory cache
	RedisPassword string        // Redis AUTH password
	RedisDB       int           // Redis database number
	CacheTTL      time.Duration // result cache lifetime
	RateLimit     int           // requests per client per window, 0 disables
	RateWindow    time.Duration // rate limit refill window
	LogLevel      string        // logrus level name
}

// LoadServerSettings reads settings from the environment after loading the
// given .env files (".env" when none are named). Missing files are ignored.
func LoadServerSettings(envFiles ...string) (*ServerSettings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	ttl, err := getEnvDuration("CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	window, err := getEnvDuration("RATE_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	limit, err := getEnvInt("RATE_LIMIT", 60)
	if err != nil {
		return nil, err
	}
	db, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	return &ServerSettings{
		Addr:          getEnv("SERVER_ADDR", ":8080"),
		ConfigFile:    getEnv("EMI_CONFIG", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       db,
		CacheTTL:      ttl,
		RateLimit:     limit,
		RateWindow:    window,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 30s or 5m, got %q", key, value)
	}
	return d, nil
}
