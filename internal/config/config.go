package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	ServerPort string
	ServerEnv  string
	ServerHost string

	// Database
	DatabaseURL string

	// Provider API keys
	GeocodeAPIKey     string
	WeatherAPIKey     string
	EventsAPIKey      string
	MoviesAPIKey      string
	ReviewsAPIKey     string
	ProviderTimeoutMS int

	// Freshness windows per resource kind
	WeatherTTL time.Duration
	EventsTTL  time.Duration
	MoviesTTL  time.Duration
	ReviewsTTL time.Duration

	// OTLP collector endpoint (traces/metrics disabled when empty)
	OTLPEndpoint string
}

func Load() *Config {
	return &Config{
		// Server
		ServerPort: getEnv("SERVER_PORT", "3000"),
		ServerEnv:  getEnv("SERVER_ENV", "development"),
		ServerHost: getEnv("SERVER_HOST", "localhost:3000"),

		// Database - DATABASE_URL wins, otherwise built from discrete vars
		DatabaseURL: getDatabaseURL(),

		// Providers
		GeocodeAPIKey:     getEnv("GEOCODE_API_KEY", ""),
		WeatherAPIKey:     getEnv("WEATHER_API_KEY", ""),
		EventsAPIKey:      getEnv("EVENTS_API_KEY", ""),
		MoviesAPIKey:      getEnv("MOVIES_API_KEY", ""),
		ReviewsAPIKey:     getEnv("REVIEWS_API_KEY", ""),
		ProviderTimeoutMS: getEnvAsInt("PROVIDER_TIMEOUT_MS", 10000),

		// Freshness windows
		WeatherTTL: getEnvAsDuration("WEATHER_TTL", 15*time.Second),
		EventsTTL:  getEnvAsDuration("EVENTS_TTL", time.Hour),
		MoviesTTL:  getEnvAsDuration("MOVIES_TTL", 24*time.Hour),
		ReviewsTTL: getEnvAsDuration("REVIEWS_TTL", 4*time.Hour),

		// Telemetry
		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration parses values like "15s" or "1h30m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getDatabaseURL returns DATABASE_URL or builds it from individual env vars
func getDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	// Discrete env vars match the k8s secret key names
	host := getEnv("POSTGRES_HOST", "localhost")
	port := getEnv("POSTGRES_PORT", "5432")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "")
	dbname := getEnv("POSTGRES_DB", "localscope")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, dbname, sslmode)
}
