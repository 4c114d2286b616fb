package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// devJWTSecret is the fallback signing key used when AUTH_JWT_SECRET is unset.
// Deployments must provide their own secret; main logs a warning on fallback.
const devJWTSecret = "dev-secret"

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Auth    AuthConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name    string
	Host    string
	Port    string
	Version string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret        string
	TokenTTLMinutes  int
	SecretIsFallback bool
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// MetricsConfig controls request tracking.
type MetricsConfig struct {
	TrackingEnabled bool
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := getEnv("AUTH_JWT_SECRET", "")
	fallback := secret == ""
	if fallback {
		secret = devJWTSecret
	}

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "usage-metrics-api"),
			Host:    getEnv("APP_HOST", "0.0.0.0"),
			Port:    getEnv("APP_PORT", "3000"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Auth: AuthConfig{
			JWTSecret:        secret,
			TokenTTLMinutes:  getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 60),
			SecretIsFallback: fallback,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			TrackingEnabled: getEnvAsBool("METRICS_TRACKING_ENABLED", true),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
