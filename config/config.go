package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Extra CORS origins, comma separated in CORS_ALLOWED_ORIGINS
	AllowedOrigins []string
	// Contact delivery. An empty URL selects log-only acknowledgment.
	ContactWebhookURL     string
	ContactWebhookTimeout time.Duration
	// Observability
	LogLevel       string
	MetricsEnabled bool
	// Release mode disables localhost CORS origins
	IsProduction bool
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored when no .env file exists
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		// Strip trailing slash so it compares equal to the browser's Origin header
		FrontendURL:           strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins:        getEnvList("CORS_ALLOWED_ORIGINS"),
		ContactWebhookURL:     strings.TrimSpace(getEnv("CONTACT_WEBHOOK_URL", "")),
		ContactWebhookTimeout: time.Duration(getEnvInt("CONTACT_WEBHOOK_TIMEOUT_SECONDS", 0)) * time.Second, // 0 = no timeout
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		MetricsEnabled:        getEnvBool("METRICS_ENABLED", true),
		IsProduction:          getEnv("GIN_MODE", "") == "release",
	}

	return cfg, nil
}

// WebhookConfigured reports whether submissions are forwarded or only logged
func (c *Config) WebhookConfigured() bool {
	return c.ContactWebhookURL != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
