package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	Environment   string
	JWTSecret     string
	JWTAlgorithm  string
	JWTTTLMinutes int
	CORSOrigins   []string
	SentryDSN     string

	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicBaseURL string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTAlgorithm:  getEnv("JWT_ALGORITHM", "HS256"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 30),
		CORSOrigins:   splitList(os.Getenv("CORS_ORIGINS")),
		SentryDSN:     os.Getenv("SENTRY_DSN"),

		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		AnthropicBaseURL: os.Getenv("ANTHROPIC_BASE_URL"),
	}
	return cfg
}

// IsProduction reports whether the deployment environment flag is "production".
func (c Config) IsProduction() bool { return c.Environment == "production" }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// splitList parses a ";"-separated env value into a clean slice.
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
