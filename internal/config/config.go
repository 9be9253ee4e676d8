package config

import (
	"log"
	"os"
	"strings"
)

// Config holds all runtime configuration. Everything comes from environment
// variables; a .env file is loaded by main before Load runs.
type Config struct {
	Port        string // HTTP port to listen on
	DatabaseURL string // postgres:// DSN
	Schema      string // schema holding the stored procedures
	CORSOrigins []string
}

// Load reads configuration from the environment. DATABASE_URL is required;
// everything else has a default.
func Load() Config {
	return Config{
		Port:        envOrDefault("PORT", "8080"),
		DatabaseURL: mustEnv("DATABASE_URL"),
		Schema:      envOrDefault("DB_SCHEMA", "sch_reservas_hotel"),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
	}
}

func mustEnv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envOrDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func splitOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
