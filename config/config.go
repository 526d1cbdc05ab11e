package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	GeminiAPIKey   string
	GeminiModel    string
	Environment    string
	LogLevel       string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:           get("PORT", "8000"),
		DatabaseURL:    must("DATABASE_URL"),
		JWTSecret:      must("JWT_SECRET"),
		TokenTTL:       time.Duration(getInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		AllowedOrigins: splitList(get("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000,https://deeprealties.vercel.app")),
		GeminiAPIKey:   get("GEMINI_API_KEY", ""),
		GeminiModel:    get("GEMINI_MODEL", "gemini-2.5-flash"),
		Environment:    get("ENVIRONMENT", "production"),
		LogLevel:       get("LOG_LEVEL", "info"),
	}
	return cfg
}

// IsDevelopment reports whether verbose console logging should be used.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", k, v, def)
		return def
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
