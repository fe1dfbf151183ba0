package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret string

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	LinkCheckTimeout time.Duration // per-request timeout for the link checker
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",

		LogLevel:  getenv("LOG_LEVEL", "info"),
		PrettyLog: getenv("PRETTY_LOG", "false") == "true",

		LinkCheckTimeout: getDuration("LINK_CHECK_TIMEOUT", 10*time.Second),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.JWTSecret = mustGetenv("JWT_SECRET")
	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
