package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultAddr           = "0.0.0.0:5000"
	defaultStaticDir      = "static"
	defaultSessionSecret  = "romantic-dashboard-secret-key"
	defaultMaxUploadBytes = 32 << 20
)

// Config holds everything read from the environment at startup
type Config struct {
	Addr           string
	StaticDir      string
	SessionSecret  string
	WeatherAPIKey  string
	MaxUploadBytes int64
	Debug          bool
}

func loadConfig() (Config, error) {
	_ = godotenv.Load() // loads .env into environment variables (safe to ignore error)

	cfg := Config{
		Addr:           getenv("DASHBOARD_ADDR", defaultAddr),
		StaticDir:      getenv("DASHBOARD_STATIC_DIR", defaultStaticDir),
		SessionSecret:  getenv("SESSION_SECRET", defaultSessionSecret),
		WeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		MaxUploadBytes: defaultMaxUploadBytes,
	}

	if v := os.Getenv("DASHBOARD_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("DASHBOARD_MAX_UPLOAD_BYTES: invalid value %q", v)
		}
		cfg.MaxUploadBytes = n
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
