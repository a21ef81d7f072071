package config

import (
	"os"
	"time"
)

// Config holds all process-wide settings. It is loaded once in main and
// passed to the components that need it; nothing mutates it after startup.
type Config struct {
	Port          string
	DatabaseDSN   string
	JWTSecret     []byte
	JWTExpiration time.Duration
	PublicDir     string
	UploadsDir    string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost port=5432 user=myuser password=mypassword dbname=blog sslmode=disable"),
		JWTSecret:     []byte(getEnv("JWT_SECRET", "your-secret-key-change-in-production")),
		JWTExpiration: 7 * 24 * time.Hour,
		PublicDir:     getEnv("PUBLIC_DIR", "public"),
		UploadsDir:    getEnv("UPLOADS_DIR", "public/uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
