package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	UploadDir string
	LogFile   string
}

func Load() Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := Config{
		Port:      getEnv("PORT", "5000"),
		DBDSN:     getEnv("DB_DSN", "bazaar.db"),
		JWTSecret: getEnv("JWT_SECRET", "secret"),
		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		LogFile:   getEnv("LOG_FILE", ""),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s UPLOAD_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.UploadDir, cfg.LogFile)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
