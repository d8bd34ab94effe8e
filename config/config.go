package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Port              string
	DSN               string
	LogLevel          string
	LogFormat         string
	Timezone          string
	StaticDir         string
	ExportDir         string
	UseGCS            bool
	GCSBucket         string
	SeedDemoData      bool
	CORSAllowedOrigin string
}

// Load reads .env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		Port:              getEnv("PORT", "8080"),
		DSN:               os.Getenv("DB_DSN"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		Timezone:          os.Getenv("TIMEZONE"),
		StaticDir:         os.Getenv("STATIC_DIR"),
		ExportDir:         getEnv("EXPORT_DIR", "./exports"),
		UseGCS:            getBool("USE_GCS", false),
		GCSBucket:         os.Getenv("GCS_BUCKET"),
		SeedDemoData:      getBool("SEED_DEMO_DATA", true),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// Connect opens the PostgreSQL database behind dsn.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}
