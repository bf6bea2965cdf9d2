// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Storage      StorageConfig
	Logging      LoggingConfig
	DailyGoal    int
	WordTableDir string
}

// StorageConfig holds durable-store settings
type StorageConfig struct {
	Driver   string // "sqlite" or "mysql"
	Path     string // sqlite database file
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// DSN returns the MySQL data source name. multiStatements is required for
// running multi-statement migration files.
func (s StorageConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&multiStatements=true", s.User, s.Password, s.Host, s.Port, s.DBName)
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}

	// Storage configuration
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}
	if driver != "sqlite" && driver != "mysql" {
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER: %s", driver)
	}
	cfg.Storage.Driver = driver

	switch driver {
	case "sqlite":
		path := os.Getenv("STORAGE_PATH")
		if path == "" {
			path = "data/vocaplay.db"
		}
		cfg.Storage.Path = path
	case "mysql":
		dbHost := os.Getenv("DB_HOST")
		if dbHost == "" {
			return nil, fmt.Errorf("DB_HOST is required")
		}
		cfg.Storage.Host = dbHost

		dbPortStr := os.Getenv("DB_PORT")
		if dbPortStr == "" {
			return nil, fmt.Errorf("DB_PORT is required")
		}
		dbPort, err := strconv.Atoi(dbPortStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT: %w", err)
		}
		cfg.Storage.Port = dbPort

		dbUser := os.Getenv("DB_USER")
		if dbUser == "" {
			return nil, fmt.Errorf("DB_USER is required")
		}
		cfg.Storage.User = dbUser

		dbPassword := os.Getenv("DB_PASSWORD")
		if dbPassword == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}
		cfg.Storage.Password = dbPassword

		dbName := os.Getenv("DB_NAME")
		if dbName == "" {
			return nil, fmt.Errorf("DB_NAME is required")
		}
		cfg.Storage.DBName = dbName
	}

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	cfg.Logging.Level = logLevel

	// Learning defaults
	dailyGoal := 10
	if goalStr := os.Getenv("DAILY_GOAL"); goalStr != "" {
		goal, err := strconv.Atoi(goalStr)
		if err != nil || goal <= 0 {
			return nil, fmt.Errorf("invalid DAILY_GOAL: %s", goalStr)
		}
		dailyGoal = goal
	}
	cfg.DailyGoal = dailyGoal

	// Optional directory with per-language word table JSON files
	cfg.WordTableDir = os.Getenv("WORD_TABLE_DIR")

	return cfg, nil
}
