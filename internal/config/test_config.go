package config

import (
	"os"
	"path/filepath"
)

// LoadTestConfig returns a configuration suitable for tests: a sqlite store
// inside the given temp directory and debug logging. Environment variables
// are not consulted, so tests stay hermetic.
func LoadTestConfig(tempDir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   filepath.Join(tempDir, "vocaplay_test.db"),
		},
		Logging:   LoggingConfig{Level: "debug"},
		DailyGoal: 10,
	}
}

// ClearEnv removes every configuration variable from the environment.
// Tests that exercise Load call this first to avoid leakage between cases.
func ClearEnv() {
	for _, key := range []string{
		"STORAGE_DRIVER", "STORAGE_PATH",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"LOG_LEVEL", "DAILY_GOAL", "WORD_TABLE_DIR",
	} {
		os.Unsetenv(key)
	}
}
