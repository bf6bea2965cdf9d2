package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	ClearEnv()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "data/vocaplay.db", cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.DailyGoal)
	assert.Empty(t, cfg.WordTableDir)
}

func TestLoad_SQLiteOverrides(t *testing.T) {
	ClearEnv()
	t.Setenv("STORAGE_PATH", "/tmp/custom.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DAILY_GOAL", "25")
	t.Setenv("WORD_TABLE_DIR", "/srv/tables")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 25, cfg.DailyGoal)
	assert.Equal(t, "/srv/tables", cfg.WordTableDir)
}

func TestLoad_MySQL(t *testing.T) {
	ClearEnv()
	t.Setenv("STORAGE_DRIVER", "mysql")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "vocaplay")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "vocaplay")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Storage.Driver)
	assert.Equal(t, "vocaplay:secret@tcp(localhost:3306)/vocaplay?parseTime=true&multiStatements=true", cfg.Storage.DSN())
}

func TestLoad_MySQL_MissingVars(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{name: "missing host", missing: "DB_HOST"},
		{name: "missing port", missing: "DB_PORT"},
		{name: "missing user", missing: "DB_USER"},
		{name: "missing password", missing: "DB_PASSWORD"},
		{name: "missing name", missing: "DB_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ClearEnv()
			t.Setenv("STORAGE_DRIVER", "mysql")
			vars := map[string]string{
				"DB_HOST":     "localhost",
				"DB_PORT":     "3306",
				"DB_USER":     "vocaplay",
				"DB_PASSWORD": "secret",
				"DB_NAME":     "vocaplay",
			}
			delete(vars, tt.missing)
			for key, value := range vars {
				t.Setenv(key, value)
			}

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown driver", key: "STORAGE_DRIVER", value: "oracle"},
		{name: "non-numeric daily goal", key: "DAILY_GOAL", value: "lots"},
		{name: "zero daily goal", key: "DAILY_GOAL", value: "0"},
		{name: "negative daily goal", key: "DAILY_GOAL", value: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ClearEnv()
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

func TestLoadTestConfig(t *testing.T) {
	cfg := LoadTestConfig(t.TempDir())

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.NotEmpty(t, cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
