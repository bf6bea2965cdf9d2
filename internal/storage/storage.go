// Package storage opens the durable store and keeps its schema current
package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vocaplay/engine/internal/config"
)

//go:embed migrations/sqlite/*.sql migrations/mysql/*.sql
var migrationFiles embed.FS

// Open connects to the configured database. SQLite covers the single-user
// local deployment; MySQL covers a small shared one.
func Open(cfg *config.Config) (*sql.DB, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		return openSQLite(cfg.Storage.Path)
	case "mysql":
		return openMySQL(cfg.Storage.DSN())
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}
}

// openSQLite opens the single-file store, creating its directory if needed
func openSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// openMySQL connects to a MySQL server
func openMySQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// RunMigrations applies the embedded migrations for the given driver
func RunMigrations(db *sql.DB, driver string) error {
	src, err := iofs.New(migrationFiles, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	var dbDriver database.Driver
	var name string
	switch driver {
	case "sqlite":
		name = "sqlite3"
		dbDriver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	case "mysql":
		name = "mysql"
		dbDriver, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	default:
		return fmt.Errorf("unsupported storage driver: %s", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
