// Package repositories provides durable-state data access
package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// appStateRepository implements the key-value capability over the app_state
// table. Values are JSON documents; REPLACE keeps the upsert portable across
// the sqlite and mysql drivers.
type appStateRepository struct {
	db *sql.DB
}

// NewAppStateRepository creates a new app state repository
func NewAppStateRepository(db *sql.DB) *appStateRepository {
	return &appStateRepository{
		db: db,
	}
}

// Get retrieves the value stored under a key, or nil when the key is absent
func (r *appStateRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	query := `
		SELECT v
		FROM app_state
		WHERE k = ?
		LIMIT 1
	`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get app state %q: %w", key, err)
	}

	return json.RawMessage(value), nil
}

// Set stores a value under a key, replacing any previous value
func (r *appStateRepository) Set(ctx context.Context, key string, value json.RawMessage) error {
	query := `REPLACE INTO app_state (k, v) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, key, []byte(value)); err != nil {
		return fmt.Errorf("failed to set app state %q: %w", key, err)
	}
	return nil
}

// Delete removes a key; deleting an absent key is not an error
func (r *appStateRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM app_state WHERE k = ?`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete app state %q: %w", key, err)
	}
	return nil
}
