package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/vocaplay/engine/internal/models"
)

// userRecordKey is the app_state key holding the user record document
const userRecordKey = "user_record"

// KeyValueStore is the interface that wraps the app_state access methods
type KeyValueStore interface {
	// Get retrieves the value stored under a key, or nil when absent.
	//
	// "key" is the app_state key to read.
	//
	// Returns the raw JSON value and an error if any.
	Get(ctx context.Context, key string) (json.RawMessage, error)
	// Set stores a value under a key, replacing any previous value.
	//
	// "key" is the app_state key to write.
	// "value" is the raw JSON value to store.
	//
	// Returns an error if any.
	Set(ctx context.Context, key string, value json.RawMessage) error
	// Delete removes a key; deleting an absent key is not an error.
	//
	// "key" is the app_state key to remove.
	//
	// Returns an error if any.
	Delete(ctx context.Context, key string) error
}

// userRecordRepository persists the user record document through the
// key-value store
type userRecordRepository struct {
	state  KeyValueStore
	logger *zap.Logger
}

// NewUserRecordRepository creates a new user record repository
func NewUserRecordRepository(state KeyValueStore, logger *zap.Logger) *userRecordRepository {
	return &userRecordRepository{
		state:  state,
		logger: logger,
	}
}

// Load retrieves the stored user record. A missing record returns (nil, nil).
// A record that cannot be decoded is logged and also treated as "no user";
// the raw row is left in place for inspection and the next Save overwrites it.
func (r *userRecordRepository) Load(ctx context.Context) (*models.UserRecord, error) {
	raw, err := r.state.Get(ctx, userRecordKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var record models.UserRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		r.logger.Warn("corrupt user record in store, treating as no user",
			zap.String("key", userRecordKey),
			zap.Error(err),
		)
		return nil, nil
	}

	return &record, nil
}

// Save writes the user record document
func (r *userRecordRepository) Save(ctx context.Context, record *models.UserRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}

	if err := r.state.Set(ctx, userRecordKey, raw); err != nil {
		return fmt.Errorf("failed to save user record: %w", err)
	}
	return nil
}

// Reset deletes the user record. This is the single destructive operation
// behind "reset profile".
func (r *userRecordRepository) Reset(ctx context.Context) error {
	if err := r.state.Delete(ctx, userRecordKey); err != nil {
		return fmt.Errorf("failed to reset user record: %w", err)
	}
	return nil
}
