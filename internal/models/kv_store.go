package models

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"leadcomposer/internal/database"
)

// Entry is one row of the key-value store.
type Entry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KeyValueRepository is the local persistence service: opaque string values under string keys.
type KeyValueRepository struct {
	db *database.DB
}

func NewKeyValueRepository(db *database.DB) *KeyValueRepository {
	return &KeyValueRepository{db: db}
}

// Get returns the value stored under key. ok is false when the key was never written.
func (r *KeyValueRepository) Get(key string) (string, bool, error) {
	entry, err := r.GetEntry(key)
	if err != nil {
		return "", false, err
	}
	if entry == nil {
		return "", false, nil
	}
	return entry.Value, true, nil
}

// GetEntry returns the full row for key, or nil if absent.
func (r *KeyValueRepository) GetEntry(key string) (*Entry, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	query := `
		SELECT key, value, updated_at
		FROM kv_store
		WHERE key = ?
	`

	var entry Entry
	err := r.db.Conn().QueryRow(query, key).Scan(
		&entry.Key,
		&entry.Value,
		&entry.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}

	return &entry, nil
}

// Set overwrites the value stored under key.
func (r *KeyValueRepository) Set(key, value string) error {
	r.db.Lock()
	defer r.db.Unlock()

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Conn().Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}

	return nil
}
