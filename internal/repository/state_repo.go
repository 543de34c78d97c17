package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"phaseplan/internal/database"
)

// StateRepository stores the serialized app state in a single app_state row
type StateRepository struct {
	db  *database.DB
	key string
}

// NewStateRepository creates a repository bound to one state key
func NewStateRepository(db *database.DB, key string) *StateRepository {
	return &StateRepository{db: db, key: key}
}

// Key returns the state key this repository reads and writes
func (r *StateRepository) Key() string {
	return r.key
}

// Load returns the stored blob; found is false when nothing was saved yet
func (r *StateRepository) Load() (blob string, found bool, err error) {
	query := `SELECT state_value FROM app_state WHERE state_key = ?`
	err = r.db.QueryRow(query, r.key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load state %s: %w", r.key, err)
	}
	return blob, true, nil
}

// Save overwrites the stored blob
func (r *StateRepository) Save(blob string) error {
	if _, err := r.db.Exec(r.db.Dialect.UpsertStateQuery(), r.key, blob); err != nil {
		return fmt.Errorf("failed to save state %s: %w", r.key, err)
	}
	return nil
}

// Delete removes the stored blob so the next load starts from the seed
func (r *StateRepository) Delete() error {
	if _, err := r.db.Exec(`DELETE FROM app_state WHERE state_key = ?`, r.key); err != nil {
		return fmt.Errorf("failed to delete state %s: %w", r.key, err)
	}
	return nil
}
