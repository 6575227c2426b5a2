package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// StateRepository persists per-user wizard step state as JSON blobs.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// SaveStep upserts the state blob for one user and step.
func (r *StateRepository) SaveStep(ctx context.Context, userID int64, step int, data []byte) error {
	query := `INSERT INTO wizard_state (user_id, step, data, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, step) DO UPDATE
		SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, userID, step, string(data)); err != nil {
		return fmt.Errorf("failed to save step %d state: %w", step, err)
	}
	return nil
}

// LoadStep returns the state blob for one user and step, nil when none is
// stored yet.
func (r *StateRepository) LoadStep(ctx context.Context, userID int64, step int) ([]byte, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM wizard_state WHERE user_id = ? AND step = ?", userID, step).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load step %d state: %w", step, err)
	}
	return []byte(data), nil
}

// Clear removes all stored wizard state for one user.
func (r *StateRepository) Clear(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM wizard_state WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to clear wizard state: %w", err)
	}
	return nil
}
