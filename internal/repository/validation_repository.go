package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mosaops/timesheet-backend-go/internal/database"
	"github.com/mosaops/timesheet-backend-go/internal/models"
)

// ValidationRepository reads and patches the realtime HM validation rows.
type ValidationRepository struct {
	db *sql.DB
}

// NewValidationRepository creates a new validation repository
func NewValidationRepository(db *sql.DB) *ValidationRepository {
	return &ValidationRepository{db: db}
}

// FetchRows returns validation rows, optionally narrowed to one equipment
// unit, as generic maps keyed by column name. Rows are returned in login
// order.
func (r *ValidationRepository) FetchRows(ctx context.Context, mobileid string) ([]models.ValidationRow, []string, error) {
	query := "SELECT * FROM hm_validation"
	var args []interface{}
	if mobileid != "" {
		query += " WHERE mobileid = ?"
		args = append(args, mobileid)
	}
	query += " ORDER BY reporttime"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query validation rows: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read validation columns: %w", err)
	}

	var out []models.ValidationRow
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan validation row: %w", err)
		}
		row := make(models.ValidationRow, len(cols))
		for i, col := range cols {
			switch v := values[i].(type) {
			case []byte:
				row[col] = string(v)
			default:
				row[col] = v
			}
		}
		out = append(out, row)
	}
	return out, cols, rows.Err()
}

// UpdateShift rewrites the shift on a validated session, on both the
// validation row and the underlying trip rows for the login and logout
// events. All rows move together or not at all.
func (r *ValidationRepository) UpdateShift(ctx context.Context, id, nextID int64, newShift string) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE hm_validation SET opr_shift = ? WHERE id = ?", newShift, id)
		if err != nil {
			return fmt.Errorf("failed to update shift: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("validation row %d not found", id)
		}

		ids := []int64{id}
		if nextID != 0 {
			ids = append(ids, nextID)
		}
		for _, rowID := range ids {
			if _, err := tx.ExecContext(ctx,
				"UPDATE opr_dump SET opr_shift = ? WHERE id = ?", newShift, rowID); err != nil {
				return fmt.Errorf("failed to update trip shift: %w", err)
			}
		}
		return nil
	})
}

// UpdatePrevHM rewrites the previous-logout reading of a session and the
// hour meter on the source login record.
func (r *ValidationRepository) UpdatePrevHM(ctx context.Context, prevID int64, oprNRP string, newHM float64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE hm_validation SET prev_hm = ? WHERE prev_id = ? AND opr_nrp = ?",
		newHM, prevID, oprNRP)
	if err != nil {
		return fmt.Errorf("failed to update previous HM: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no validation row references record %d", prevID)
	}
	return r.updateHistoryHM(ctx, prevID, newHM)
}

// UpdateHM rewrites the login reading of a session.
func (r *ValidationRepository) UpdateHM(ctx context.Context, id int64, oprNRP string, newHM float64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE hm_validation SET hm = ? WHERE id = ? AND opr_nrp = ?",
		newHM, id, oprNRP)
	if err != nil {
		return fmt.Errorf("failed to update HM: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("validation row %d not found", id)
	}
	return r.updateHistoryHM(ctx, id, newHM)
}

// UpdateNextHM rewrites the logout reading of a session.
func (r *ValidationRepository) UpdateNextHM(ctx context.Context, nextID int64, oprNRP string, newHM float64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE hm_validation SET next_hm = ? WHERE next_id = ? AND opr_nrp = ?",
		newHM, nextID, oprNRP)
	if err != nil {
		return fmt.Errorf("failed to update next HM: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no validation row references record %d", nextID)
	}
	return r.updateHistoryHM(ctx, nextID, newHM)
}

// updateHistoryHM keeps the historical login panel in step with a corrected
// reading. Missing history rows are not an error.
func (r *ValidationRepository) updateHistoryHM(ctx context.Context, recordID int64, newHM float64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE login_history SET lgn_hourmeter = ? WHERE id = ?", newHM, recordID)
	if err != nil {
		return fmt.Errorf("failed to update history HM: %w", err)
	}
	return nil
}
