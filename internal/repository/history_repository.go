package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mosaops/timesheet-backend-go/internal/models"
)

// HistoryRepository reads historical login events for the side panel.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// FetchByUnit returns the login history for one equipment unit in
// chronological order. Exact duplicate events are collapsed.
func (r *HistoryRepository) FetchByUnit(ctx context.Context, mobileid string) ([]models.HistoryRow, error) {
	query := `SELECT DISTINCT id, opr_nrp, opr_username, status, tanggal,
			opr_shift, jam, mobileid, lgn_hourmeter, pos_name, reporttime, created_at
		FROM login_history
		WHERE mobileid = ?
		ORDER BY reporttime`

	rows, err := r.db.QueryContext(ctx, query, mobileid)
	if err != nil {
		return nil, fmt.Errorf("failed to query login history: %w", err)
	}
	defer rows.Close()

	var out []models.HistoryRow
	for rows.Next() {
		var (
			h         models.HistoryRow
			nrp       sql.NullString
			name      sql.NullString
			status    sql.NullString
			tanggal   sql.NullString
			shift     sql.NullString
			jam       sql.NullString
			hourMeter sql.NullFloat64
			pos       sql.NullString
			report    sql.NullString
			created   sql.NullString
		)
		err := rows.Scan(&h.ID, &nrp, &name, &status, &tanggal, &shift, &jam,
			&h.MobileID, &hourMeter, &pos, &report, &created)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		h.OperatorNRP = nrp.String
		h.OperatorName = name.String
		h.Status = status.String
		h.Tanggal = tanggal.String
		h.Shift = shift.String
		h.Jam = jam.String
		h.PosName = pos.String
		h.ReportTime = report.String
		h.CreatedAt = created.String
		if hourMeter.Valid {
			v := hourMeter.Float64
			h.HourMeter = &v
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
