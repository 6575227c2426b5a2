package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mosaops/timesheet-backend-go/internal/models"
)

// TripRepository is the trip store: it handles database operations on the
// opr_dump table. Deletion is always soft; rows are flagged, never removed.
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

const tripColumns = `id, reporttime, mobileid, opr_nrp, opr_username,
	opr_shift, act_loaderid, pos_name, act_hauldistance, record_type,
	is_deleted, is_manual`

// FetchTrips retrieves the trips for one equipment unit, date and shift list,
// optionally narrowed to one operator. Each shift is queried separately and
// the results are concatenated, matching the per-shift retrieval of the
// upstream procedures. Soft-deleted trip rows come back with note "deleted".
func (r *TripRepository) FetchTrips(ctx context.Context, q models.TripQuery) ([]models.Trip, error) {
	shifts := models.NormalizeShifts(q.Shifts)

	var trips []models.Trip
	for _, shift := range shifts {
		query := `SELECT ` + tripColumns + `
			FROM opr_dump
			WHERE mobileid = ? AND opr_shift = ? AND date(reporttime) = ?`
		args := []interface{}{q.Equipment, shift, q.Date}
		if q.Operator != "" {
			query += " AND opr_nrp = ?"
			args = append(args, q.Operator)
		}
		query += " ORDER BY reporttime"

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query trips: %w", err)
		}
		shiftTrips, err := scanTrips(rows)
		rows.Close()
		if err != nil {
			return nil, err
		}
		trips = append(trips, shiftTrips...)
	}
	return trips, nil
}

func scanTrips(rows *sql.Rows) ([]models.Trip, error) {
	var trips []models.Trip
	for rows.Next() {
		var (
			t          models.Trip
			reportTime sql.NullString
			operatorID sql.NullString
			opName     sql.NullString
			shift      sql.NullString
			loaderID   sql.NullString
			posName    sql.NullString
			distance   sql.NullString
			recordType string
			isDeleted  bool
			isManual   bool
		)
		err := rows.Scan(&t.ID, &reportTime, &t.EquipmentNo, &operatorID, &opName,
			&shift, &loaderID, &posName, &distance, &recordType, &isDeleted, &isManual)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		if reportTime.Valid {
			rt, err := models.ParseReportTime(reportTime.String)
			if err == nil {
				t.ReportTime = rt
			}
			// Unparsable report times stay nil and sort earliest.
		}
		t.OperatorID = operatorID.String
		t.OperatorName = opName.String
		t.Shift = shift.String
		t.LoaderID = loaderID.String
		t.PosName = posName.String
		t.Distance = distance.String
		switch {
		case isDeleted && recordType == "trip":
			t.Note = models.NoteDeleted
		case isManual:
			t.Note = models.NoteManual
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// AddTrip inserts a manually created trip and returns the assigned id.
func (r *TripRepository) AddTrip(ctx context.Context, t models.Trip) (int64, error) {
	query := `INSERT INTO opr_dump
		(reporttime, mobileid, opr_nrp, opr_username, opr_shift,
		 act_loaderid, pos_name, act_hauldistance, record_type, is_manual)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'trip', 1)`
	res, err := r.db.ExecContext(ctx, query,
		models.FormatReportTime(t.ReportTime), t.EquipmentNo, t.OperatorID,
		t.OperatorName, t.Shift, t.LoaderID, t.PosName, t.Distance)
	if err != nil {
		return 0, fmt.Errorf("failed to insert trip: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted trip id: %w", err)
	}
	return id, nil
}

// DeleteTrip flags a trip as deleted.
func (r *TripRepository) DeleteTrip(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, 1)
}

// RestoreTrip clears a trip's deleted flag.
func (r *TripRepository) RestoreTrip(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, 0)
}

func (r *TripRepository) setDeleted(ctx context.Context, id int64, flag int) error {
	res, err := r.db.ExecContext(ctx, "UPDATE opr_dump SET is_deleted = ? WHERE id = ?", flag, id)
	if err != nil {
		return fmt.Errorf("failed to update trip %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trip %d not found", id)
	}
	return nil
}

// UpdateTrip patches a trip's editable fields. A nil report time keeps the
// stored value.
func (r *TripRepository) UpdateTrip(ctx context.Context, id int64, p models.TripPatch) error {
	query := `UPDATE opr_dump SET
		reporttime = COALESCE(NULLIF(?, ''), reporttime),
		act_loaderid = ?, pos_name = ?, act_hauldistance = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		models.FormatReportTime(p.ReportTime), p.LoaderID, p.PosName, p.Distance, id)
	if err != nil {
		return fmt.Errorf("failed to update trip %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trip %d not found", id)
	}
	return nil
}
