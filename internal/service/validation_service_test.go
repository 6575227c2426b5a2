package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaops/timesheet-backend-go/internal/repository"
	"github.com/mosaops/timesheet-backend-go/internal/validation"
)

func seedSession(t *testing.T, db *sql.DB, id int64, pattern string, prevHM, hm, nextHM interface{}, nextReportTime string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO hm_validation
		(id, next_id, mobileid, opr_nrp, opr_shift, lgn_pattern,
		 prev_hm, hm, next_hm, reporttime, next_reporttime, is_loncat)
		VALUES (?, ?, 'DT1033', 'N1', 'S01', ?, ?, ?, ?, '2024-03-01 07:00:00', ?, NULL)`,
		id, id+1, pattern, prevHM, hm, nextHM, nextReportTime)
	require.NoError(t, err)
}

func TestRowsAugmentsWithDerivedFields(t *testing.T) {
	db := testDB(t)
	svc := NewValidationService(repository.NewValidationRepository(db))
	seedSession(t, db, 10, "logout-login-logout", 1199.8, 1200.0, 1208.0, "2024-03-01 15:00:00")

	rows, cols, err := svc.Rows(context.Background(), "DT1033")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	total, ok := row.Float("TOTAL_HM")
	require.True(t, ok)
	assert.InDelta(t, 8.0, total, 1e-9)
	assert.Equal(t, validation.ClassGood, row.Str("TOTAL_HM_CLASS"))

	loncat, ok := row.Float("HM_LONCAT")
	require.True(t, ok)
	assert.InDelta(t, 0.2, loncat, 1e-6)
	assert.Equal(t, validation.ClassWarn, row.Str("HM_LONCAT_CLASS"))
	assert.Equal(t, validation.ClassGood, row.Str("PATTERN_CLASS"))

	// Raw columns survive alongside the derived ones.
	assert.Equal(t, "DT1033", row.Str("mobileid"))
	assert.Contains(t, cols, "TOTAL_HM")
	assert.Contains(t, cols, "HM_LONCAT")
	assert.Contains(t, cols, "problem")
}

func TestRowsSuppressesDerivedFieldsWithoutOperands(t *testing.T) {
	db := testDB(t)
	svc := NewValidationService(repository.NewValidationRepository(db))
	seedSession(t, db, 10, "login", nil, nil, nil, "")

	rows, _, err := svc.Rows(context.Background(), "DT1033")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Nil(t, rows[0].Get("TOTAL_HM"))
	assert.Nil(t, rows[0].Get("HM_LONCAT"))
	assert.Equal(t, validation.ClassBad, rows[0].Str("PATTERN_CLASS"))
}

func TestUpdateShiftRejectsOpenSession(t *testing.T) {
	db := testDB(t)
	svc := NewValidationService(repository.NewValidationRepository(db))
	seedSession(t, db, 10, "login", nil, 1200.0, nil, "")

	err := svc.UpdateShift(context.Background(), 10, 11, "", "S02")
	assert.ErrorIs(t, err, ErrNotLoggedOut)
}

func TestUpdateShiftPassesThroughWhenLoggedOut(t *testing.T) {
	db := testDB(t)
	svc := NewValidationService(repository.NewValidationRepository(db))
	seedSession(t, db, 10, "logout-login-logout", 0, 1200.0, 1208.0, "2024-03-01 15:00:00")

	err := svc.UpdateShift(context.Background(), 10, 0, "2024-03-01 15:00:00", "S02")
	require.NoError(t, err)

	var shift string
	require.NoError(t, db.QueryRow("SELECT opr_shift FROM hm_validation WHERE id = 10").Scan(&shift))
	assert.Equal(t, "S02", shift)
}
