package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedValidationRow(t *testing.T, db *sql.DB, id int64, mobileid, nrp string, prevHM, hm, nextHM float64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO hm_validation
		(id, next_id, prev_id, mobileid, opr_nrp, opr_shift, lgn_pattern,
		 prev_hm, hm, next_hm, reporttime, next_reporttime)
		VALUES (?, ?, ?, ?, ?, 'S01', 'logout-login-logout', ?, ?, ?,
		        '2024-03-01 07:00:00', '2024-03-01 15:00:00')`,
		id, id+1, id-1, mobileid, nrp, prevHM, hm, nextHM)
	require.NoError(t, err)
}

func TestFetchRowsReturnsColumnKeyedMaps(t *testing.T) {
	db := testDB(t)
	repo := NewValidationRepository(db)
	seedValidationRow(t, db, 10, "DT1033", "N1", 1199.8, 1200.0, 1208.0)

	rows, cols, err := repo.FetchRows(context.Background(), "DT1033")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, cols, "hm")
	assert.Contains(t, cols, "lgn_pattern")

	hm, ok := rows[0].Float("hm")
	require.True(t, ok)
	assert.InDelta(t, 1200.0, hm, 1e-9)
	assert.Equal(t, "logout-login-logout", rows[0].Str("lgn_pattern"))
}

func TestFetchRowsFiltersByUnit(t *testing.T) {
	db := testDB(t)
	repo := NewValidationRepository(db)
	seedValidationRow(t, db, 10, "DT1033", "N1", 0, 1200, 1208)
	seedValidationRow(t, db, 20, "DT1044", "N2", 0, 900, 908)

	rows, _, err := repo.FetchRows(context.Background(), "DT1044")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "DT1044", rows[0].Str("mobileid"))
}

func TestUpdateShiftTouchesValidationAndTripRows(t *testing.T) {
	db := testDB(t)
	repo := NewValidationRepository(db)
	seedValidationRow(t, db, 10, "DT1033", "N1", 0, 1200, 1208)
	_, err := db.Exec(`INSERT INTO opr_dump (id, mobileid, opr_shift, record_type)
		VALUES (10, 'DT1033', 'S01', 'login'), (11, 'DT1033', 'S01', 'logout')`)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateShift(context.Background(), 10, 11, "S02"))

	var shift string
	require.NoError(t, db.QueryRow("SELECT opr_shift FROM hm_validation WHERE id = 10").Scan(&shift))
	assert.Equal(t, "S02", shift)
	require.NoError(t, db.QueryRow("SELECT opr_shift FROM opr_dump WHERE id = 10").Scan(&shift))
	assert.Equal(t, "S02", shift)
	require.NoError(t, db.QueryRow("SELECT opr_shift FROM opr_dump WHERE id = 11").Scan(&shift))
	assert.Equal(t, "S02", shift)
}

func TestUpdateShiftUnknownRow(t *testing.T) {
	repo := NewValidationRepository(testDB(t))
	err := repo.UpdateShift(context.Background(), 42, 0, "S02")
	assert.ErrorContains(t, err, "not found")
}

func TestUpdateHMAlsoPatchesLoginHistory(t *testing.T) {
	db := testDB(t)
	repo := NewValidationRepository(db)
	seedValidationRow(t, db, 10, "DT1033", "N1", 0, 1200, 1208)
	_, err := db.Exec(`INSERT INTO login_history (id, mobileid, opr_nrp, lgn_hourmeter)
		VALUES (10, 'DT1033', 'N1', 1200)`)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateHM(context.Background(), 10, "N1", 1201.5))

	var hm float64
	require.NoError(t, db.QueryRow("SELECT hm FROM hm_validation WHERE id = 10").Scan(&hm))
	assert.InDelta(t, 1201.5, hm, 1e-9)
	require.NoError(t, db.QueryRow("SELECT lgn_hourmeter FROM login_history WHERE id = 10").Scan(&hm))
	assert.InDelta(t, 1201.5, hm, 1e-9)
}

func TestUpdateHMRequiresMatchingOperator(t *testing.T) {
	db := testDB(t)
	repo := NewValidationRepository(db)
	seedValidationRow(t, db, 10, "DT1033", "N1", 0, 1200, 1208)

	err := repo.UpdateHM(context.Background(), 10, "N9", 1201.5)
	assert.ErrorContains(t, err, "not found")
}

func TestUpdatePrevAndNextHMMatchByReference(t *testing.T) {
	db := testDB(t)
	repo := NewValidationRepository(db)
	// Row 10 references prev record 9 and next record 11.
	seedValidationRow(t, db, 10, "DT1033", "N1", 1199.0, 1200, 1208)

	require.NoError(t, repo.UpdatePrevHM(context.Background(), 9, "N1", 1200.0))
	require.NoError(t, repo.UpdateNextHM(context.Background(), 11, "N1", 1209.0))

	var prev, next float64
	require.NoError(t, db.QueryRow("SELECT prev_hm, next_hm FROM hm_validation WHERE id = 10").Scan(&prev, &next))
	assert.InDelta(t, 1200.0, prev, 1e-9)
	assert.InDelta(t, 1209.0, next, 1e-9)
}
