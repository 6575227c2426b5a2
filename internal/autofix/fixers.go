package autofix

import (
	"context"
	"database/sql"
)

// The fix-up sequence mirrors the validation procedures run against the
// realtime HM table, in their historical order.
func init() {
	Register(Procedure{Name: "Fix Small HM Jump", Run: fixSmallJump})
	Register(Procedure{Name: "Fix Missing Comma", Run: fixMissingComma})
	Register(Procedure{Name: "Fix HM Jump on Relogin", Run: fixReloginJump})
	Register(Procedure{Name: "Validate Workshop HM", Run: validateWorkshop})
	Register(Procedure{Name: "Fix Backward HM Same as Previous", Run: fixBackwardSamePrev})
	Register(Procedure{Name: "Fix Same HM on Relogin", Run: fixSameRelogin})
}

func execCount(ctx context.Context, db *sql.DB, query string, args ...interface{}) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// fixSmallJump aligns a login HM with the previous logout when the jump is
// under the warning limit; the gap is meter creep, not a missed session.
func fixSmallJump(ctx context.Context, db *sql.DB) (int64, error) {
	return execCount(ctx, db, `
		UPDATE hm_validation
		SET hm = prev_hm, is_loncat = NULL
		WHERE prev_hm IS NOT NULL AND hm IS NOT NULL
		  AND hm - prev_hm > 0 AND hm - prev_hm < 0.4`)
}

// fixMissingComma repairs readings typed without the decimal separator
// (e.g. 12345 for 1234.5), detectable as a tenfold jump over the previous
// logout.
func fixMissingComma(ctx context.Context, db *sql.DB) (int64, error) {
	return execCount(ctx, db, `
		UPDATE hm_validation
		SET hm = hm / 10.0, is_loncat = NULL
		WHERE prev_hm IS NOT NULL AND hm IS NOT NULL AND prev_hm > 0
		  AND hm / 10.0 BETWEEN prev_hm - 1 AND prev_hm + 1`)
}

// fixReloginJump clears the jump flag when the previous logout belongs to
// the same operator re-logging within the shift; the meter kept running
// between the paired sessions.
func fixReloginJump(ctx context.Context, db *sql.DB) (int64, error) {
	return execCount(ctx, db, `
		UPDATE hm_validation
		SET is_loncat = NULL
		WHERE id IN (
			SELECT v.id FROM hm_validation v
			JOIN hm_validation p ON p.next_id = v.prev_id
			  AND p.opr_nrp = v.opr_nrp AND p.mobileid = v.mobileid
			WHERE v.is_loncat = 'hm loncat'
			  AND v.hm IS NOT NULL AND v.prev_hm IS NOT NULL
			  AND v.hm - v.prev_hm < 2.0
		)`)
}

// validateWorkshop clears FTW flags for units parked at the workshop; a unit
// under maintenance legitimately shows no field work.
func validateWorkshop(ctx context.Context, db *sql.DB) (int64, error) {
	return execCount(ctx, db, `
		UPDATE hm_validation
		SET is_ftw = NULL
		WHERE is_ftw = 'tidak ftw'
		  AND UPPER(COALESCE(pos_name, '')) LIKE '%WORKSHOP%'`)
}

// fixBackwardSamePrev repairs a login HM recorded below the previous logout
// by snapping it back to the previous reading.
func fixBackwardSamePrev(ctx context.Context, db *sql.DB) (int64, error) {
	return execCount(ctx, db, `
		UPDATE hm_validation
		SET hm = prev_hm, is_loncat = NULL
		WHERE prev_hm IS NOT NULL AND hm IS NOT NULL AND hm < prev_hm`)
}

// fixSameRelogin clears the "hm logout = login" flag on relogins: reading
// the same meter value again seconds after logging out is expected.
func fixSameRelogin(ctx context.Context, db *sql.DB) (int64, error) {
	return execCount(ctx, db, `
		UPDATE hm_validation
		SET is_sama = NULL
		WHERE is_sama = 'hm logout = login'
		  AND prev_hm IS NOT NULL AND hm IS NOT NULL AND hm = prev_hm`)
}
