// Package validation derives display-ready classifications from realtime HM
// validation rows: per-session hour-meter totals and jumps, login pattern
// grading and operational problem flags. Everything here is a pure function
// of the row it is given.
package validation

import (
	"math"
	"strings"

	"github.com/mosaops/timesheet-backend-go/internal/models"
)

// Class labels applied to derived cells.
const (
	ClassGood = "good"
	ClassWarn = "warn"
	ClassBad  = "bad"
)

// A session within one shift is expected to read logout-login-logout.
const expectedPattern = "logout-login-logout"

// HM_LONCAT thresholds: jumps below epsilon are treated as exactly zero,
// jumps at or above warnLimit are flagged.
const (
	loncatEpsilon   = 1e-9
	loncatWarnLimit = 0.4
)

// A session longer than maxSessionHours on the hour meter is impossible
// within one shift.
const maxSessionHours = 12

// Result is the classified view of one validation row.
type Result struct {
	TotalHM       *float64 `json:"totalHm,omitempty"`      // next_hm - hm
	HMLoncat      *float64 `json:"hmLoncat,omitempty"`     // hm - prev_hm
	TotalHMClass  string   `json:"totalHmClass,omitempty"` // "" when TotalHM is absent
	HMLoncatClass string   `json:"hmLoncatClass,omitempty"`
	PatternClass  string   `json:"patternClass"`
	Problems      []string `json:"problems"`
}

// Problem flag fields and the exact values that raise them. Matching is
// trimmed and case-insensitive; the flags are independent and additive.
var problemFlags = []struct {
	field    string
	expected string
	label    string
}{
	{"is_logout", "belum logout", "belum logout"},
	{"is_salah_shift", "salah shift", "salah shift"},
	{"is_ftw", "tidak ftw", "tidak ftw"},
	{"is_loncat", "hm loncat", "hm loncat"},
	{"is_sama", "hm logout = login", "hm sama"},
}

// Classify computes the derived metrics and classifications for one row.
// Absent HM operands suppress the dependent derived field and its class.
func Classify(row models.ValidationRow) Result {
	res := Result{Problems: []string{}}

	prev, prevOK := row.Float("prev_hm")
	hm, hmOK := row.Float("hm")
	next, nextOK := row.Float("next_hm")

	if hmOK && nextOK {
		total := next - hm
		res.TotalHM = &total
		res.TotalHMClass = classifyTotal(total)
	}
	if prevOK && hmOK {
		loncat := hm - prev
		res.HMLoncat = &loncat
		res.HMLoncatClass = classifyLoncat(loncat)
	}

	res.PatternClass = ClassifyPattern(row.Str("lgn_pattern"))

	for _, f := range problemFlags {
		if flagEquals(row, f.field, f.expected) {
			res.Problems = append(res.Problems, f.label)
		}
	}
	return res
}

// classifyTotal grades the HM consumed in one session: more than a shift's
// worth, or none at all, is bad.
func classifyTotal(total float64) string {
	if total > maxSessionHours || total <= 0 {
		return ClassBad
	}
	return ClassGood
}

// classifyLoncat grades the gap between a login's HM and the previous
// logout's. Zero is clean, a small positive creep is a warning, anything at
// the limit or beyond -- or backwards -- is bad.
func classifyLoncat(loncat float64) string {
	switch {
	case math.Abs(loncat) < loncatEpsilon:
		return ClassGood
	case loncat < 0:
		return ClassBad
	case loncat < loncatWarnLimit:
		return ClassWarn
	default:
		return ClassBad
	}
}

// ClassifyPattern grades a session's marker pattern. Only the exact
// logout-login-logout sequence passes; any deviation is bad.
func ClassifyPattern(pattern string) string {
	if strings.EqualFold(strings.TrimSpace(pattern), expectedPattern) {
		return ClassGood
	}
	return ClassBad
}

// flagEquals reports whether a raw flag field matches its expected value,
// trimmed and case-insensitive. Absent fields never match.
func flagEquals(row models.ValidationRow, field, expected string) bool {
	v := row.Get(field)
	if v == nil {
		return false
	}
	s, ok := v.(string)
	if !ok {
		s = row.Str(field)
	}
	return strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(expected))
}
