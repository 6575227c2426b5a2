package models

import "strings"

// TripQuery represents the criteria for fetching trips: one equipment unit,
// one date, one or more shift codes and an optional operator.
type TripQuery struct {
	Equipment string   `form:"equipment"`
	Date      string   `form:"date"` // YYYY-MM-DD
	Shifts    []string `form:"-"`
	Operator  string   `form:"operator"` // optional
}

// Valid shift codes. Anything else in a shift list is skipped.
var ValidShifts = map[string]bool{
	"S01": true,
	"S02": true,
	"S03": true,
	"S08": true,
	"S09": true,
}

// NormalizeShifts uppercases, trims and filters a raw shift list down to the
// known shift codes, preserving order.
func NormalizeShifts(raw []string) []string {
	var shifts []string
	for _, s := range raw {
		code := strings.ToUpper(strings.TrimSpace(s))
		if ValidShifts[code] {
			shifts = append(shifts, code)
		}
	}
	return shifts
}

// SplitShifts parses a comma-separated shift list as sent by clients.
func SplitShifts(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HistoryQuery selects historical login rows for one equipment unit.
type HistoryQuery struct {
	MobileID string `form:"mobileid"`
}
