package models

import (
	"strings"
	"time"
)

// Trip represents one trip/login event recorded for an equipment unit.
// Fetched rows carry a server-assigned ID; manually inserted rows carry a
// locally generated ID until the store returns a real one.
type Trip struct {
	ID           int64      `json:"id" db:"id"`
	ReportTime   *time.Time `json:"reportTime" db:"reporttime"` // nil sorts earliest
	EquipmentNo  string     `json:"equipmentNo" db:"mobileid"`
	OperatorID   string     `json:"operatorId" db:"opr_nrp"`
	OperatorName string     `json:"operatorName" db:"opr_username"`
	Shift        string     `json:"oprShift" db:"opr_shift"`
	LoaderID     string     `json:"loaderId" db:"act_loaderid"` // location code, or LOGIN/LOGOUT sentinel
	PosName      string     `json:"posName" db:"pos_name"`
	Distance     string     `json:"distance" db:"act_hauldistance"`
	Note         string     `json:"note" db:"note"` // "", NoteManual or NoteDeleted
}

// Note values. A trip never carries any other note.
const (
	NoteActive  = ""
	NoteManual  = "manual"
	NoteDeleted = "deleted"
)

// Loader sentinel values marking session boundaries (matched case-insensitively).
const (
	LoaderLogin  = "LOGIN"
	LoaderLogout = "LOGOUT"
)

// IsLoginMarker reports whether the trip is a LOGIN boundary row.
func (t *Trip) IsLoginMarker() bool {
	return strings.EqualFold(strings.TrimSpace(t.LoaderID), LoaderLogin)
}

// IsLogoutMarker reports whether the trip is a LOGOUT boundary row.
func (t *Trip) IsLogoutMarker() bool {
	return strings.EqualFold(strings.TrimSpace(t.LoaderID), LoaderLogout)
}

// IsMarker reports whether the trip is either session boundary sentinel.
func (t *Trip) IsMarker() bool {
	return t.IsLoginMarker() || t.IsLogoutMarker()
}

// IsDeleted reports whether the trip is soft-deleted.
func (t *Trip) IsDeleted() bool {
	return t.Note == NoteDeleted
}

// TripPatch carries the editable subset of a trip row.
type TripPatch struct {
	ReportTime *time.Time `json:"reportTime"`
	LoaderID   string     `json:"loaderId"`
	PosName    string     `json:"posName"`
	Distance   string     `json:"distance"`
}

// Report time formats accepted from clients. datetime-local inputs omit
// seconds; the store speaks full timestamps.
const (
	ReportTimeLayout      = "2006-01-02T15:04:05"
	ReportTimeShortLayout = "2006-01-02T15:04"
	ReportTimeDBLayout    = "2006-01-02 15:04:05"
)

// ParseReportTime parses a client-supplied report time in any accepted
// layout. Returns nil for an empty string.
func ParseReportTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	// Drop fractional seconds
	if i := strings.IndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	for _, layout := range []string{ReportTimeLayout, ReportTimeShortLayout, ReportTimeDBLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatReportTime renders a report time in the store format, or "" for nil.
func FormatReportTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(ReportTimeDBLayout)
}
