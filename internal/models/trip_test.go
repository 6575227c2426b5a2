package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerDetection(t *testing.T) {
	tests := []struct {
		loaderID string
		login    bool
		logout   bool
	}{
		{"LOGIN", true, false},
		{"login", true, false},
		{"  Login  ", true, false},
		{"LOGOUT", false, true},
		{"logout", false, true},
		{"EX204", false, false},
		{"", false, false},
		{"LOGIN2", false, false},
	}
	for _, tt := range tests {
		trip := Trip{LoaderID: tt.loaderID}
		assert.Equal(t, tt.login, trip.IsLoginMarker(), "login %q", tt.loaderID)
		assert.Equal(t, tt.logout, trip.IsLogoutMarker(), "logout %q", tt.loaderID)
		assert.Equal(t, tt.login || tt.logout, trip.IsMarker(), "marker %q", tt.loaderID)
	}
}

func TestParseReportTimeLayouts(t *testing.T) {
	for _, s := range []string{
		"2024-03-01T07:05:00",
		"2024-03-01T07:05",
		"2024-03-01 07:05:00",
		"2024-03-01T07:05:00.123",
	} {
		got, err := ParseReportTime(s)
		require.NoError(t, err, s)
		require.NotNil(t, got, s)
		assert.Equal(t, "2024-03-01 07:05", got.Format("2006-01-02 15:04"), s)
	}
}

func TestParseReportTimeEmpty(t *testing.T) {
	got, err := ParseReportTime("   ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseReportTimeInvalid(t *testing.T) {
	_, err := ParseReportTime("yesterday")
	assert.Error(t, err)
}

func TestFormatReportTime(t *testing.T) {
	assert.Empty(t, FormatReportTime(nil))

	rt, err := ParseReportTime("2024-03-01T07:05:09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 07:05:09", FormatReportTime(rt))
}

func TestNormalizeShifts(t *testing.T) {
	got := NormalizeShifts([]string{" s01 ", "S02", "S99", ""})
	assert.Equal(t, []string{"S01", "S02"}, got)
}
