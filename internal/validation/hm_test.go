package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaops/timesheet-backend-go/internal/models"
)

func row(kv map[string]interface{}) models.ValidationRow {
	return models.ValidationRow(kv)
}

func TestClassifyTotalHM(t *testing.T) {
	tests := []struct {
		name  string
		hm    float64
		next  float64
		class string
	}{
		{"normal session", 1200.0, 1208.5, ClassGood},
		{"full shift", 1200.0, 1212.0, ClassGood},
		{"over a shift", 1200.0, 1212.01, ClassBad},
		{"no hours consumed", 1200.0, 1200.0, ClassBad},
		{"meter ran backward", 1200.0, 1199.0, ClassBad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(row(map[string]interface{}{
				"hm":      tt.hm,
				"next_hm": tt.next,
			}))
			if assert.NotNil(t, res.TotalHM) {
				assert.InDelta(t, tt.next-tt.hm, *res.TotalHM, 1e-9)
			}
			assert.Equal(t, tt.class, res.TotalHMClass)
		})
	}
}

func TestClassifyHMLoncat(t *testing.T) {
	tests := []struct {
		name  string
		prev  float64
		hm    float64
		class string
	}{
		{"exact continuation", 1200.0, 1200.0, ClassGood},
		{"small creep", 1200.0, 1200.2, ClassWarn},
		{"just under limit", 1200.0, 1200.399999, ClassWarn},
		{"at limit", 1200.0, 1200.4, ClassBad},
		{"big jump", 1200.0, 1205.0, ClassBad},
		{"backward", 1200.0, 1199.9, ClassBad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(row(map[string]interface{}{
				"prev_hm": tt.prev,
				"hm":      tt.hm,
			}))
			if assert.NotNil(t, res.HMLoncat) {
				assert.InDelta(t, tt.hm-tt.prev, *res.HMLoncat, 1e-9)
			}
			assert.Equal(t, tt.class, res.HMLoncatClass)
		})
	}
}

func TestClassifySuppressesDerivedFieldsWhenOperandsAbsent(t *testing.T) {
	res := Classify(row(map[string]interface{}{"hm": 1200.0}))
	assert.Nil(t, res.TotalHM)
	assert.Empty(t, res.TotalHMClass)
	assert.Nil(t, res.HMLoncat)
	assert.Empty(t, res.HMLoncatClass)
}

func TestClassifyReadsStringOperands(t *testing.T) {
	res := Classify(row(map[string]interface{}{
		"prev_hm": "1200.0",
		"hm":      "1200.2",
	}))
	assert.Equal(t, ClassWarn, res.HMLoncatClass)
}

func TestClassifyPattern(t *testing.T) {
	assert.Equal(t, ClassGood, ClassifyPattern("logout-login-logout"))
	assert.Equal(t, ClassGood, ClassifyPattern("LOGOUT-LOGIN-LOGOUT"))
	assert.Equal(t, ClassGood, ClassifyPattern("  Logout-Login-Logout  "))
	assert.Equal(t, ClassBad, ClassifyPattern("login-logout"))
	assert.Equal(t, ClassBad, ClassifyPattern("logout-login"))
	assert.Equal(t, ClassBad, ClassifyPattern(""))
}

func TestProblemFlagsAreAdditive(t *testing.T) {
	res := Classify(row(map[string]interface{}{
		"is_logout":      "belum logout",
		"is_salah_shift": "salah shift",
		"is_ftw":         "tidak ftw",
		"is_loncat":      "hm loncat",
		"is_sama":        "hm logout = login",
	}))
	assert.Equal(t, []string{
		"belum logout", "salah shift", "tidak ftw", "hm loncat", "hm sama",
	}, res.Problems)
}

func TestProblemFlagsIgnoreNonMatchingValues(t *testing.T) {
	res := Classify(row(map[string]interface{}{
		"is_logout": "ok",
		"is_loncat": "",
	}))
	assert.Empty(t, res.Problems)
}

func TestProblemFlagsMatchCaseInsensitively(t *testing.T) {
	res := Classify(row(map[string]interface{}{
		"is_logout": "  BELUM LOGOUT  ",
	}))
	assert.Equal(t, []string{"belum logout"}, res.Problems)
}

func TestProblemsNeverNil(t *testing.T) {
	res := Classify(row(map[string]interface{}{}))
	assert.NotNil(t, res.Problems)
	assert.Empty(t, res.Problems)
}
