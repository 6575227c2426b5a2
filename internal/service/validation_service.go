package service

import (
	"context"
	"errors"

	"github.com/mosaops/timesheet-backend-go/internal/models"
	"github.com/mosaops/timesheet-backend-go/internal/repository"
	"github.com/mosaops/timesheet-backend-go/internal/validation"
)

// ErrNotLoggedOut is returned when a shift update is attempted for a session
// whose operator has not logged out yet.
var ErrNotLoggedOut = errors.New("the operator has not logged out yet")

// Keys added to each validation row by classification.
const (
	keyTotalHM      = "TOTAL_HM"
	keyTotalHMClass = "TOTAL_HM_CLASS"
	keyLoncat       = "HM_LONCAT"
	keyLoncatClass  = "HM_LONCAT_CLASS"
	keyPatternClass = "PATTERN_CLASS"
	keyProblem      = "problem"
)

// ValidationService produces the display-ready, classified validation table
// and applies targeted HM/shift corrections.
type ValidationService struct {
	repo *repository.ValidationRepository
}

// NewValidationService creates a new validation service
func NewValidationService(repo *repository.ValidationRepository) *ValidationService {
	return &ValidationService{repo: repo}
}

// Rows fetches the raw validation rows, runs each through the HM validator
// and returns rows augmented with the derived metrics, cell classes and the
// combined problem list, plus the display column order.
func (s *ValidationService) Rows(ctx context.Context, mobileid string) ([]models.ValidationRow, []string, error) {
	raw, cols, err := s.repo.FetchRows(ctx, mobileid)
	if err != nil {
		return nil, nil, err
	}

	out := make([]models.ValidationRow, 0, len(raw))
	for _, row := range raw {
		res := validation.Classify(row)
		classified := make(models.ValidationRow, len(row)+6)
		for k, v := range row {
			classified[k] = v
		}
		if res.TotalHM != nil {
			classified[keyTotalHM] = *res.TotalHM
			classified[keyTotalHMClass] = res.TotalHMClass
		}
		if res.HMLoncat != nil {
			classified[keyLoncat] = *res.HMLoncat
			classified[keyLoncatClass] = res.HMLoncatClass
		}
		classified[keyPatternClass] = res.PatternClass
		classified[keyProblem] = res.Problems
		out = append(out, classified)
	}

	cols = append(cols, keyTotalHM, keyLoncat, keyProblem)
	return out, cols, nil
}

// UpdateShift rewrites a session's shift. Sessions still open (no logout
// recorded) cannot be reassigned.
func (s *ValidationService) UpdateShift(ctx context.Context, id, nextID int64, nextReportTime, newShift string) error {
	if nextReportTime == "" {
		return ErrNotLoggedOut
	}
	return s.repo.UpdateShift(ctx, id, nextID, newShift)
}

// UpdatePrevHM corrects the previous-logout reading of a session.
func (s *ValidationService) UpdatePrevHM(ctx context.Context, prevID int64, oprNRP string, newHM float64) error {
	return s.repo.UpdatePrevHM(ctx, prevID, oprNRP, newHM)
}

// UpdateHM corrects the login reading of a session.
func (s *ValidationService) UpdateHM(ctx context.Context, id int64, oprNRP string, newHM float64) error {
	return s.repo.UpdateHM(ctx, id, oprNRP, newHM)
}

// UpdateNextHM corrects the logout reading of a session.
func (s *ValidationService) UpdateNextHM(ctx context.Context, nextID int64, oprNRP string, newHM float64) error {
	return s.repo.UpdateNextHM(ctx, nextID, oprNRP, newHM)
}
