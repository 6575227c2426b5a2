package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mosaops/timesheet-backend-go/internal/autofix"
	"github.com/mosaops/timesheet-backend-go/internal/models"
	"github.com/mosaops/timesheet-backend-go/internal/service"
	"github.com/mosaops/timesheet-backend-go/pkg/response"
)

// ValidationHandler serves the step-3 HM validation table, the targeted
// correction endpoints, and the auto-validation runner.
type ValidationHandler struct {
	service *service.ValidationService
	runner  *autofix.Runner
}

// NewValidationHandler creates a new validation handler
func NewValidationHandler(service *service.ValidationService, runner *autofix.Runner) *ValidationHandler {
	return &ValidationHandler{service: service, runner: runner}
}

// Rows handles GET /api/timesheet/step3
func (h *ValidationHandler) Rows(c *gin.Context) {
	mobileid := c.Query("mobileid")
	if mobileid == "" {
		response.BadRequest(c, "mobileid is required")
		return
	}

	rows, cols, err := h.service.Rows(c.Request.Context(), mobileid)
	if err != nil {
		response.InternalError(c, "Failed to load validation rows")
		return
	}
	if rows == nil {
		rows = []models.ValidationRow{}
	}
	response.OKFields(c, gin.H{"rows": rows, "columns": cols})
}

type updateShiftRequest struct {
	ID             int64  `json:"id" binding:"required"`
	NextID         int64  `json:"next_id"`
	NextReportTime string `json:"next_reporttime"`
	NewShift       string `json:"new_shift" binding:"required"`
}

// UpdateShift handles POST /api/timesheet/update-shift
func (h *ValidationHandler) UpdateShift(c *gin.Context) {
	var req updateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if !models.ValidShifts[req.NewShift] {
		response.BadRequest(c, "Invalid shift code")
		return
	}

	err := h.service.UpdateShift(c.Request.Context(), req.ID, req.NextID, req.NextReportTime, req.NewShift)
	if err != nil {
		if errors.Is(err, service.ErrNotLoggedOut) {
			response.BadRequest(c, err.Error())
		} else {
			response.InternalError(c, "Failed to update shift")
		}
		return
	}
	response.OKMessage(c, "Shift updated")
}

type updateHMRequest struct {
	ID     int64   `json:"id" binding:"required"`
	OprNRP string  `json:"opr_nrp" binding:"required"`
	NewHM  float64 `json:"new_hm"`
}

// UpdatePrevHM handles POST /api/timesheet/update-prev-hm
func (h *ValidationHandler) UpdatePrevHM(c *gin.Context) {
	h.updateHM(c, h.service.UpdatePrevHM)
}

// UpdateHM handles POST /api/timesheet/update-hm
func (h *ValidationHandler) UpdateHM(c *gin.Context) {
	h.updateHM(c, h.service.UpdateHM)
}

// UpdateNextHM handles POST /api/timesheet/update-next-hm
func (h *ValidationHandler) UpdateNextHM(c *gin.Context) {
	h.updateHM(c, h.service.UpdateNextHM)
}

func (h *ValidationHandler) updateHM(c *gin.Context, apply func(ctx context.Context, id int64, oprNRP string, newHM float64) error) {
	var req updateHMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.NewHM < 0 {
		response.BadRequest(c, "HM value cannot be negative")
		return
	}

	if err := apply(c.Request.Context(), req.ID, req.OprNRP, req.NewHM); err != nil {
		response.InternalError(c, "Failed to update HM value")
		return
	}
	response.OKMessage(c, "HM value updated")
}

// RunAutofix handles POST /api/timesheet/run-validation
func (h *ValidationHandler) RunAutofix(c *gin.Context) {
	// The run outlives the request, so it is not tied to the request context.
	if err := h.runner.Start(context.Background()); err != nil {
		if errors.Is(err, autofix.ErrAlreadyRunning) {
			response.Error(c, 409, err.Error())
		} else {
			response.InternalError(c, "Failed to start auto validation")
		}
		return
	}
	response.OKMessage(c, "Auto validation started")
}

// AutofixProgress handles GET /api/timesheet/validation-progress
func (h *ValidationHandler) AutofixProgress(c *gin.Context) {
	steps, running := h.runner.Progress()
	response.OKFields(c, gin.H{"steps": steps, "running": running})
}
