package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mosaops/timesheet-backend-go/internal/middleware"
	"github.com/mosaops/timesheet-backend-go/internal/models"
	"github.com/mosaops/timesheet-backend-go/internal/service"
	"github.com/mosaops/timesheet-backend-go/internal/wizard"
	"github.com/mosaops/timesheet-backend-go/pkg/response"
)

// WizardHandler handles wizard step state endpoints.
type WizardHandler struct {
	service *service.WizardService
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(service *service.WizardService) *WizardHandler {
	return &WizardHandler{service: service}
}

// GetStep1 handles GET /api/timesheet/step1
func (h *WizardHandler) GetStep1(c *gin.Context) {
	st, err := h.service.Step1State(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.InternalError(c, "Failed to load step 1 state")
		return
	}
	response.OK(c, st)
}

// SaveStep1 handles POST /api/timesheet/step1
func (h *WizardHandler) SaveStep1(c *gin.Context) {
	var st models.Step1State
	if err := c.ShouldBindJSON(&st); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if st.UnitType == "" {
		// Fridays run the long-shift roster.
		if st.HasFriday() {
			st.UnitType = models.UnitType2Shift
		} else {
			st.UnitType = models.UnitType3Shift
		}
	}

	err := h.service.AdvanceStep1(c.Request.Context(), middleware.UserID(c), st)
	if err != nil {
		if errors.Is(err, wizard.ErrStepIncomplete) {
			response.BadRequest(c, "Please select a date and at least one shift")
		} else {
			response.InternalError(c, "Failed to save step 1 state")
		}
		return
	}
	response.OKMessage(c, "Step 1 data saved")
}

// GetStep2 handles GET /api/timesheet/step2
func (h *WizardHandler) GetStep2(c *gin.Context) {
	st, err := h.service.Step2State(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.InternalError(c, "Failed to load step 2 state")
		return
	}
	response.OK(c, st)
}

// SaveStep2 handles POST /api/timesheet/step2
func (h *WizardHandler) SaveStep2(c *gin.Context) {
	var st models.Step2State
	if err := c.ShouldBindJSON(&st); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.service.AdvanceStep2(c.Request.Context(), middleware.UserID(c), st)
	if err != nil {
		response.InternalError(c, "Failed to save step 2 state")
		return
	}
	response.OKMessage(c, "Step 2 data saved")
}

// Clear handles POST /api/timesheet/clear
func (h *WizardHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.InternalError(c, "Failed to clear wizard state")
		return
	}
	response.OKMessage(c, "Session cleared")
}
