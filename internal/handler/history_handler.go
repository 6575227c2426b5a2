package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mosaops/timesheet-backend-go/internal/models"
	"github.com/mosaops/timesheet-backend-go/internal/repository"
	"github.com/mosaops/timesheet-backend-go/pkg/response"
)

// HistoryHandler serves the read-only login history for a unit.
type HistoryHandler struct {
	repo *repository.HistoryRepository
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(repo *repository.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

// ByUnit handles GET /api/timesheet/historical-login
func (h *HistoryHandler) ByUnit(c *gin.Context) {
	var q models.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil || q.MobileID == "" {
		response.BadRequest(c, "mobileid is required")
		return
	}

	rows, err := h.repo.FetchByUnit(c.Request.Context(), q.MobileID)
	if err != nil {
		response.InternalError(c, "Failed to load login history")
		return
	}
	if rows == nil {
		rows = []models.HistoryRow{}
	}
	response.OKFields(c, gin.H{"rows": rows})
}
