package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mosaops/timesheet-backend-go/internal/models"
	"github.com/mosaops/timesheet-backend-go/internal/service"
	"github.com/mosaops/timesheet-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for trip rows.
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// FetchTrips handles GET /api/trips
func (h *TripHandler) FetchTrips(c *gin.Context) {
	q := models.TripQuery{
		Equipment: c.Query("equipment"),
		Date:      c.Query("date"),
		Shifts:    models.SplitShifts(c.Query("shifts")),
		Operator:  c.Query("operator"),
	}

	trips, err := h.service.FetchTrips(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, service.ErrMissingParams) || errors.Is(err, service.ErrNoValidShift) {
			response.BadRequest(c, err.Error())
		} else {
			response.InternalError(c, "Failed to fetch trips")
		}
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}

	response.OKFields(c, gin.H{"trips": trips})
}

type addTripRequest struct {
	ReportTime   string `json:"reportTime"`
	EquipmentNo  string `json:"equipmentNo"`
	OperatorID   string `json:"operatorId"`
	OperatorName string `json:"operatorName"`
	Shift        string `json:"oprShift"`
	LoaderID     string `json:"loaderId"`
	PosName      string `json:"posName"`
	Distance     string `json:"distance"`
}

// AddTrip handles POST /api/timesheet/add-trip
func (h *TripHandler) AddTrip(c *gin.Context) {
	var req addTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rt, err := models.ParseReportTime(req.ReportTime)
	if err != nil {
		response.BadRequest(c, "Invalid date format: "+req.ReportTime)
		return
	}

	trip := models.Trip{
		ReportTime:   rt,
		EquipmentNo:  req.EquipmentNo,
		OperatorID:   req.OperatorID,
		OperatorName: req.OperatorName,
		Shift:        req.Shift,
		LoaderID:     req.LoaderID,
		PosName:      req.PosName,
		Distance:     req.Distance,
		Note:         models.NoteManual,
	}

	id, err := h.service.AddTrip(c.Request.Context(), trip)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			response.BadRequest(c, err.Error())
		} else {
			response.InternalError(c, "Failed to add trip")
		}
		return
	}

	response.OKFields(c, gin.H{"id": id, "message": "Trip added successfully"})
}

type tripIDRequest struct {
	ID int64 `json:"id"`
}

// DeleteTrip handles POST /api/timesheet/delete-trip
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	var req tripIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		response.BadRequest(c, "Missing trip ID")
		return
	}

	if err := h.service.DeleteTrip(c.Request.Context(), req.ID); err != nil {
		response.InternalError(c, "Failed to delete trip")
		return
	}
	response.OKMessage(c, "Trip deleted successfully")
}

// RestoreTrip handles POST /api/timesheet/restore-trip
func (h *TripHandler) RestoreTrip(c *gin.Context) {
	var req tripIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		response.BadRequest(c, "Missing trip ID")
		return
	}

	if err := h.service.RestoreTrip(c.Request.Context(), req.ID); err != nil {
		response.InternalError(c, "Failed to restore trip")
		return
	}
	response.OKMessage(c, "Trip restored successfully")
}

type updateTripRequest struct {
	ID         int64  `json:"id"`
	ReportTime string `json:"reportTime"`
	LoaderID   string `json:"loaderId"`
	PosName    string `json:"posName"`
	Distance   string `json:"distance"`
}

// UpdateTrip handles POST /api/timesheet/update-trip
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	var req updateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		response.BadRequest(c, "Missing trip ID")
		return
	}

	rt, err := models.ParseReportTime(req.ReportTime)
	if err != nil {
		response.BadRequest(c, "Invalid date format: "+req.ReportTime)
		return
	}

	patch := models.TripPatch{
		ReportTime: rt,
		LoaderID:   req.LoaderID,
		PosName:    req.PosName,
		Distance:   req.Distance,
	}
	if err := h.service.UpdateTrip(c.Request.Context(), req.ID, patch); err != nil {
		response.InternalError(c, "Failed to update trip")
		return
	}
	response.OKMessage(c, "Trip updated successfully")
}
