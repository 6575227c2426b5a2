package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaops/timesheet-backend-go/internal/models"
)

func TestReferenceForOrdinaryRow(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, LoaderID: "LOGIN"},
		{ID: 2, LoaderID: "EX204", EquipmentNo: "DT1033"},
	}
	ref := referenceFor(trips, 1)
	assert.Equal(t, int64(2), ref.ID)
}

func TestReferenceForLoginScansForward(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, LoaderID: "LOGIN"},
		{ID: 2, LoaderID: "logout"}, // markers are skipped regardless of case
		{ID: 3, LoaderID: "EX204", EquipmentNo: "DT1033", OperatorID: "N1"},
		{ID: 4, LoaderID: "EX101"},
	}
	ref := referenceFor(trips, 0)
	assert.Equal(t, int64(3), ref.ID)
	assert.Equal(t, "DT1033", ref.EquipmentNo)
}

func TestReferenceForLogoutScansBackward(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, LoaderID: "EX204"},
		{ID: 2, LoaderID: "EX101", EquipmentNo: "DT1044"},
		{ID: 3, LoaderID: "LOGIN"},
		{ID: 4, LoaderID: "LOGOUT"},
	}
	ref := referenceFor(trips, 3)
	assert.Equal(t, int64(2), ref.ID)
	assert.Equal(t, "DT1044", ref.EquipmentNo)
}

func TestReferenceForMarkerOnlySetFallsBackToAnchor(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, LoaderID: "LOGIN"},
		{ID: 2, LoaderID: "LOGOUT"},
	}

	assert.Equal(t, int64(1), referenceFor(trips, 0).ID)
	assert.Equal(t, int64(2), referenceFor(trips, 1).ID)
}

func TestReferenceForTrimsAndIgnoresCase(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, LoaderID: "  login  "},
		{ID: 2, LoaderID: "EX204"},
	}
	assert.Equal(t, int64(2), referenceFor(trips, 0).ID)
}
