package service

import (
	"context"
	"errors"
	"sort"

	"github.com/mosaops/timesheet-backend-go/internal/models"
	"github.com/mosaops/timesheet-backend-go/internal/repository"
)

// Trip fetch validation failures.
var (
	ErrMissingParams = errors.New("equipment, date and shifts are required")
	ErrNoValidShift  = errors.New("at least one valid shift required")
	ErrMissingFields = errors.New("report time, equipment number and operator id are required")
)

// TripService handles business logic for trip fetching and mutation.
type TripService struct {
	repo *repository.TripRepository
}

// NewTripService creates a new trip service
func NewTripService(repo *repository.TripRepository) *TripService {
	return &TripService{repo: repo}
}

// Repo exposes the underlying repository as the timeline's trip store.
func (s *TripService) Repo() *repository.TripRepository {
	return s.repo
}

// FetchTrips validates the query, fetches each requested shift and returns
// the combined set sorted by report time.
func (s *TripService) FetchTrips(ctx context.Context, q models.TripQuery) ([]models.Trip, error) {
	if q.Equipment == "" || q.Date == "" || len(q.Shifts) == 0 {
		return nil, ErrMissingParams
	}
	q.Shifts = models.NormalizeShifts(q.Shifts)
	if len(q.Shifts) == 0 {
		return nil, ErrNoValidShift
	}

	trips, err := s.repo.FetchTrips(ctx, q)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(trips, func(i, j int) bool {
		a, b := trips[i].ReportTime, trips[j].ReportTime
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})
	return trips, nil
}

// AddTrip validates and inserts a manual trip, returning the assigned id.
func (s *TripService) AddTrip(ctx context.Context, t models.Trip) (int64, error) {
	if t.ReportTime == nil || t.EquipmentNo == "" || t.OperatorID == "" {
		return 0, ErrMissingFields
	}
	return s.repo.AddTrip(ctx, t)
}

// DeleteTrip soft-deletes a trip.
func (s *TripService) DeleteTrip(ctx context.Context, id int64) error {
	return s.repo.DeleteTrip(ctx, id)
}

// RestoreTrip reverses a soft deletion.
func (s *TripService) RestoreTrip(ctx context.Context, id int64) error {
	return s.repo.RestoreTrip(ctx, id)
}

// UpdateTrip patches a trip's editable fields.
func (s *TripService) UpdateTrip(ctx context.Context, id int64, p models.TripPatch) error {
	return s.repo.UpdateTrip(ctx, id, p)
}
