// Package timeline implements the in-memory trip reconciliation engine: an
// ordered, mutable working set of trip records for one equipment/date/shift
// query, with soft deletion, bracket-aware insertion and a single-row edit
// lock. The engine never mutates its model until the backing store has
// acknowledged the operation, so a failed call leaves the working set exactly
// as it was.
package timeline

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mosaops/timesheet-backend-go/internal/models"
)

// TripStore is the remote trip store the timeline persists through.
type TripStore interface {
	FetchTrips(ctx context.Context, q models.TripQuery) ([]models.Trip, error)
	AddTrip(ctx context.Context, t models.Trip) (int64, error)
	DeleteTrip(ctx context.Context, id int64) error
	RestoreTrip(ctx context.Context, id int64) error
	UpdateTrip(ctx context.Context, id int64, p models.TripPatch) error
}

// Manual ids are generated in [manualIDBase, manualIDBase+manualIDSpan) and
// replaced by the store-assigned id once the insert is acknowledged.
const (
	manualIDBase = 10000000
	manualIDSpan = 90000000
)

// Timeline holds the current working set of trips and its edit state.
// It is not safe for concurrent use; one timeline serves one user session.
type Timeline struct {
	store     TripStore
	trips     []models.Trip
	criteria  models.TripQuery
	editingID int64 // 0 when no row is being edited
	manualSeq int64
	now       func() time.Time // injectable for tests
}

// New creates an empty timeline backed by the given store.
func New(store TripStore) *Timeline {
	return &Timeline{store: store, now: time.Now}
}

// Load replaces the working set wholesale with the store's rows for the
// given criteria and resets any active edit lock. The equipment number is
// required; date and shift validation belongs to the caller.
func (tl *Timeline) Load(ctx context.Context, q models.TripQuery) error {
	if strings.TrimSpace(q.Equipment) == "" {
		return ErrEmptyCriteria
	}
	trips, err := tl.store.FetchTrips(ctx, q)
	if err != nil {
		return storeErr("fetch", err)
	}
	tl.criteria = q
	tl.trips = trips
	tl.editingID = 0
	tl.sortByReportTime()
	return nil
}

// InsertBelow creates a new manual trip seeded from the row anchored at
// anchorID, submits it to the store and, once acknowledged, appends it to the
// working set and re-sorts. Descriptive fields come from the bracket
// reference; the report time is always the anchor's plus one minute (or the
// current time when the anchor has none).
func (tl *Timeline) InsertBelow(ctx context.Context, anchorID int64) (models.Trip, error) {
	idx := tl.indexOf(anchorID)
	if idx < 0 {
		return models.Trip{}, ErrReferenceNotFound
	}
	anchor := tl.trips[idx]
	ref := referenceFor(tl.trips, idx)

	rt := tl.now()
	if anchor.ReportTime != nil {
		rt = anchor.ReportTime.Add(time.Minute)
	}
	trip := models.Trip{
		ID:           tl.nextManualID(),
		ReportTime:   &rt,
		EquipmentNo:  ref.EquipmentNo,
		OperatorID:   ref.OperatorID,
		OperatorName: ref.OperatorName,
		Shift:        ref.Shift,
		LoaderID:     ref.LoaderID,
		PosName:      ref.PosName,
		Distance:     ref.Distance,
		Note:         models.NoteManual,
	}

	id, err := tl.store.AddTrip(ctx, trip)
	if err != nil {
		return models.Trip{}, storeErr("add", err)
	}
	if id != 0 {
		trip.ID = id
	}
	tl.trips = append(tl.trips, trip)
	tl.sortByReportTime()
	return trip, nil
}

// SoftDelete marks the trip deleted once the store acknowledges. The row
// stays in the working set; only its note changes.
func (tl *Timeline) SoftDelete(ctx context.Context, id int64) error {
	idx := tl.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	if err := tl.store.DeleteTrip(ctx, id); err != nil {
		return storeErr("delete", err)
	}
	tl.trips[idx].Note = models.NoteDeleted
	return nil
}

// Restore clears the deleted note once the store acknowledges.
func (tl *Timeline) Restore(ctx context.Context, id int64) error {
	idx := tl.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	if err := tl.store.RestoreTrip(ctx, id); err != nil {
		return storeErr("restore", err)
	}
	tl.trips[idx].Note = models.NoteActive
	return nil
}

// BeginEdit sets the singleton edit lock to id. A second call moves the lock
// to the new row; the abandoned edit is simply discarded. Unknown ids are a
// no-op.
func (tl *Timeline) BeginEdit(id int64) {
	if tl.indexOf(id) < 0 {
		return
	}
	tl.editingID = id
}

// CommitEdit validates the patch, submits it to the store and, once
// acknowledged, applies it in memory and clears the edit lock. The working
// set is re-sorted only when the report time changed. On store failure the
// lock stays engaged so the caller can retry or cancel.
func (tl *Timeline) CommitEdit(ctx context.Context, id int64, patch models.TripPatch) error {
	idx := tl.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	if err := validatePatch(patch); err != nil {
		return err
	}
	if err := tl.store.UpdateTrip(ctx, id, patch); err != nil {
		return storeErr("update", err)
	}

	t := &tl.trips[idx]
	timeChanged := false
	if patch.ReportTime != nil {
		timeChanged = t.ReportTime == nil || !t.ReportTime.Equal(*patch.ReportTime)
		rt := *patch.ReportTime
		t.ReportTime = &rt
	}
	t.LoaderID = patch.LoaderID
	t.PosName = patch.PosName
	t.Distance = patch.Distance
	tl.editingID = 0
	if timeChanged {
		tl.sortByReportTime()
	}
	return nil
}

// CancelEdit clears the edit lock without mutating the row.
func (tl *Timeline) CancelEdit() {
	tl.editingID = 0
}

// EditingID returns the id under the edit lock, 0 when none.
func (tl *Timeline) EditingID() int64 {
	return tl.editingID
}

// Trips returns a snapshot of the working set in display order.
func (tl *Timeline) Trips() []models.Trip {
	out := make([]models.Trip, len(tl.trips))
	copy(out, tl.trips)
	return out
}

// Criteria returns the query the working set was loaded with.
func (tl *Timeline) Criteria() models.TripQuery {
	return tl.criteria
}

// ActiveCount counts rows not soft-deleted.
func (tl *Timeline) ActiveCount() int {
	n := 0
	for i := range tl.trips {
		if tl.trips[i].Note != models.NoteDeleted {
			n++
		}
	}
	return n
}

// AddedCount counts manually inserted rows.
func (tl *Timeline) AddedCount() int {
	n := 0
	for i := range tl.trips {
		if tl.trips[i].Note == models.NoteManual {
			n++
		}
	}
	return n
}

// DeletedCount counts soft-deleted rows.
func (tl *Timeline) DeletedCount() int {
	n := 0
	for i := range tl.trips {
		if tl.trips[i].Note == models.NoteDeleted {
			n++
		}
	}
	return n
}

func (tl *Timeline) nextManualID() int64 {
	tl.manualSeq++
	return manualIDBase + tl.manualSeq%manualIDSpan
}

func (tl *Timeline) indexOf(id int64) int {
	for i := range tl.trips {
		if tl.trips[i].ID == id {
			return i
		}
	}
	return -1
}

// sortByReportTime stably sorts the working set ascending by report time,
// with absent times first. Stability matters: two manual rows seeded a minute
// apart from the same anchor can legitimately share a timestamp after edits.
func (tl *Timeline) sortByReportTime() {
	sort.SliceStable(tl.trips, func(i, j int) bool {
		a, b := tl.trips[i].ReportTime, tl.trips[j].ReportTime
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})
}

// validatePatch rejects edits whose distance is not empty and not numeric.
// Report times arrive already parsed, loader and pos names are free-form.
func validatePatch(p models.TripPatch) error {
	d := strings.TrimSpace(p.Distance)
	if d == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(d, 64); err != nil {
		return ErrInvalidPatch
	}
	return nil
}
