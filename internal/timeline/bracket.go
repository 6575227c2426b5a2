package timeline

import "github.com/mosaops/timesheet-backend-go/internal/models"

// referenceFor picks the trip a new insertion copies its descriptive fields
// from. Ordinary rows are their own reference. LOGIN and LOGOUT rows are
// structural markers with no equipment state of their own, so the nearest
// ordinary trip supplies the context instead: forward of a LOGIN, backward of
// a LOGOUT. When no ordinary trip exists on that side the anchor stands in.
//
// sorted must be in display order (ascending report time) and anchorIdx must
// index the anchor within it.
func referenceFor(sorted []models.Trip, anchorIdx int) models.Trip {
	anchor := sorted[anchorIdx]
	switch {
	case anchor.IsLoginMarker():
		for i := anchorIdx + 1; i < len(sorted); i++ {
			if !sorted[i].IsMarker() {
				return sorted[i]
			}
		}
	case anchor.IsLogoutMarker():
		for i := anchorIdx - 1; i >= 0; i-- {
			if !sorted[i].IsMarker() {
				return sorted[i]
			}
		}
	}
	return anchor
}
