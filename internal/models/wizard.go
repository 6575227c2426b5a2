package models

import "time"

// Unit type values selectable in step 1.
const (
	UnitType3Shift = "3 Shift"
	UnitType2Shift = "2 Shift"
)

// Step1State holds the date/shift selection made in step 1.
type Step1State struct {
	SelectedDate   string   `json:"selectedDate"` // YYYY-MM-DD
	SelectedShifts []string `json:"selectedShifts"`
	UnitType       string   `json:"unitType"`
}

// Valid reports whether step 1 is complete: a date and at least one shift.
func (s Step1State) Valid() bool {
	return s.SelectedDate != "" && len(s.SelectedShifts) > 0
}

// HasFriday reports whether the selected date falls on a Friday, which
// requires the 2-shift (long shift) unit type.
func (s Step1State) HasFriday() bool {
	if s.SelectedDate == "" {
		return false
	}
	d, err := time.Parse("2006-01-02", s.SelectedDate)
	if err != nil {
		return false
	}
	return d.Weekday() == time.Friday
}

// Step2State holds the equipment/operator selection and the working trip set
// from step 2.
type Step2State struct {
	EquipmentNumber string `json:"equipmentNumber"`
	OperatorID      string `json:"operatorId"`
	Trips           []Trip `json:"trips"`
}
