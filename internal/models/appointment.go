// Package models defines the data types exchanged between the
// appointment source, the calendar sink, and the sync orchestrator.
package models

import (
	"encoding/json"
	"fmt"
)

// AppointmentID is the upstream appointment identifier. Upstream payloads
// are inconsistent about its JSON type, so it decodes from a string, a
// number, or null. Null and absent both coerce to the empty string.
type AppointmentID string

// UnmarshalJSON accepts string, numeric, and null identifiers.
func (id *AppointmentID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = AppointmentID(s)
		return nil
	}

	// json.Number keeps the original text, so large integer ids do not
	// round-trip through float64.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("appointment id must be a string or number: %w", err)
	}
	*id = AppointmentID(n.String())
	return nil
}

func (id AppointmentID) String() string {
	return string(id)
}

// Appointment is a single record from the third-party appointment API.
// Start and end times are pre-formatted date-time strings and are passed
// through to the calendar verbatim. Appointments are transient values;
// nothing stores them locally.
type Appointment struct {
	ID          AppointmentID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
}
