package models

// SyncResult tallies the outcome of one sync run.
// Fetched == Synced + Skipped holds for every result.
type SyncResult struct {
	Fetched int `json:"fetched"`
	Synced  int `json:"synced"`
	Skipped int `json:"skipped"`
}

// CalendarEvent is the provider-neutral representation of an event the
// sink created from an appointment.
type CalendarEvent struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Link        string `json:"link,omitempty"`
}
