package models

// AvailabilityState is the backend's per-slot busy/free signal. Missing data
// degrades to Unknown rather than an error.
type AvailabilityState int

const (
	AvailabilityUnknown AvailabilityState = iota
	Available
	Unavailable
)

func (s AvailabilityState) String() string {
	switch s {
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// SlotInfo describes one (cleaner, slot) cell as reported by the backend.
// IsAvailable is a tri-state: nil means the backend had no data for the cell.
// ExistingJobs are the placed jobs already occupying the slot, in backend
// order. Occupancy and availability are independent signals; a slot can be
// unavailable and still hold a job, which is a conflict the UI surfaces.
type SlotInfo struct {
	IsAvailable  *bool `json:"is_available"`
	ExistingJobs []Job `json:"existing_jobs"`
}

// State collapses the tri-state pointer into an AvailabilityState.
func (s SlotInfo) State() AvailabilityState {
	if s.IsAvailable == nil {
		return AvailabilityUnknown
	}
	if *s.IsAvailable {
		return Available
	}
	return Unavailable
}

// CleanerAvailability is the per-date availability summary for one cleaner.
// It is rebuilt from the backend on every load and never mutated locally.
type CleanerAvailability struct {
	CleanerID   string              `json:"cleaner_id"`
	DisplayName string              `json:"display_name"`
	HasCalendar bool                `json:"has_calendar"`
	Slots       map[string]SlotInfo `json:"slots"`
}
