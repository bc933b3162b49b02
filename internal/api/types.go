package api

import "fmt"

// AssignRequest is the payload for assigning an unassigned job.
type AssignRequest struct {
	JobID     string `json:"job_id"`
	CleanerID string `json:"cleaner_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes,omitempty"`
}

// MoveRequest is the payload for relocating an already-placed booking.
type MoveRequest struct {
	CleanerID string `json:"cleaner_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes,omitempty"`
}

// CommandResult reports a mutation outcome. Warning is a soft conflict: the
// backend applied the change but flagged it, which the UI surfaces as a
// non-fatal notice.
type CommandResult struct {
	Warning string `json:"warning,omitempty"`
}

// Error is a backend rejection or transport failure surfaced to the caller.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}
