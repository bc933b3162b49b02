package models

import "fmt"

type JobStatus string

const (
	StatusPending    JobStatus = "pending"
	StatusConfirmed  JobStatus = "confirmed"
	StatusInProgress JobStatus = "in_progress"
	StatusCompleted  JobStatus = "completed"
	StatusCancelled  JobStatus = "cancelled"
)

type HouseSize string

const (
	HouseSmall  HouseSize = "small"
	HouseMedium HouseSize = "medium"
	HouseLarge  HouseSize = "large"
)

type Frequency string

const (
	FrequencyOnce     Frequency = "once"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Job is a cleaning booking as reported by the backend. CleanerID and
// TimeSlot are both nil for an unassigned job and both set for a placed one;
// the backend never reports a half-assigned job.
type Job struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Date         string    `json:"date"`                 // YYYY-MM-DD
	TimeSlot     *string   `json:"time_slot,omitempty"`  // slot label, e.g. "10:00-12:00"
	CleanerID    *string   `json:"cleaner_id,omitempty"`
	DurationMin  int       `json:"duration_min"`
	HouseSize    HouseSize `json:"house_size,omitempty"`
	Frequency    Frequency `json:"frequency,omitempty"`
	TotalCents   int64     `json:"total_cents"`
	Address      string    `json:"address"`
	Status       JobStatus `json:"status"`
}

// Placed reports whether the job is assigned to a cleaner and slot.
func (j Job) Placed() bool {
	return j.CleanerID != nil && *j.CleanerID != "" && j.TimeSlot != nil && *j.TimeSlot != ""
}

// Slot returns the assigned slot label, or "" when unassigned.
func (j Job) Slot() string {
	if j.TimeSlot == nil {
		return ""
	}
	return *j.TimeSlot
}

// Cleaner returns the assigned cleaner ID, or "" when unassigned.
func (j Job) Cleaner() string {
	if j.CleanerID == nil {
		return ""
	}
	return *j.CleanerID
}

// FormatTotal renders the monetary total for display.
func (j Job) FormatTotal() string {
	return fmt.Sprintf("$%d.%02d", j.TotalCents/100, j.TotalCents%100)
}
