package dnd

import (
	"errors"
	"fmt"

	"github.com/hauskeep/dispatch/internal/models"
)

// State is the coordinator's drag lifecycle state.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateAwaitingConfirmation
)

func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	default:
		return "idle"
	}
}

var (
	// ErrConfirmationPending is returned when a drag is started while a
	// previous drop still awaits operator confirmation.
	ErrConfirmationPending = errors.New("a pending assignment is awaiting confirmation")
	// ErrDragActive is returned when a drag is started over an active one.
	ErrDragActive = errors.New("a drag is already active")
	// ErrNoActiveDrag is returned when a drop arrives with nothing dragged.
	ErrNoActiveDrag = errors.New("no active drag")
)

// WarningKind classifies a drop conflict.
type WarningKind string

const (
	WarningUnavailable WarningKind = "unavailable"
	WarningOccupied    WarningKind = "occupied"
)

// Warning is one conflict surfaced to the operator before a drop is
// confirmed.
type Warning struct {
	Kind    WarningKind
	Message string
}

// Payload carries the job being dragged. It is a denormalized copy so the
// drag overlay and confirmation dialog can render without a re-fetch.
type Payload struct {
	Job models.Job
}

// DropTarget identifies the cell under the pointer at drop time.
type DropTarget struct {
	CleanerID    string
	CleanerName  string
	Slot         string
	Date         string
	Availability models.AvailabilityState
	ExistingJobs int
}

// PendingAssignment is the proposed transition produced by a completed drag.
// It lives only until the operator confirms or cancels.
type PendingAssignment struct {
	Job      models.Job
	Target   DropTarget
	Warnings []Warning
	IsMove   bool
}

// Coordinator owns the drag lifecycle: Idle -> Dragging -> Idle (cancelled)
// or Idle -> Dragging -> AwaitingConfirmation -> Idle. It is deliberately
// free of any UI dependency so the conflict logic is testable without
// simulating pointer or key events.
type Coordinator struct {
	state   State
	payload *Payload
	pending *PendingAssignment
}

// New returns an idle coordinator.
func New() *Coordinator {
	return &Coordinator{}
}

// State returns the current lifecycle state.
func (c *Coordinator) State() State {
	return c.state
}

// Dragging returns the active payload, or nil when no drag is active.
func (c *Coordinator) Dragging() *Payload {
	return c.payload
}

// Pending returns the assignment awaiting confirmation, or nil.
func (c *Coordinator) Pending() *PendingAssignment {
	return c.pending
}

// BeginDrag transitions Idle -> Dragging. Starting a drag while another is
// active, or while a pending assignment awaits confirmation, is rejected.
func (c *Coordinator) BeginDrag(job models.Job) error {
	switch c.state {
	case StateAwaitingConfirmation:
		return ErrConfirmationPending
	case StateDragging:
		return ErrDragActive
	}
	c.payload = &Payload{Job: job}
	c.state = StateDragging
	return nil
}

// CancelDrag abandons the active drag with no side effects. Calling it while
// idle is a no-op.
func (c *Coordinator) CancelDrag() {
	if c.state != StateDragging {
		return
	}
	c.payload = nil
	c.state = StateIdle
}

// Drop completes the active drag over target, computing the warning set and
// transitioning to AwaitingConfirmation. IsMove is true iff the dragged job
// already had both a cleaner and a slot.
func (c *Coordinator) Drop(target DropTarget) (*PendingAssignment, error) {
	if c.state != StateDragging {
		return nil, ErrNoActiveDrag
	}
	job := c.payload.Job
	pending := &PendingAssignment{
		Job:      job,
		Target:   target,
		Warnings: ComputeWarnings(target),
		IsMove:   job.Placed(),
	}
	c.payload = nil
	c.pending = pending
	c.state = StateAwaitingConfirmation
	return pending, nil
}

// Resolve clears the pending assignment after the operator confirmed or
// cancelled, returning the coordinator to Idle.
func (c *Coordinator) Resolve() {
	c.pending = nil
	c.state = StateIdle
}

// ComputeWarnings derives the conflict set for a drop target. Unknown
// availability is not a conflict; only an explicit unavailable signal and
// existing occupancy warn.
func ComputeWarnings(target DropTarget) []Warning {
	var warnings []Warning
	if target.Availability == models.Unavailable {
		warnings = append(warnings, Warning{
			Kind:    WarningUnavailable,
			Message: "cleaner is marked unavailable for this slot",
		})
	}
	if target.ExistingJobs > 0 {
		warnings = append(warnings, Warning{
			Kind:    WarningOccupied,
			Message: fmt.Sprintf("%d job(s) already assigned to this slot", target.ExistingJobs),
		})
	}
	return warnings
}
