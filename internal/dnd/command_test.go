package dnd

import (
	"testing"
	"time"

	"github.com/hauskeep/dispatch/internal/models"
)

func TestCommandAssignScenario(t *testing.T) {
	// Unassigned job dropped on a free cell: no warnings, assign command
	// with the slot's clock bounds on the selected date.
	c := New()
	if err := c.BeginDrag(models.Job{ID: "j1", CustomerName: "Vega"}); err != nil {
		t.Fatal(err)
	}
	pending, err := c.Drop(DropTarget{
		CleanerID:    "c1",
		Slot:         "10:00-12:00",
		Date:         "2024-06-01",
		Availability: models.Available,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(pending.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", pending.Warnings)
	}
	if pending.IsMove {
		t.Error("IsMove = true, want false")
	}

	cmd, err := pending.Command("", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.IsMove {
		t.Error("command IsMove = true, want false")
	}
	if cmd.Start != "2024-06-01T10:00:00" {
		t.Errorf("Start = %q, want 2024-06-01T10:00:00", cmd.Start)
	}
	if cmd.End != "2024-06-01T12:00:00" {
		t.Errorf("End = %q, want 2024-06-01T12:00:00", cmd.End)
	}
	if cmd.Note != "" {
		t.Errorf("Note = %q, want blank for a first assignment", cmd.Note)
	}
}

func TestCommandMoveScenario(t *testing.T) {
	// Placed job dropped on an unavailable, occupied cell: both warnings,
	// move command, auto note when the operator leaves notes blank.
	c := New()
	if err := c.BeginDrag(models.Job{
		ID:        "j2",
		CleanerID: strPtr("c2"),
		TimeSlot:  strPtr("08:00-10:00"),
	}); err != nil {
		t.Fatal(err)
	}
	pending, err := c.Drop(DropTarget{
		CleanerID:    "c3",
		Slot:         "08:00-10:00",
		Date:         "2024-06-01",
		Availability: models.Unavailable,
		ExistingJobs: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(pending.Warnings) != 2 {
		t.Fatalf("warnings = %v, want unavailable + occupied", pending.Warnings)
	}
	if !pending.IsMove {
		t.Error("IsMove = false, want true")
	}

	cmd, err := pending.Command("", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if !cmd.IsMove {
		t.Error("command IsMove = false, want true")
	}
	if cmd.CleanerID != "c3" {
		t.Errorf("CleanerID = %q, want c3", cmd.CleanerID)
	}
	if cmd.Start != "2024-06-01T08:00:00" || cmd.End != "2024-06-01T10:00:00" {
		t.Errorf("bounds = %q..%q, want the 08:00-10:00 slot", cmd.Start, cmd.End)
	}
	if cmd.Note != "moved on 2024-06-01" {
		t.Errorf("Note = %q, want auto-generated move note", cmd.Note)
	}
}

func TestCommandKeepsOperatorNote(t *testing.T) {
	c := New()
	if err := c.BeginDrag(models.Job{
		ID:        "j2",
		CleanerID: strPtr("c2"),
		TimeSlot:  strPtr("08:00-10:00"),
	}); err != nil {
		t.Fatal(err)
	}
	pending, err := c.Drop(DropTarget{CleanerID: "c3", Slot: "10:00-12:00", Date: "2024-06-01"})
	if err != nil {
		t.Fatal(err)
	}
	cmd, err := pending.Command("customer asked for the afternoon", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Note != "customer asked for the afternoon" {
		t.Errorf("Note = %q, operator note was dropped", cmd.Note)
	}
}

func TestCommandRejectsBadSlot(t *testing.T) {
	c := New()
	if err := c.BeginDrag(models.Job{ID: "j1"}); err != nil {
		t.Fatal(err)
	}
	pending, err := c.Drop(DropTarget{CleanerID: "c1", Slot: "not-a-slot", Date: "2024-06-01"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pending.Command("", time.UTC); err == nil {
		t.Error("Command() with malformed slot label succeeded, want error")
	}
}
