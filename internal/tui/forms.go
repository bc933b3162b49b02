package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hauskeep/dispatch/internal/dnd"
)

// AssignFormModel backs the assignment confirmation dialog.
type AssignFormModel struct {
	Note      string
	Confirmed bool
}

// NewAssignForm builds the confirmation dialog for a completed drop: the
// proposed transition, any computed warnings, an optional operator note, and
// the final confirm toggle.
func NewAssignForm(fm *AssignFormModel, pending *dnd.PendingAssignment) *huh.Form {
	verb := "Assign"
	if pending.IsMove {
		verb = "Move"
	}
	title := fmt.Sprintf("%s %s → %s @ %s on %s",
		verb, pending.Job.CustomerName,
		pending.Target.CleanerName, pending.Target.Slot, pending.Target.Date)

	description := "No conflicts detected."
	if len(pending.Warnings) > 0 {
		var lines []string
		for _, w := range pending.Warnings {
			lines = append(lines, "⚠ "+w.Message)
		}
		description = strings.Join(lines, "\n")
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title).
				Description(description),
			huh.NewInput().
				Title("Operator note (optional)").
				Value(&fm.Note),
			huh.NewConfirm().
				Title("Apply this assignment?").
				Affirmative("Confirm").
				Negative("Cancel").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
