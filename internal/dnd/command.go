package dnd

import (
	"fmt"
	"time"

	"github.com/hauskeep/dispatch/internal/slots"
)

// Command is the backend mutation a confirmed assignment resolves to. IsMove
// selects between the assign-job and update-booking operations.
type Command struct {
	IsMove    bool
	JobID     string
	CleanerID string
	Start     string
	End       string
	Note      string
}

// Command converts a confirmed pending assignment into the backend command,
// combining the target date with the slot label's clock bounds. A blank note
// on a move defaults to an auto-generated relocation note.
func (p *PendingAssignment) Command(note string, loc *time.Location) (Command, error) {
	start, end, err := slots.BoundStrings(p.Target.Date, p.Target.Slot, loc)
	if err != nil {
		return Command{}, err
	}
	if p.IsMove && note == "" {
		note = fmt.Sprintf("moved on %s", p.Target.Date)
	}
	return Command{
		IsMove:    p.IsMove,
		JobID:     p.Job.ID,
		CleanerID: p.Target.CleanerID,
		Start:     start,
		End:       end,
		Note:      note,
	}, nil
}
