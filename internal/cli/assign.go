package cli

import (
	"fmt"
	"time"

	"github.com/hauskeep/dispatch/internal/api"
	"github.com/hauskeep/dispatch/internal/constants"
	"github.com/hauskeep/dispatch/internal/history"
	"github.com/hauskeep/dispatch/internal/slots"
)

type AssignCmd struct {
	JobID     string `arg:"" help:"Unassigned job ID."`
	CleanerID string `arg:"" help:"Cleaner to assign the job to."`
	Date      string `short:"d" help:"Booking date (YYYY-MM-DD)." required:""`
	Slot      string `short:"s" help:"Slot label, e.g. 10:00-12:00." required:""`
	Note      string `short:"n" help:"Optional operator note."`
}

func (c *AssignCmd) Validate() error {
	return validateSlotArgs(c.Date, c.Slot)
}

func (c *AssignCmd) Run(ctx *Context) error {
	start, end, err := slots.BoundStrings(c.Date, c.Slot, ctx.Config.Location())
	if err != nil {
		return err
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	result, err := ctx.Client.AssignJob(reqCtx, api.AssignRequest{
		JobID:     c.JobID,
		CleanerID: c.CleanerID,
		StartTime: start,
		EndTime:   end,
		Notes:     c.Note,
	})
	ctx.RecordHistory(history.Entry{
		Kind:      history.KindAssign,
		JobID:     c.JobID,
		CleanerID: c.CleanerID,
		Slot:      c.Slot,
		Date:      c.Date,
		Outcome:   outcomeFor(result.Warning, err),
		Detail:    detailFor(result.Warning, err),
	})
	if err != nil {
		return err
	}
	if result.Warning != "" {
		fmt.Printf("Assigned with warning: %s\n", result.Warning)
		return nil
	}
	fmt.Printf("Assigned job %s to cleaner %s (%s %s).\n", c.JobID, c.CleanerID, c.Date, c.Slot)
	return nil
}

type MoveCmd struct {
	JobID     string `arg:"" help:"Placed booking ID."`
	CleanerID string `arg:"" help:"Target cleaner."`
	Date      string `short:"d" help:"Target date (YYYY-MM-DD)." required:""`
	Slot      string `short:"s" help:"Target slot label." required:""`
	Note      string `short:"n" help:"Optional operator note."`
}

func (c *MoveCmd) Validate() error {
	return validateSlotArgs(c.Date, c.Slot)
}

func (c *MoveCmd) Run(ctx *Context) error {
	start, end, err := slots.BoundStrings(c.Date, c.Slot, ctx.Config.Location())
	if err != nil {
		return err
	}

	note := c.Note
	if note == "" {
		note = fmt.Sprintf("moved on %s", c.Date)
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	result, err := ctx.Client.UpdateBooking(reqCtx, c.JobID, api.MoveRequest{
		CleanerID: c.CleanerID,
		StartTime: start,
		EndTime:   end,
		Notes:     note,
	})
	ctx.RecordHistory(history.Entry{
		Kind:      history.KindMove,
		JobID:     c.JobID,
		CleanerID: c.CleanerID,
		Slot:      c.Slot,
		Date:      c.Date,
		Outcome:   outcomeFor(result.Warning, err),
		Detail:    detailFor(result.Warning, err),
	})
	if err != nil {
		return err
	}
	if result.Warning != "" {
		fmt.Printf("Moved with warning: %s\n", result.Warning)
		return nil
	}
	fmt.Printf("Moved booking %s to cleaner %s (%s %s).\n", c.JobID, c.CleanerID, c.Date, c.Slot)
	return nil
}

type DeleteCmd struct {
	JobID string `arg:"" help:"Booking ID to delete."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if !c.Yes {
		fmt.Printf("Delete booking %s entirely? This cannot be undone. [y/N] ", c.JobID)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	err := ctx.Client.DeleteBooking(reqCtx, c.JobID)
	ctx.RecordHistory(history.Entry{
		Kind:    history.KindDelete,
		JobID:   c.JobID,
		Outcome: outcomeFor("", err),
		Detail:  detailFor("", err),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Deleted booking %s.\n", c.JobID)
	return nil
}

func validateSlotArgs(date, slot string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	if _, _, err := slots.ParseLabel(slot); err != nil {
		return err
	}
	return nil
}

func outcomeFor(warning string, err error) history.Outcome {
	switch {
	case err != nil:
		return history.OutcomeError
	case warning != "":
		return history.OutcomeWarning
	default:
		return history.OutcomeOK
	}
}

func detailFor(warning string, err error) string {
	if err != nil {
		return err.Error()
	}
	return warning
}
