package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hauskeep/dispatch/internal/api"
	"github.com/hauskeep/dispatch/internal/dnd"
	"github.com/hauskeep/dispatch/internal/history"
	"github.com/hauskeep/dispatch/internal/logger"
	"github.com/hauskeep/dispatch/internal/models"
)

// boardLoadedMsg carries one full load for the date it was requested for.
// The date tag lets Update discard responses that arrive after the operator
// has already moved to another day.
type boardLoadedMsg struct {
	date       string
	cleaners   []models.CleanerAvailability
	unassigned []models.Job
	err        error
}

// commandDoneMsg reports the outcome of an assign/move/delete dispatch.
// warning is the backend's soft-conflict flag: the mutation was applied but
// flagged.
type commandDoneMsg struct {
	kind    history.Kind
	jobID   string
	warning string
	err     error
}

// backend abstracts the API client so Update can be exercised in tests with
// a fake.
type backend interface {
	UnassignedJobs(ctx context.Context) ([]models.Job, error)
	AvailabilitySummary(ctx context.Context, date string) ([]models.CleanerAvailability, error)
	AssignJob(ctx context.Context, req api.AssignRequest) (api.CommandResult, error)
	UpdateBooking(ctx context.Context, jobID string, req api.MoveRequest) (api.CommandResult, error)
	DeleteBooking(ctx context.Context, jobID string) error
}

func loadBoardCmd(client backend, timeout time.Duration, date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		unassignedJobs, err := client.UnassignedJobs(ctx)
		if err != nil {
			return boardLoadedMsg{date: date, err: err}
		}
		summary, err := client.AvailabilitySummary(ctx, date)
		if err != nil {
			return boardLoadedMsg{date: date, err: err}
		}
		return boardLoadedMsg{date: date, cleaners: summary, unassigned: unassignedJobs}
	}
}

func dispatchCmd(client backend, journal *history.Store, timeout time.Duration, cmd dnd.Command, date, slot string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var result api.CommandResult
		var err error
		kind := history.KindAssign
		if cmd.IsMove {
			kind = history.KindMove
			result, err = client.UpdateBooking(ctx, cmd.JobID, api.MoveRequest{
				CleanerID: cmd.CleanerID,
				StartTime: cmd.Start,
				EndTime:   cmd.End,
				Notes:     cmd.Note,
			})
		} else {
			result, err = client.AssignJob(ctx, api.AssignRequest{
				JobID:     cmd.JobID,
				CleanerID: cmd.CleanerID,
				StartTime: cmd.Start,
				EndTime:   cmd.End,
				Notes:     cmd.Note,
			})
		}

		journalEntry(journal, history.Entry{
			Kind:      kind,
			JobID:     cmd.JobID,
			CleanerID: cmd.CleanerID,
			Slot:      slot,
			Date:      date,
			Outcome:   outcomeFor(result.Warning, err),
			Detail:    detailFor(result.Warning, err),
		})
		return commandDoneMsg{kind: kind, jobID: cmd.JobID, warning: result.Warning, err: err}
	}
}

func deleteCmd(client backend, journal *history.Store, timeout time.Duration, job models.Job) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := client.DeleteBooking(ctx, job.ID)
		journalEntry(journal, history.Entry{
			Kind:      history.KindDelete,
			JobID:     job.ID,
			CleanerID: job.Cleaner(),
			Slot:      job.Slot(),
			Date:      job.Date,
			Outcome:   outcomeFor("", err),
			Detail:    detailFor("", err),
		})
		return commandDoneMsg{kind: history.KindDelete, jobID: job.ID, err: err}
	}
}

func journalEntry(journal *history.Store, e history.Entry) {
	if journal == nil {
		return
	}
	if err := journal.Append(e); err != nil {
		logger.Warn("Failed to journal command", "error", err)
	}
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
	switch {
	case err != nil:
		return err.Error()
	default:
		return warning
	}
}
