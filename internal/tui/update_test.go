package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hauskeep/dispatch/internal/api"
	"github.com/hauskeep/dispatch/internal/constants"
	"github.com/hauskeep/dispatch/internal/dnd"
	"github.com/hauskeep/dispatch/internal/history"
	"github.com/hauskeep/dispatch/internal/models"
	"github.com/hauskeep/dispatch/internal/slots"
)

type fakeBackend struct {
	jobs    []models.Job
	summary []models.CleanerAvailability
	warning string
	err     error

	assignCalls int
	moveCalls   int
	deleteCalls int
}

func (f *fakeBackend) UnassignedJobs(ctx context.Context) ([]models.Job, error) {
	return f.jobs, f.err
}

func (f *fakeBackend) AvailabilitySummary(ctx context.Context, date string) ([]models.CleanerAvailability, error) {
	return f.summary, f.err
}

func (f *fakeBackend) AssignJob(ctx context.Context, req api.AssignRequest) (api.CommandResult, error) {
	f.assignCalls++
	return api.CommandResult{Warning: f.warning}, f.err
}

func (f *fakeBackend) UpdateBooking(ctx context.Context, jobID string, req api.MoveRequest) (api.CommandResult, error) {
	f.moveCalls++
	return api.CommandResult{Warning: f.warning}, f.err
}

func (f *fakeBackend) DeleteBooking(ctx context.Context, jobID string) error {
	f.deleteCalls++
	return f.err
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, fake *fakeBackend) Model {
	t.Helper()
	catalog, err := slots.NewCatalog(nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(fake, nil, Options{
		Catalog:  catalog,
		Location: time.UTC,
		Timeout:  time.Second,
		Date:     "2024-06-01",
	})
}

func loadedModel(t *testing.T, m Model, fake *fakeBackend) Model {
	t.Helper()
	next, _ := m.Update(boardLoadedMsg{
		date:       m.selectedDate,
		cleaners:   fake.summary,
		unassigned: fake.jobs,
	})
	return next.(Model)
}

func standardFake() *fakeBackend {
	return &fakeBackend{
		jobs: []models.Job{{ID: "j1", CustomerName: "Vega", Date: "2024-06-01", DurationMin: 120}},
		summary: []models.CleanerAvailability{
			{CleanerID: "c1", DisplayName: "Ana", Slots: map[string]models.SlotInfo{
				"08:00-10:00": {
					IsAvailable: boolPtr(false),
					ExistingJobs: []models.Job{{
						ID:        "j2",
						Date:      "2024-06-01",
						CleanerID: strPtr("c1"),
						TimeSlot:  strPtr("08:00-10:00"),
					}},
				},
				"10:00-12:00": {IsAvailable: boolPtr(true)},
			}},
		},
	}
}

func TestStaleLoadDiscarded(t *testing.T) {
	fake := standardFake()
	m := newTestModel(t, fake)

	next, _ := m.Update(boardLoadedMsg{
		date:     "2024-05-28",
		cleaners: fake.summary,
	})
	m = next.(Model)

	if !m.loading {
		t.Error("stale response cleared the loading flag")
	}
	if len(m.grid.Cleaners) != 0 {
		t.Error("stale response was applied to the grid")
	}
}

func TestLoadAppliesGrid(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	if m.loading {
		t.Error("loading flag still set after matching load")
	}
	if len(m.grid.Cleaners) != 1 {
		t.Fatalf("grid has %d cleaners, want 1", len(m.grid.Cleaners))
	}
	if m.unassigned.Len() != 1 {
		t.Errorf("unassigned list has %d jobs, want 1", m.unassigned.Len())
	}
}

func TestPickUpAndDropOpensConfirmation(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.coordinator.State() != dnd.StateDragging {
		t.Fatalf("after pick up coordinator = %v, want dragging", m.coordinator.State())
	}
	if m.focus != focusGrid {
		t.Error("focus did not move to the grid for the drop")
	}

	// Cursor starts on (c1, 08:00-10:00): unavailable and occupied.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.state != constants.StateConfirmAssign {
		t.Fatalf("state = %v, want confirm-assign", m.state)
	}
	pending := m.coordinator.Pending()
	if pending == nil {
		t.Fatal("no pending assignment after drop")
	}
	if len(pending.Warnings) != 2 {
		t.Errorf("warnings = %v, want unavailable + occupied", pending.Warnings)
	}
	if pending.IsMove {
		t.Error("IsMove = true for an unassigned job")
	}
}

func TestCancelConfirmationIssuesNoCommand(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	if m.state != constants.StateBoard {
		t.Errorf("state = %v, want board after cancel", m.state)
	}
	if m.coordinator.State() != dnd.StateIdle {
		t.Errorf("coordinator = %v, want idle after cancel", m.coordinator.State())
	}
	if fake.assignCalls != 0 || fake.moveCalls != 0 {
		t.Errorf("cancel dispatched a command: assign=%d move=%d", fake.assignCalls, fake.moveCalls)
	}
}

func TestCancelDragWithEsc(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	if m.coordinator.State() != dnd.StateIdle {
		t.Errorf("coordinator = %v, want idle", m.coordinator.State())
	}
	if fake.assignCalls != 0 {
		t.Error("cancelled drag dispatched a command")
	}
}

func TestDateChangeCancelsDrag(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, cmd := m.Update(keyRune(']'))
	m = next.(Model)

	if m.selectedDate != "2024-06-02" {
		t.Errorf("selectedDate = %q, want 2024-06-02", m.selectedDate)
	}
	if m.coordinator.State() != dnd.StateIdle {
		t.Errorf("coordinator = %v, drag should be abandoned on date change", m.coordinator.State())
	}
	if !m.loading || cmd == nil {
		t.Error("date change did not trigger a reload")
	}
}

func TestDeleteDeclinedIssuesNoCall(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	next, _ = m.Update(keyRune('d'))
	m = next.(Model)
	if m.state != constants.StateConfirmDelete {
		t.Fatalf("state = %v, want confirm-delete", m.state)
	}

	next, _ = m.Update(keyRune('n'))
	m = next.(Model)
	if m.state != constants.StateBoard {
		t.Errorf("state = %v, want board", m.state)
	}
	if fake.deleteCalls != 0 {
		t.Errorf("declined delete issued %d calls", fake.deleteCalls)
	}
}

func TestDeleteConfirmedIssuesCall(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	next, _ = m.Update(keyRune('d'))
	m = next.(Model)
	next, cmd := m.Update(keyRune('y'))
	m = next.(Model)

	if cmd == nil {
		t.Fatal("confirmed delete produced no command")
	}
	msg := cmd()
	done, ok := msg.(commandDoneMsg)
	if !ok {
		t.Fatalf("command produced %T, want commandDoneMsg", msg)
	}
	if done.kind != history.KindDelete {
		t.Errorf("kind = %v, want delete", done.kind)
	}
	if fake.deleteCalls != 1 {
		t.Errorf("deleteCalls = %d, want 1", fake.deleteCalls)
	}
}

func TestMovePickupFromOccupiedCell(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	next, _ = m.Update(keyRune('m'))
	m = next.(Model)

	payload := m.coordinator.Dragging()
	if payload == nil || payload.Job.ID != "j2" {
		t.Fatalf("payload = %+v, want placed job j2", payload)
	}

	// Drop on the free neighbouring slot.
	next, _ = m.Update(keyRune('l'))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	pending := m.coordinator.Pending()
	if pending == nil {
		t.Fatal("no pending assignment")
	}
	if !pending.IsMove {
		t.Error("IsMove = false for a placed job")
	}
	if pending.Target.Slot != "10:00-12:00" {
		t.Errorf("target slot = %q, want 10:00-12:00", pending.Target.Slot)
	}
	if len(pending.Warnings) != 0 {
		t.Errorf("warnings = %v, want none for a free cell", pending.Warnings)
	}
}

func TestCommandDoneTriggersReload(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)
	m.commandInFlight = true

	next, cmd := m.Update(commandDoneMsg{kind: history.KindAssign, jobID: "j1"})
	m = next.(Model)

	if m.commandInFlight {
		t.Error("commandInFlight still set")
	}
	if !m.loading || cmd == nil {
		t.Error("successful command did not trigger a reload")
	}
	if notice, level := m.Notice(); notice != "Job assigned" || level != constants.NoticeInfo {
		t.Errorf("notice = %q (%v), want info 'Job assigned'", notice, level)
	}
}

func TestCommandDoneSoftWarning(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	next, cmd := m.Update(commandDoneMsg{kind: history.KindAssign, warning: "double booking"})
	m = next.(Model)

	notice, level := m.Notice()
	if level != constants.NoticeWarning {
		t.Errorf("notice level = %v, want warning for a soft conflict", level)
	}
	if notice == "" || cmd == nil {
		t.Error("soft conflict must still notify and reload")
	}
}

func TestCommandDoneErrorKeepsState(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	next, cmd := m.Update(commandDoneMsg{kind: history.KindAssign, err: &api.Error{Status: 422, Message: "cleaner not found"}})
	m = next.(Model)

	if cmd != nil {
		t.Error("failed command triggered a reload; state should stay as-is")
	}
	if _, level := m.Notice(); level != constants.NoticeError {
		t.Errorf("notice level = %v, want error", level)
	}
	if len(m.grid.Cleaners) != 1 {
		t.Error("grid mutated on command failure")
	}
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	fake := standardFake()
	m := loadedModel(t, newTestModel(t, fake), fake)

	next, _ := m.Update(boardLoadedMsg{date: m.selectedDate, err: &api.Error{Status: 500}})
	m = next.(Model)

	if len(m.grid.Cleaners) != 1 {
		t.Error("load failure wiped the previous grid")
	}
	if _, level := m.Notice(); level != constants.NoticeError {
		t.Errorf("notice level = %v, want error", level)
	}
}
