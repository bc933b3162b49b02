package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hauskeep/dispatch/internal/constants"
	"github.com/hauskeep/dispatch/internal/dnd"
	"github.com/hauskeep/dispatch/internal/errors"
	"github.com/hauskeep/dispatch/internal/history"
	"github.com/hauskeep/dispatch/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		contentHeight := msg.Height - 6 // title bar, notice line, help
		m.unassigned.SetSize(msg.Width/3-h, contentHeight-v)
		m.boardModel.SetSize(msg.Width-msg.Width/3-h, contentHeight-v)
		m.detailsModel.SetSize(msg.Width-h, contentHeight-v)
		return m, nil

	case boardLoadedMsg:
		// Guard against a slow response for a date the operator has already
		// navigated away from.
		if msg.date != m.selectedDate {
			logger.Debug("Discarding stale load", "loaded", msg.date, "selected", m.selectedDate)
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.setNotice(constants.NoticeError, errors.Format(msg.err))
			return m, nil
		}
		m.applyGrid(msg.cleaners, msg.unassigned)
		return m, nil

	case commandDoneMsg:
		m.commandInFlight = false
		if msg.err != nil {
			m.setNotice(constants.NoticeError, errors.Format(msg.err))
			return m, nil
		}
		switch {
		case msg.warning != "":
			m.setNotice(constants.NoticeWarning, "Applied with warning: "+msg.warning)
		case msg.kind == history.KindDelete:
			m.setNotice(constants.NoticeInfo, "Booking deleted")
		case msg.kind == history.KindMove:
			m.setNotice(constants.NoticeInfo, "Booking moved")
		default:
			m.setNotice(constants.NoticeInfo, "Job assigned")
		}
		m.loading = true
		return m, loadBoardCmd(m.client, m.opts.Timeout, m.selectedDate)
	}

	switch m.state {
	case constants.StateConfirmAssign:
		return m.updateConfirmAssign(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case constants.StateDetails:
		return m.updateDetails(msg)
	default:
		return m.updateBoard(msg)
	}
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(keyMsg, m.keys.Tab):
		if m.coordinator.State() != dnd.StateDragging {
			if m.focus == focusUnassigned {
				m.focus = focusGrid
			} else {
				m.focus = focusUnassigned
			}
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.PrevDay):
		return m.changeDate(-1)

	case key.Matches(keyMsg, m.keys.NextDay):
		return m.changeDate(1)

	case key.Matches(keyMsg, m.keys.Refresh):
		m.loading = true
		return m, loadBoardCmd(m.client, m.opts.Timeout, m.selectedDate)

	case key.Matches(keyMsg, m.keys.Cancel):
		if m.coordinator.State() == dnd.StateDragging {
			m.coordinator.CancelDrag()
			m.setNotice(constants.NoticeInfo, "Drag cancelled")
		}
		return m, nil
	}

	if m.focus == focusUnassigned {
		return m.updateUnassignedFocus(keyMsg)
	}
	return m.updateGridFocus(keyMsg)
}

func (m Model) updateUnassignedFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.PickUp) {
		if m.commandInFlight {
			m.setNotice(constants.NoticeWarning, "A command is still in flight")
			return m, nil
		}
		job := m.unassigned.Selected()
		if job == nil {
			m.setNotice(constants.NoticeInfo, "No unassigned jobs to pick up")
			return m, nil
		}
		if err := m.coordinator.BeginDrag(*job); err != nil {
			m.setNotice(constants.NoticeWarning, errors.Format(err))
			return m, nil
		}
		m.focus = focusGrid
		m.setNotice(constants.NoticeInfo, "")
		return m, nil
	}

	var cmd tea.Cmd
	m.unassigned, cmd = m.unassigned.Update(msg)
	return m, cmd
}

func (m Model) updateGridFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.boardModel.MoveCursor(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.boardModel.MoveCursor(1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.boardModel.MoveCursor(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.boardModel.MoveCursor(0, 1)
		return m, nil

	case key.Matches(msg, m.keys.Drop):
		if m.coordinator.State() == dnd.StateDragging {
			return m.dropOnCursor()
		}
		return m.openDetails()

	case key.Matches(msg, m.keys.Move):
		if m.commandInFlight {
			m.setNotice(constants.NoticeWarning, "A command is still in flight")
			return m, nil
		}
		_, _, cell, ok := m.boardModel.Cursor()
		if !ok || !cell.Occupied() {
			return m, nil
		}
		if err := m.coordinator.BeginDrag(cell.Jobs[0]); err != nil {
			m.setNotice(constants.NoticeWarning, errors.Format(err))
			return m, nil
		}
		m.setNotice(constants.NoticeInfo, "")
		return m, nil

	case key.Matches(msg, m.keys.Details):
		return m.openDetails()

	case key.Matches(msg, m.keys.Delete):
		_, _, cell, ok := m.boardModel.Cursor()
		if !ok || !cell.Occupied() {
			return m, nil
		}
		job := cell.Jobs[0]
		m.jobToDelete = &job
		m.state = constants.StateConfirmDelete
		return m, nil
	}
	return m, nil
}

func (m Model) dropOnCursor() (tea.Model, tea.Cmd) {
	cleaner, slot, cell, ok := m.boardModel.Cursor()
	if !ok {
		// No valid target under the cursor; the drag simply ends.
		m.coordinator.CancelDrag()
		return m, nil
	}
	pending, err := m.coordinator.Drop(dnd.DropTarget{
		CleanerID:    cleaner.CleanerID,
		CleanerName:  cleaner.DisplayName,
		Slot:         slot,
		Date:         m.selectedDate,
		Availability: cell.Availability,
		ExistingJobs: len(cell.Jobs),
	})
	if err != nil {
		m.setNotice(constants.NoticeWarning, errors.Format(err))
		return m, nil
	}
	m.assignForm = &AssignFormModel{}
	m.form = NewAssignForm(m.assignForm, pending)
	m.state = constants.StateConfirmAssign
	return m, m.form.Init()
}

func (m Model) openDetails() (tea.Model, tea.Cmd) {
	_, _, cell, ok := m.boardModel.Cursor()
	if !ok || !cell.Occupied() {
		return m, nil
	}
	m.detailsModel.SetJob(cell.Jobs[0])
	m.state = constants.StateDetails
	return m, nil
}

func (m Model) updateConfirmAssign(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.coordinator.Resolve()
		m.state = constants.StateBoard
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		pending := m.coordinator.Pending()
		if pending == nil || !m.assignForm.Confirmed {
			m.coordinator.Resolve()
			m.state = constants.StateBoard
			return m, tea.Batch(cmds...)
		}
		if m.commandInFlight {
			// Single in-flight command at a time; drop this confirm.
			m.setNotice(constants.NoticeWarning, "A command is still in flight")
			m.coordinator.Resolve()
			m.state = constants.StateBoard
			return m, tea.Batch(cmds...)
		}
		command, err := pending.Command(m.assignForm.Note, m.opts.Location)
		if err != nil {
			m.setNotice(constants.NoticeError, errors.Format(err))
			m.coordinator.Resolve()
			m.state = constants.StateBoard
			return m, tea.Batch(cmds...)
		}
		m.coordinator.Resolve()
		m.commandInFlight = true
		m.state = constants.StateBoard
		m.setNotice(constants.NoticeInfo, "Dispatching…")
		cmds = append(cmds, dispatchCmd(m.client, m.journal, m.opts.Timeout, command, pending.Target.Date, pending.Target.Slot))
	case huh.StateAborted:
		m.coordinator.Resolve()
		m.state = constants.StateBoard
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		job := m.jobToDelete
		m.jobToDelete = nil
		m.state = constants.StateBoard
		if job == nil {
			return m, nil
		}
		if m.commandInFlight {
			m.setNotice(constants.NoticeWarning, "A command is still in flight")
			return m, nil
		}
		m.commandInFlight = true
		m.setNotice(constants.NoticeInfo, "Deleting…")
		return m, deleteCmd(m.client, m.journal, m.opts.Timeout, *job)
	case "n", "N", "esc":
		m.jobToDelete = nil
		m.state = constants.StateBoard
	}
	return m, nil
}

func (m Model) updateDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "e":
			m.state = constants.StateBoard
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.detailsModel, cmd = m.detailsModel.Update(msg)
	return m, cmd
}

func (m Model) changeDate(days int) (tea.Model, tea.Cmd) {
	d, err := time.Parse(constants.DateFormat, m.selectedDate)
	if err != nil {
		return m, nil
	}
	// A date change abandons any in-progress drag; the drop target date
	// would no longer match the payload the operator picked up.
	m.coordinator.CancelDrag()
	m.selectedDate = d.AddDate(0, 0, days).Format(constants.DateFormat)
	m.loading = true
	return m, loadBoardCmd(m.client, m.opts.Timeout, m.selectedDate)
}
