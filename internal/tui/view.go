package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hauskeep/dispatch/internal/constants"
	"github.com/hauskeep/dispatch/internal/dnd"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateConfirmAssign:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StateDetails:
		content = docStyle.Render(m.detailsModel.View())
	default:
		content = m.viewBoard()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTitleBar(),
		content,
		m.viewNotice(),
		m.help.View(m),
	)
}

func (m Model) viewTitleBar() string {
	parts := []string{
		titleStyle.Render("hauskeep dispatch"),
		dateStyle.Render(m.selectedDate),
	}
	if m.loading {
		parts = append(parts, loadingStyle.Render("loading…"))
	}
	if m.commandInFlight {
		parts = append(parts, loadingStyle.Render("dispatching…"))
	}
	if payload := m.coordinator.Dragging(); payload != nil {
		parts = append(parts, dragStyle.Render(
			fmt.Sprintf("✥ dragging %s — drop with enter, cancel with esc", payload.Job.CustomerName)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewBoard() string {
	left := m.unassigned.View()
	right := m.boardModel.View()
	if m.focus == focusGrid || m.coordinator.State() == dnd.StateDragging {
		right = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("205")).
			Render(right)
	} else {
		left = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("205")).
			Render(left)
	}
	return docStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
}

func (m Model) viewConfirmDelete() string {
	var who string
	if m.jobToDelete != nil {
		who = fmt.Sprintf("%s @ %s", m.jobToDelete.CustomerName, m.jobToDelete.Slot())
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this booking entirely? This cannot be undone."),
			who,
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewNotice() string {
	if m.notice == "" {
		return ""
	}
	switch m.noticeLevel {
	case constants.NoticeError:
		return dangerStyle.Render(m.notice)
	case constants.NoticeWarning:
		return warningStyle.Render(m.notice)
	default:
		return infoStyle.Render(m.notice)
	}
}
