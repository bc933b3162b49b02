package details

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hauskeep/dispatch/internal/models"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

// Model is the read-only job details view opened from an occupied cell.
type Model struct {
	viewport viewport.Model
	job      *models.Job
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.job == nil {
		return "No job selected."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) SetJob(job models.Job) {
	m.job = &job
	m.render()
}

func (m *Model) render() {
	if m.job == nil {
		return
	}
	j := m.job
	var b strings.Builder
	b.WriteString(titleStyle.Render("Booking "+j.ID) + "\n\n")
	writeField(&b, "Customer", j.CustomerName)
	writeField(&b, "Address", j.Address)
	writeField(&b, "Date", j.Date)
	writeField(&b, "Slot", j.Slot())
	writeField(&b, "Cleaner", j.Cleaner())
	writeField(&b, "Duration", fmt.Sprintf("%d min", j.DurationMin))
	writeField(&b, "House size", string(j.HouseSize))
	writeField(&b, "Frequency", string(j.Frequency))
	writeField(&b, "Total", j.FormatTotal())
	writeField(&b, "Status", string(j.Status))
	b.WriteString("\nPress esc to close.")
	m.viewport.SetContent(b.String())
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		value = "—"
	}
	b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
}
