package unassigned

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hauskeep/dispatch/internal/models"
)

// Item wraps one unassigned job as a draggable source entry.
type Item struct {
	Job models.Job
}

func (i Item) Title() string {
	return fmt.Sprintf("%s — %s", i.Job.CustomerName, i.Job.Address)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %d min | %s", i.Job.Date, i.Job.DurationMin, i.Job.FormatTotal())
	if i.Job.Frequency != "" && i.Job.Frequency != models.FrequencyOnce {
		desc += " | " + string(i.Job.Frequency)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Job.CustomerName }

// Model renders the unassigned job list that drags originate from.
type Model struct {
	list list.Model
}

func New(jobs []models.Job, width, height int) Model {
	l := list.New(toItems(jobs), list.NewDefaultDelegate(), width, height)
	l.Title = "Unassigned Jobs"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

// Selected returns the job under the cursor, or nil when the list is empty.
func (m Model) Selected() *models.Job {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return nil
	}
	job := item.Job
	return &job
}

// Len returns the number of unassigned jobs shown.
func (m Model) Len() int {
	return len(m.list.Items())
}

func (m *Model) SetJobs(jobs []models.Job) {
	m.list.SetItems(toItems(jobs))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func toItems(jobs []models.Job) []list.Item {
	items := make([]list.Item, len(jobs))
	for i, j := range jobs {
		items[i] = Item{Job: j}
	}
	return items
}
