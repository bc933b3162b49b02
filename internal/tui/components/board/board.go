package board

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hauskeep/dispatch/internal/grid"
	"github.com/hauskeep/dispatch/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(0, 1)

	cleanerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(18)

	availableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Padding(0, 1)

	unavailableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Padding(0, 1)

	unknownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	occupiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Bold(true).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

const cellWidth = 14

// Model renders the cleaner x slot grid and tracks the cell cursor that
// drops land on.
type Model struct {
	grid   grid.Grid
	row    int // cleaner index
	col    int // slot index
	width  int
	height int
}

func New(g grid.Grid, width, height int) Model {
	return Model{grid: g, width: width, height: height}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// SetGrid replaces the rendered grid, clamping the cursor to the new bounds.
func (m *Model) SetGrid(g grid.Grid) {
	m.grid = g
	if m.row >= len(g.Cleaners) {
		m.row = max(0, len(g.Cleaners)-1)
	}
	if m.col >= g.Catalog.Len() {
		m.col = max(0, g.Catalog.Len()-1)
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// MoveCursor shifts the cell cursor by (dRow, dCol), clamped to the grid.
func (m *Model) MoveCursor(dRow, dCol int) {
	rows := len(m.grid.Cleaners)
	cols := m.grid.Catalog.Len()
	if rows == 0 || cols == 0 {
		return
	}
	m.row = clamp(m.row+dRow, 0, rows-1)
	m.col = clamp(m.col+dCol, 0, cols-1)
}

// Cursor returns the (cleaner, slot label, cell) triple under the cursor.
// ok is false when the grid is empty.
func (m Model) Cursor() (cleaner models.CleanerAvailability, slot string, cell grid.Cell, ok bool) {
	if len(m.grid.Cleaners) == 0 || m.grid.Catalog.Len() == 0 {
		return models.CleanerAvailability{}, "", grid.Cell{}, false
	}
	cleaner = m.grid.Cleaners[m.row]
	slot = m.grid.Catalog.At(m.col)
	return cleaner, slot, m.grid.Cell(cleaner.CleanerID, slot), true
}

func (m Model) View() string {
	if len(m.grid.Cleaners) == 0 {
		return emptyStyle.Render("No cleaners reported for " + m.grid.Date + ". Press 'r' to refresh.")
	}

	var b strings.Builder

	header := cleanerStyle.Render("Cleaner")
	for _, label := range m.grid.Catalog.Labels() {
		header += headerStyle.Width(cellWidth).Render(label)
	}
	b.WriteString(header + "\n")

	for r, cleaner := range m.grid.Cleaners {
		name := cleaner.DisplayName
		if cleaner.HasCalendar {
			name += " ◷"
		}
		row := cleanerStyle.Render(name)
		for col, label := range m.grid.Catalog.Labels() {
			cell := m.grid.Cell(cleaner.CleanerID, label)
			row += m.renderCell(cell, r == m.row && col == m.col)
		}
		b.WriteString(row + "\n")
	}
	return b.String()
}

func (m Model) renderCell(cell grid.Cell, underCursor bool) string {
	var text string
	var style lipgloss.Style
	switch {
	case cell.Occupied():
		text = fmt.Sprintf("● %d job(s)", len(cell.Jobs))
		style = occupiedStyle
	case cell.Availability == models.Available:
		text = "· free"
		style = availableStyle
	case cell.Availability == models.Unavailable:
		text = "✕ busy"
		style = unavailableStyle
	default:
		text = "? no data"
		style = unknownStyle
	}
	if underCursor {
		return cursorStyle.Width(cellWidth).Render(text)
	}
	return style.Width(cellWidth).Render(text)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
