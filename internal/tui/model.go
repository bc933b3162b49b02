package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hauskeep/dispatch/internal/constants"
	"github.com/hauskeep/dispatch/internal/dnd"
	"github.com/hauskeep/dispatch/internal/grid"
	"github.com/hauskeep/dispatch/internal/history"
	"github.com/hauskeep/dispatch/internal/models"
	"github.com/hauskeep/dispatch/internal/slots"
	"github.com/hauskeep/dispatch/internal/tui/components/board"
	"github.com/hauskeep/dispatch/internal/tui/components/details"
	"github.com/hauskeep/dispatch/internal/tui/components/unassigned"
)

type focusArea int

const (
	focusUnassigned focusArea = iota
	focusGrid
)

// Options configures the board TUI.
type Options struct {
	Catalog  slots.Catalog
	Location *time.Location
	Timeout  time.Duration
	Date     string // initial selected date, YYYY-MM-DD
}

// Model is the dispatch board: the slot grid, the unassigned job list, the
// drag coordinator, and the transient dialog state layered on top.
type Model struct {
	client  backend
	journal *history.Store
	opts    Options

	state constants.SessionState
	keys  KeyMap
	help  help.Model
	focus focusArea

	selectedDate string
	grid         grid.Grid
	unassigned   unassigned.Model
	boardModel   board.Model
	detailsModel details.Model

	coordinator *dnd.Coordinator
	form        *huh.Form
	assignForm  *AssignFormModel
	jobToDelete *models.Job

	loading         bool
	commandInFlight bool
	notice          string
	noticeLevel     constants.NoticeLevel
	quitting        bool
	width           int
	height          int
}

// NewModel builds the board model. The first load is issued from Init.
func NewModel(client backend, journal *history.Store, opts Options) Model {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Date == "" {
		opts.Date = time.Now().In(opts.Location).Format(constants.DateFormat)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = constants.DefaultRequestTimeout
	}
	g := grid.Derive(opts.Date, opts.Catalog, nil, nil)
	return Model{
		client:       client,
		journal:      journal,
		opts:         opts,
		state:        constants.StateBoard,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		focus:        focusUnassigned,
		selectedDate: opts.Date,
		grid:         g,
		unassigned:   unassigned.New(nil, 0, 0),
		boardModel:   board.New(g, 0, 0),
		detailsModel: details.New(0, 0),
		coordinator:  dnd.New(),
		loading:      true,
	}
}

func (m Model) Init() tea.Cmd {
	return loadBoardCmd(m.client, m.opts.Timeout, m.selectedDate)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.PrevDay, m.keys.NextDay, m.keys.Refresh}
	switch {
	case m.coordinator.State() == dnd.StateDragging:
		keys = append(keys, m.keys.Drop, m.keys.Cancel)
	case m.focus == focusUnassigned:
		keys = append(keys, m.keys.PickUp)
	default:
		keys = append(keys, m.keys.Move, m.keys.Details, m.keys.Delete)
	}
	return append(keys, m.keys.Help, m.keys.Quit)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.PrevDay, m.keys.NextDay, m.keys.Refresh, m.keys.Help, m.keys.Quit}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}
	actions := []key.Binding{m.keys.PickUp, m.keys.Move, m.keys.Cancel, m.keys.Details, m.keys.Delete}
	return [][]key.Binding{global, navigation, actions}
}

// SelectedDate returns the date the board currently shows.
func (m Model) SelectedDate() string {
	return m.selectedDate
}

// Notice returns the current transient notice and its severity.
func (m Model) Notice() (string, constants.NoticeLevel) {
	return m.notice, m.noticeLevel
}

func (m *Model) setNotice(level constants.NoticeLevel, text string) {
	m.notice = text
	m.noticeLevel = level
}

func (m *Model) applyGrid(cleaners []models.CleanerAvailability, unassignedJobs []models.Job) {
	m.grid = grid.Derive(m.selectedDate, m.opts.Catalog, cleaners, nil)
	m.boardModel.SetGrid(m.grid)
	m.unassigned.SetJobs(unassignedJobs)
}
