// Package term renders a progress tracker in the terminal. Mouse drags and
// arrow keys drive the same tracker.Controller used by the SDL component.
package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/tracker"
)

// Terminal rows of the layout. View renders exactly these rows so that mouse
// coordinates line up with the indicator frames.
const (
	titleRow     = 0
	positionRow  = 1
	indicatorRow = 3

	minCellWidth     = 4
	maxCellWidth     = 16
	defaultCellWidth = 10
	verticalCellSize = 3 // Columns taken by a vertical indicator
)

// Options configures a terminal tracker.
type Options struct {
	Title        string
	Settings     tracker.Settings
	HidePosition bool
}

// Result is the outcome of a terminal session.
type Result struct {
	Page      int
	Confirmed bool
	Visited   []int // Pages committed by the user, in order
}

// Model is the bubbletea model of a terminal tracker.
type Model struct {
	title        string
	hidePosition bool
	controller   *tracker.Controller
	visited      *[]int

	width       int
	cellWidth   int
	pointerDown bool
	confirmed   bool
	finished    bool
}

// NewModel builds a model around a new controller.
func NewModel(opts Options) Model {
	visited := make([]int, 0)
	m := Model{
		title:        opts.Title,
		hidePosition: opts.HidePosition,
		controller:   tracker.NewController(opts.Settings),
		visited:      &visited,
		cellWidth:    defaultCellWidth,
	}

	m.controller.OnPageChange(func(page int) {
		*m.visited = append(*m.visited, page)
	})
	m.layout()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the underlying tracker.
func (m Model) Controller() *tracker.Controller {
	return m.controller
}

// IsFinished reports whether the user confirmed or cancelled.
func (m Model) IsFinished() bool {
	return m.finished
}

// Result returns the outcome once the program exits.
func (m Model) Result() Result {
	return Result{
		Page:      m.controller.CurrentPage(),
		Confirmed: m.confirmed,
		Visited:   append([]int(nil), (*m.visited)...),
	}
}

// Run starts a full-screen program and blocks until the user confirms or
// cancels.
func Run(opts Options, programOpts ...tea.ProgramOption) (Result, error) {
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, programOpts...)
	final, err := tea.NewProgram(NewModel(opts), programOpts...).Run()
	if err != nil {
		return Result{}, err
	}
	return final.(Model).Result(), nil
}

// layout assigns terminal cells to the indicators. Frames use cell
// coordinates; a cell at column x spans [x, x+1).
func (m *Model) layout() {
	count := m.controller.NumberOfPages()

	if m.controller.Orientation() == tracker.OrientationVertical {
		m.controller.Layout(tracker.Rect{
			X:      0,
			Y:      indicatorRow,
			Width:  verticalCellSize,
			Height: float64(count),
		}, 0)
		return
	}

	if m.width > 0 {
		m.cellWidth = min(max(m.width/count, minCellWidth), maxCellWidth)
	}
	m.controller.Layout(tracker.Rect{
		X:      0,
		Y:      indicatorRow,
		Width:  float64(m.cellWidth * count),
		Height: 1,
	}, 0)
}
