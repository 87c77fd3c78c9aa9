package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/tracker"
)

// Update handles bubbletea messages and drives the tracker.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.pointerDown = false
		m.layout()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := cellCenter(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pointerDown = true
		m.controller.BeginTouch(p)
	case tea.MouseActionMotion:
		if m.pointerDown {
			m.controller.MoveTouch(p)
		}
	case tea.MouseActionRelease:
		if m.pointerDown {
			m.pointerDown = false
			m.controller.EndTouch(p)
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vertical := m.controller.Orientation() == tracker.OrientationVertical

	switch msg.String() {
	case "ctrl+c", "esc", "q", "b":
		m.controller.CancelTouch()
		m.pointerDown = false
		m.finished = true
		return m, tea.Quit
	case "enter", "a", " ":
		m.controller.CancelTouch()
		m.pointerDown = false
		m.confirmed = true
		m.finished = true
		return m, tea.Quit
	case "left", "h":
		if !vertical {
			m.controller.StepBackward()
		}
	case "right", "l":
		if !vertical {
			m.controller.StepForward()
		}
	case "up", "k":
		if vertical {
			m.controller.StepBackward()
		}
	case "down", "j":
		if vertical {
			m.controller.StepForward()
		}
	}
	return m, nil
}

func cellCenter(x, y int) tracker.Point {
	return tracker.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}
