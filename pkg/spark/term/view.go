package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/constants"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/locale"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/tracker"
)

// View renders the current state of the model.
func (m Model) View() string {
	rows := make([]string, indicatorRow)
	rows[titleRow] = titleStyle.Render(m.title)
	if !m.hidePosition {
		rows[positionRow] = positionStyle.Render(locale.StepPosition(m.controller.CurrentPage(), m.controller.NumberOfPages()))
	}

	if m.controller.Orientation() == tracker.OrientationVertical {
		rows = append(rows, m.verticalRows()...)
	} else {
		rows = append(rows, m.horizontalRows()...)
	}

	rows = append(rows, "", helpStyle.Render(m.help()))
	return strings.Join(rows, "\n")
}

func (m Model) horizontalRows() []string {
	cell := lipgloss.NewStyle().Width(m.cellWidth).Align(lipgloss.Center)

	var glyphs, labels []string
	for page := 0; page < m.controller.NumberOfPages(); page++ {
		glyph, style := m.glyph(page)
		glyphs = append(glyphs, cell.Render(style.Render(glyph)))
		labels = append(labels, cell.Render(m.labelStyle(page).Render(truncate(m.controller.Label(page), m.cellWidth-1))))
	}

	return []string{
		lipgloss.JoinHorizontal(lipgloss.Top, glyphs...),
		lipgloss.JoinHorizontal(lipgloss.Top, labels...),
	}
}

func (m Model) verticalRows() []string {
	cell := lipgloss.NewStyle().Width(verticalCellSize).Align(lipgloss.Center)

	rows := make([]string, 0, m.controller.NumberOfPages())
	for page := 0; page < m.controller.NumberOfPages(); page++ {
		glyph, style := m.glyph(page)
		rows = append(rows, cell.Render(style.Render(glyph))+" "+m.labelStyle(page).Render(m.controller.Label(page)))
	}
	return rows
}

func (m Model) glyph(page int) (string, lipgloss.Style) {
	ind, _ := m.controller.Indicator(page)
	switch {
	case !m.controller.IsEnabled():
		return constants.DisabledGlyph, disabledStyle
	case ind.Highlighted:
		return constants.TargetGlyph, targetStyle
	case page == m.controller.CurrentPage():
		return constants.CurrentGlyph, currentStyle
	case m.controller.IsCompleted(page):
		return constants.CheckGlyph, completedStyle
	default:
		return constants.PendingGlyph, pendingStyle
	}
}

func (m Model) labelStyle(page int) lipgloss.Style {
	ind, _ := m.controller.Indicator(page)
	if page == m.controller.CurrentPage() || ind.Highlighted {
		return activeLabelStyle
	}
	return labelStyle
}

func (m Model) help() string {
	return fmt.Sprintf("enter %s   esc %s",
		locale.Localize(locale.MessageHelpConfirm, nil),
		locale.Localize(locale.MessageHelpBack, nil))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
