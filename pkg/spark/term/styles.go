package term

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9B90F0"))
	positionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	currentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4F3FD9")).Bold(true)
	targetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9B90F0")).Bold(true)
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	disabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	activeLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
