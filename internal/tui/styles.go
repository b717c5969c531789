package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#25D366")
	colorDim    = lipgloss.Color("241")
	colorError  = lipgloss.Color("203")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	labelStyle   = lipgloss.NewStyle().Bold(true).Width(10)
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#128C7E")).Bold(true)
	tabStyle     = lipgloss.NewStyle().Padding(0, 1).Foreground(colorDim)
	activeTab    = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorAccent).Underline(true)
	statusOK     = lipgloss.NewStyle().Foreground(colorAccent)
	statusErr    = lipgloss.NewStyle().Foreground(colorError)
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)
