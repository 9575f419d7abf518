package viz

import "github.com/charmbracelet/lipgloss"

var (
	// Live element cell
	CellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Foreground(lipgloss.Color("#00ccff")).
			Padding(0, 1)

	// Allocated but unused slot
	SlotStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#333344")).
			Foreground(lipgloss.Color("#555566")).
			Padding(0, 1)

	IndexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	StatLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	StatValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))
)
