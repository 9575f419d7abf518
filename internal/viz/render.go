// Package viz renders array contents and growth traces for the
// terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Cells renders the live elements as bordered cells followed by the
// allocated-but-unused slots, with an index row underneath.
func Cells(items []int, capacity int) string {
	if capacity == 0 {
		return SlotStyle.Render("(no buffer)")
	}

	cells := make([]string, 0, capacity)
	for _, v := range items {
		cells = append(cells, CellStyle.Render(fmt.Sprintf("%d", v)))
	}
	for i := len(items); i < capacity; i++ {
		cells = append(cells, SlotStyle.Render("·"))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	labels := make([]string, 0, capacity)
	for i := 0; i < capacity; i++ {
		w := lipgloss.Width(cells[i])
		labels = append(labels, IndexStyle.Render(center(fmt.Sprintf("%d", i), w)))
	}

	return row + "\n" + strings.Join(labels, "")
}

// Stats renders a one-line length/capacity summary.
func Stats(length, capacity int) string {
	return fmt.Sprintf("%s %s  %s %s",
		StatLabel.Render("len:"), StatValue.Render(fmt.Sprintf("%d", length)),
		StatLabel.Render("cap:"), StatValue.Render(fmt.Sprintf("%d", capacity)))
}

// GrowthPlot draws length and capacity per step as two series.
func GrowthPlot(lengths, caps []float64) string {
	if len(lengths) == 0 {
		return "(no steps)"
	}
	return asciigraph.PlotMany([][]float64{lengths, caps},
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("length (series 0) vs capacity (series 1)"))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}
