// Package tui is an interactive terminal explorer for the dynamic
// array: single keys mutate the array and the view shows how the
// buffer grows underneath.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dynarr/internal/vec"
	"github.com/san-kum/dynarr/internal/viz"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)
)

type Model struct {
	arr     *vec.Array[int]
	next    int // value used by the next push/unshift
	lens    []float64
	caps    []float64
	lastOp  string
	lastErr error
}

func NewModel(initialCapacity int) Model {
	m := Model{arr: vec.WithCapacity[int](initialCapacity), next: 1}
	m.record()
	return m
}

func (m *Model) record() {
	m.lens = append(m.lens, float64(m.arr.Len()))
	m.caps = append(m.caps, float64(m.arr.Cap()))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.lastErr = nil
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.arr.Push(m.next)
		m.lastOp = fmt.Sprintf("push %d", m.next)
		m.next++
	case "u":
		m.arr.Unshift(m.next)
		m.lastOp = fmt.Sprintf("unshift %d", m.next)
		m.next++
	case "o":
		v, err := m.arr.Pop()
		if err != nil {
			m.lastErr = err
		} else {
			m.lastOp = fmt.Sprintf("pop -> %d", v)
		}
	case "s":
		v, err := m.arr.Shift()
		if err != nil {
			m.lastErr = err
		} else {
			m.lastOp = fmt.Sprintf("shift -> %d", v)
		}
	default:
		return m, nil
	}

	m.record()
	return m, nil
}

func (m Model) View() string {
	status := m.lastOp
	if m.lastErr != nil {
		status = viz.ErrorStyle.Render(m.lastErr.Error())
	}
	if status == "" {
		status = hintStyle.Render("waiting for input")
	}

	body := titleStyle.Render("dynarr explorer") + "\n\n" +
		viz.Cells(m.arr.Items(), m.arr.Cap()) + "\n\n" +
		viz.Stats(m.arr.Len(), m.arr.Cap()) + "\n" +
		status + "\n\n" +
		viz.GrowthPlot(m.lens, m.caps) + "\n\n" +
		hintStyle.Render("p push · u unshift · o pop · s shift · q quit")

	return panelStyle.Render(body) + "\n"
}

// Run starts the explorer over an empty array with the given initial
// capacity and blocks until the user quits.
func Run(initialCapacity int) error {
	_, err := tea.NewProgram(NewModel(initialCapacity)).Run()
	return err
}
