// Package ui is the interactive sticker-entry front-end behind the "ui"
// command. It is a Bubble Tea Model/Update/View program: arrow keys move a
// cursor over the unfolded 54-sticker layout, number keys paint the
// sticker under the cursor, and Enter hands the finished layout to the
// solver.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/behrlich/twophase/internal/cube"
)

var colorKeys = map[string]cube.Color{
	"1": cube.White, "2": cube.Yellow, "3": cube.Red,
	"4": cube.Orange, "5": cube.Blue, "6": cube.Green,
}

var swatchStyle = map[cube.Color]lipgloss.Style{
	cube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	cube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0")),
	cube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	cube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("15")),
	cube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("15")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	faceStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

// faceOrder matches cube.CubieCube.ToColors's U,B,R,F,L,D sticker layout.
var faceOrder = [6]string{"U", "B", "R", "F", "L", "D"}

// Model is the Bubble Tea model for interactive 54-sticker entry and
// solving against a fixed set of tables.
type Model struct {
	tables   *cube.Tables
	stickers [54]cube.Color
	cursor   int
	solution []cube.Move
	err      error
	quitting bool
}

// NewModel returns a Model pre-seeded with the solved cube's stickers, so
// an untouched grid is already a legal (if uninteresting) starting point.
func NewModel(tables *cube.Tables) Model {
	return Model{tables: tables, stickers: cube.NewCubieCube().ToColors()}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up":
		m.cursor = wrap(m.cursor-9, 54)
	case "down":
		m.cursor = wrap(m.cursor+9, 54)
	case "left":
		m.cursor = wrap(m.cursor-1, 54)
	case "right":
		m.cursor = wrap(m.cursor+1, 54)
	case "1", "2", "3", "4", "5", "6":
		m.stickers[m.cursor] = colorKeys[keyMsg.String()]
		m.err = nil
		m.solution = nil
	case "enter":
		m.solve()
	}
	return m, nil
}

func (m *Model) solve() {
	m.err = nil
	m.solution = nil

	c, err := cube.FromColors(m.stickers)
	if err != nil {
		m.err = err
		return
	}

	solution, err := cube.NewSolver(m.tables).Solve(c)
	if err != nil {
		m.err = err
		return
	}
	m.solution = solution
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Cube sticker entry"))
	b.WriteString("\n\n")

	for face := 0; face < 6; face++ {
		b.WriteString(faceStyle.Render(faceOrder[face]) + ": ")
		for row := 0; row < 3; row++ {
			if row > 0 {
				b.WriteString("    ")
			}
			for col := 0; col < 3; col++ {
				idx := face*9 + row*3 + col
				style := swatchStyle[m.stickers[idx]]
				if idx == m.cursor {
					style = style.Reverse(true)
				}
				b.WriteString(style.Render(" " + m.stickers[idx].String() + " "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("arrows move - 1-6 paint W Y R O B G - enter solves - q quits"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	if m.solution != nil {
		b.WriteString(solvedStyle.Render(fmt.Sprintf("Solution (%d moves): %s", len(m.solution), cube.FormatMoves(m.solution))))
		b.WriteString("\n")
	}

	return b.String()
}
