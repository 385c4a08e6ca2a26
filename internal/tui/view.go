package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"huelife/internal/render"
)

const sidebarWidth = 30

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("222"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m model) View() string {
	if m.termW == 0 || m.termH == 0 {
		return "starting..."
	}
	board := m.renderBoard()
	sidebar := lipgloss.NewStyle().Width(sidebarWidth).PaddingLeft(2).Render(m.renderSidebar())
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, sidebar)
	help := dimStyle.Render("space pause  n step  +- zoom  r reseed  q quit")
	return body + "\n" + help
}

// renderBoard draws the grid as character blocks, two columns per surface
// pixel. The whole board is styled in one pass: live blocks take the hue
// foreground, dead cells show the background gray.
func (m model) renderBoard() string {
	size := m.sim.Size()
	cells := m.sim.Cells()
	cs := m.sim.CellSize()

	on := strings.Repeat("██", cs)
	off := strings.Repeat("  ", cs)

	var b strings.Builder
	for y := 0; y < size.H; y++ {
		var line strings.Builder
		for x := 0; x < size.W; x++ {
			if cells[y*size.W+x] == 1 {
				line.WriteString(on)
			} else {
				line.WriteString(off)
			}
		}
		row := line.String()
		for i := 0; i < cs; i++ {
			if y > 0 || i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(row)
		}
	}

	c := render.AliveColor(m.sim.Hue())
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).
		Background(lipgloss.Color("#1a1a1a"))
	return style.Render(b.String())
}

func (m model) renderSidebar() string {
	snap := m.sim.Snapshot()
	var b strings.Builder
	b.WriteString(titleStyle.Render("huelife") + "\n\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("gen   %d", snap.Generation)) + "\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("pop   %d", snap.Population)) + "\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("grid  %dx%d", snap.Size.W, snap.Size.H)) + "\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("cell  %dpx", snap.CellSize)) + "\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("hue   %.0f", snap.Hue)) + "\n")
	b.WriteString(dimStyle.Render(snap.Strategy) + "\n")
	if snap.Paused {
		b.WriteString(pausedStyle.Render("paused") + "\n")
	}
	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(sidebarWidth-8),
			asciigraph.Caption("population"))
		b.WriteString("\n" + dimStyle.Render(graph) + "\n")
	}
	if msg := m.notice.current(); msg != "" {
		b.WriteString("\n" + noticeStyle.Render(msg) + "\n")
	}
	if err := m.sim.Err(); err != nil {
		b.WriteString("\n" + errStyle.Render(err.Error()) + "\n")
	}
	return b.String()
}
