package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"huelife/internal/config"
	"huelife/internal/core"
	"huelife/internal/sim"
)

// uiFPS is the repaint rate. Simulation stepping follows the configured TPS
// through the pacer, so the two rates are independent.
const uiFPS = 30

// historyLen bounds the population series behind the sidebar graph.
const historyLen = 120

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/uiFPS, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// notice holds the transient overlay message for the sidebar. It is the
// sim.Overlay for the terminal backend.
type notice struct {
	text  string
	until time.Time
}

// Show replaces the current message for the given duration.
func (n *notice) Show(text string, d time.Duration) {
	n.text = text
	n.until = time.Now().Add(d)
}

func (n *notice) current() string {
	if n.text == "" || time.Now().After(n.until) {
		return ""
	}
	return n.text
}

type model struct {
	sim    *sim.Sim
	pacer  *core.Pacer
	notice *notice

	termW   int
	termH   int
	history []float64
}

func newModel(cfg config.Config) (model, error) {
	n := &notice{}
	s, err := sim.New(cfg, n)
	if err != nil {
		return model{}, err
	}
	return model{
		sim:     s,
		pacer:   core.NewPacer(cfg.TPS),
		notice:  n,
		history: make([]float64, 0, historyLen),
	}, nil
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.sim.TogglePause()
		case "n":
			if m.sim.Paused() {
				m.sim.StepOnce()
			}
		case "r":
			m.sim.Reseed()
		case "+", "=":
			m.sim.ZoomIn()
		case "-", "_":
			m.sim.ZoomOut()
		}
	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		m.sim.Resize(m.boardPixels())
	case tickMsg:
		now := time.Time(msg)
		for i := m.pacer.Steps(now); i > 0; i-- {
			m.sim.Tick(now)
		}
		m.history = append(m.history, float64(m.sim.Population()))
		if len(m.history) > historyLen {
			m.history = m.history[1:]
		}
		return m, tick()
	}
	return m, nil
}

// boardPixels maps the terminal size to the display surface handed to the
// sim. One surface pixel is two columns by one row, so blocks stay square.
func (m model) boardPixels() (int, int) {
	w := (m.termW - sidebarWidth - 2) / 2
	h := m.termH - 2
	return w, h
}

// Run drives the terminal backend until quit.
func Run(cfg config.Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "terminal ui")
	}
	return nil
}
