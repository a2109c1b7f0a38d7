package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tomaskol/sigflow/internal/models"
)

const (
	canvasCols      = 60
	canvasRows      = 20
	historyCapacity = 400
)

type TickMsg time.Time

// Model is the live-view TUI: a fixed-rate tick advances the signal graph
// one step per frame and redraws the canvas.
type Model struct {
	build   func() models.Stepper
	stepper models.Stepper
	name    string
	dt      float64
	fps     int

	t       float64
	running bool
	canvas  *Canvas
	history []float64
	last    []float64
	lo, hi  float64
}

// NewModel wires a live view around a model stepper. build is re-invoked on
// reset to obtain a fresh graph, since signal-function state cannot be
// rewound.
func NewModel(name string, build func() models.Stepper, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		build:   build,
		stepper: build(),
		name:    name,
		dt:      dt,
		fps:     fps,
		running: true,
		canvas:  NewCanvas(canvasCols, canvasRows),
		history: make([]float64, 0, historyCapacity),
		lo:      0,
		hi:      1,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) reset() {
	m.stepper = m.build()
	m.t = 0
	m.history = m.history[:0]
	m.last = nil
	m.lo, m.hi = 0, 1
}

func (m *Model) step() {
	m.last = m.stepper.Step(m.dt)
	m.t += m.dt
	if len(m.last) == 0 {
		return
	}

	v := m.last[0]
	if v < m.lo {
		m.lo = v
	}
	if v > m.hi {
		m.hi = v
	}
	m.history = append(m.history, v)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// draw renders the primary column as a marker bouncing on a vertical scale,
// with the recent history trailing behind it.
func (m *Model) draw() {
	m.canvas.Clear()
	w, h := m.canvas.Width(), m.canvas.Height()

	span := m.hi - m.lo
	if span == 0 {
		span = 1
	}
	project := func(v float64) int {
		y := h - 2 - int(float64(h-4)*(v-m.lo)/span)
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		return y
	}

	// zero axis, when visible
	if m.lo <= 0 && m.hi >= 0 {
		zy := project(0)
		m.canvas.Line(0, zy, w-1, zy)
	}

	n := len(m.history)
	if n == 0 {
		return
	}
	window := w - 8
	start := 0
	if n > window {
		start = n - window
	}
	prevX, prevY := 0, project(m.history[start])
	for i := start; i < n; i++ {
		x := i - start
		y := project(m.history[i])
		if i > start {
			m.canvas.Line(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
	}
	m.canvas.Dot(prevX, prevY, 2)
}

func (m Model) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.history) > 1 {
		chart := PlotSeries(m.history, m.stepper.Columns()[0], 4, 28)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	for i, col := range m.stepper.Columns() {
		val := 0.0
		if i < len(m.last) {
			val = m.last[i]
		}
		s.WriteString(labelStyle.Render(col) + valueStyle.Render(fmt.Sprintf("%.4f", val)) + "\n")
	}
	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()),
	)
}
