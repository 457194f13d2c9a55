// Package viz renders trajectories in the terminal, including a live
// animated view of the attractor.
package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lorenz63/internal/dynamo"
)

const (
	canvasWidth     = 70
	canvasHeight    = 22
	historyCapacity = 600
	stepsPerTick    = 25
)

// Phase projection window for the butterfly (x horizontal, z vertical).
const (
	xLo, xHi = -25.0, 25.0
	zLo, zHi = -5.0, 55.0
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model animates an integrator over a system, projecting the x-z plane
// onto a braille canvas. Parameters are fixed for the life of the
// view; only pause, reset and quit are interactive.
type Model struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	state      dynamo.State
	initial    dynamo.State
	t, dt      float64
	fps        int
	running    bool
	canvas     *Canvas
	trail      [][2]int
	history    []float64
	paramKeys  []string
	params     map[string]float64
}

func NewModel(dyn dynamo.System, integ dynamo.Integrator, initState []float64, dt float64, fps int) Model {
	params := map[string]float64{}
	if c, ok := dyn.(dynamo.Configurable); ok {
		params = c.Params()
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if fps <= 0 {
		fps = 30
	}

	return Model{
		dyn:        dyn,
		integrator: integ,
		state:      dynamo.State(initState).Clone(),
		initial:    dynamo.State(initState).Clone(),
		t:          0,
		dt:         dt,
		fps:        fps,
		running:    true,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		trail:      make([][2]int, 0, historyCapacity),
		history:    make([]float64, 0, historyCapacity),
		paramKeys:  keys,
		params:     params,
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
			for i := 0; i < stepsPerTick; i++ {
				m.step()
			}
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) reset() {
	m.state = m.initial.Clone()
	m.t = 0
	m.trail = m.trail[:0]
	m.history = m.history[:0]
	m.canvas.Clear()
}

func (m *Model) step() {
	m.state = m.integrator.Step(m.dyn, m.state, m.t, m.dt)
	m.t += m.dt

	px := int((m.state[0] - xLo) / (xHi - xLo) * float64(canvasWidth*2))
	py := int((zHi - m.state[2]) / (zHi - zLo) * float64(canvasHeight*4))
	m.trail = append(m.trail, [2]int{px, py})
	if len(m.trail) > historyCapacity {
		m.trail = m.trail[1:]
	}

	m.history = append(m.history, m.state[0])
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, p := range m.trail {
		m.canvas.Set(p[0], p[1])
	}
}

func (m Model) View() string {
	var stats strings.Builder
	stats.WriteString(headerStyle.Render("Lorenz 63"))
	stats.WriteByte('\n')
	stats.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.3f", m.t)) + "\n")
	stats.WriteString(labelStyle.Render("state") + valueStyle.Render(fmt.Sprintf("[%.4f, %.4f, %.4f]", m.state[0], m.state[1], m.state[2])) + "\n")
	if !m.state.IsValid() {
		stats.WriteString(labelStyle.Render("") + valueStyle.Render("(diverged)") + "\n")
	}
	for _, k := range m.paramKeys {
		stats.WriteString(labelStyle.Render(k) + valueStyle.Render(fmt.Sprintf("%.6f", m.params[k])) + "\n")
	}
	status := "running"
	if !m.running {
		status = "paused"
	}
	stats.WriteString(labelStyle.Render("status") + valueStyle.Render(status) + "\n")

	left := canvasStyle.Render(m.canvas.String())
	right := statsStyle.Render(stats.String())
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	graph := ""
	if len(m.history) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(canvasWidth+30),
			asciigraph.Caption("x vs time"),
		))
	}

	help := helpStyle.Render("space pause · r reset · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, top, graph, help)
}
