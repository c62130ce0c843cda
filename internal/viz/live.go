package viz

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/oceanfft/internal/ocean"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 300
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the live terminal view of a running simulation.
type Model struct {
	sim           *ocean.Simulator
	cfg           ocean.Config
	dt            float64
	canvas        *Canvas
	running       bool
	asciiView     bool
	showHelp      bool
	heightHistory []float64
	err           error
}

func NewModel(cfg ocean.Config, dt float64) (Model, error) {
	sim, err := ocean.New(cfg)
	if err != nil {
		return Model{}, err
	}
	return Model{
		sim:           sim,
		cfg:           cfg,
		dt:            dt,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		running:       true,
		heightHistory: make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			sim, err := ocean.New(m.cfg)
			if err == nil {
				m.sim = sim
				m.heightHistory = m.heightHistory[:0]
			}
		case "a":
			m.asciiView = !m.asciiView
		case "c":
			m.adjustChoppiness(-0.1)
		case "C":
			m.adjustChoppiness(0.1)
		case "left":
			m.rotateWind(-math.Pi / 18)
		case "right":
			m.rotateWind(math.Pi / 18)
		case "+", "=":
			m.scaleWind(1.1)
		case "-", "_":
			m.scaleWind(0.9)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if err := m.sim.Tick(context.Background(), m.dt); err != nil {
				m.err = err
				return m, tea.Quit
			}
			h := m.sim.Displacement().At(m.sim.Config().Resolution/2, m.sim.Config().Resolution/2).Y
			m.heightHistory = append(m.heightHistory, h)
			if len(m.heightHistory) > historyCapacity {
				m.heightHistory = m.heightHistory[1:]
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) adjustChoppiness(delta float64) {
	c := m.sim.Config().Choppiness + delta
	if c < 0 {
		c = 0
	}
	m.sim.SetChoppiness(c)
}

func (m *Model) rotateWind(angle float64) {
	cfg := m.sim.Config()
	sin, cos := math.Sincos(angle)
	m.sim.SetWind(cfg.WindX*cos-cfg.WindY*sin, cfg.WindX*sin+cfg.WindY*cos)
}

func (m *Model) scaleWind(factor float64) {
	cfg := m.sim.Config()
	m.sim.SetWind(cfg.WindX*factor, cfg.WindY*factor)
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	var field string
	if m.asciiView {
		field = RenderField(m.sim.Displacement(), canvasWidth)
	} else {
		m.canvas.Clear()
		m.canvas.DrawSurface(m.sim.Displacement(), 8)
		field = m.canvas.String()
	}

	cfg := m.sim.Config()
	windSpeed := math.Hypot(cfg.WindX, cfg.WindY)
	status := "running"
	if !m.running {
		status = "paused"
	}

	var stats strings.Builder
	stats.WriteString(headerStyle.Render("ocean") + "\n")
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("status", status)
	row("time", fmt.Sprintf("%.2fs", m.sim.Time()))
	row("ticks", fmt.Sprintf("%d", m.sim.Ticks()))
	row("resolution", fmt.Sprintf("%dx%d", cfg.Resolution, cfg.Resolution))
	row("patch", fmt.Sprintf("%.0fm", cfg.PatchSize))
	row("wind", fmt.Sprintf("%.1f m/s (%.1f, %.1f)", windSpeed, cfg.WindX, cfg.WindY))
	row("choppiness", fmt.Sprintf("%.2f", cfg.Choppiness))

	if len(m.heightHistory) > 1 {
		stats.WriteString(graphStyle.Render(asciigraph.Plot(m.heightHistory, asciigraph.Height(6), asciigraph.Width(30))))
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(field),
		statsStyle.Render(stats.String()),
	)

	help := "space pause · r reset · a view · c/C choppiness · arrows wind dir · +/- wind speed · q quit"
	if m.showHelp {
		help += "\nThe plot tracks the height of the center cell."
	}
	return view + "\n" + helpStyle.Render(help)
}
