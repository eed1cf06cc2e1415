// Package tui is the terminal front-end: a top-down view of the universe
// painted with the mouse.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cubelife/internal/app"
	"cubelife/internal/render"
	"cubelife/pkg/engine"
)

// cellWidth is the number of terminal columns per grid cell.
const cellWidth = 2

// gridTop and gridLeft locate the first cell inside the bordered grid.
const (
	gridTop  = 2
	gridLeft = 1
)

type tickMsg time.Time

// Model drives a Scene from terminal input.
type Model struct {
	scene    *app.Scene
	interval time.Duration
	attrs    []render.CellAttr
	width    int
	height   int
}

// New returns a model that advances scene one frame per tick at tps.
func New(scene *app.Scene, tps int) Model {
	if tps <= 0 {
		tps = 60
	}
	return Model{scene: scene, interval: time.Second / time.Duration(tps)}
}

// Run starts the program on the alternate screen with mouse tracking.
func Run(scene *app.Scene, tps int) error {
	_, err := tea.NewProgram(New(scene, tps), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init schedules the first frame.
func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles keys, mouse painting and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		m.scene.Update()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	eng := m.scene.Engine()
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ":
		eng.StartStop()
	case "r":
		eng.Trigger(engine.Randomize)
	case "delete", "backspace":
		eng.Trigger(engine.Clear)
	case "up", "+", "=":
		eng.ChangeLifecycle(1)
	case "down", "-":
		eng.ChangeLifecycle(-1)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	eng := m.scene.Engine()
	eng.SetMouse(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		eng.StartPainting()
	case tea.MouseActionRelease:
		eng.StopPainting()
		return
	}
	if x, y, ok := m.cellAt(msg.X, msg.Y); ok {
		m.scene.PaintCell(x, y)
	}
}

// cellAt maps a terminal position to the grid cell drawn there.
func (m Model) cellAt(col, row int) (int, int, bool) {
	size := m.scene.GridSize()
	x := col - gridLeft
	y := row - gridTop
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	x /= cellWidth
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

// View renders the title, the grid and the status bar.
func (m Model) View() string {
	m.attrs = m.scene.Attributes(m.attrs)
	size := m.scene.GridSize()

	var grid strings.Builder
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			a := m.attrs[y*size.W+x]
			g := glyph(a)
			if g == "  " {
				grid.WriteString(g)
				continue
			}
			grid.WriteString(cellStyle(a).Render(g))
		}
		if y < size.H-1 {
			grid.WriteByte('\n')
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("cubelife"),
		gridBorder.Render(grid.String()),
		m.statusBar(),
		m.keyHints(),
	)
}

func (m Model) statusBar() string {
	eng := m.scene.Engine()
	state := statusRunning.Render("RUNNING")
	if !eng.IsRunning() {
		state = statusStopped.Render("STOPPED")
	}
	metric := func(label string, v any) string {
		return metricLabel.Render(label+" ") + metricValue.Render(fmt.Sprint(v))
	}
	return strings.Join([]string{
		state,
		metric("gen", m.scene.Generation()),
		metric("pop", m.scene.Universe().Population()),
		metric("lifecycle", eng.Lifecycle()),
		metric("frame", eng.Frame()),
	}, "  ")
}

func (m Model) keyHints() string {
	hints := [][2]string{
		{"space", "start/stop"}, {"r", "randomize"}, {"del", "clear"},
		{"↑/↓", "lifecycle"}, {"drag", "paint"}, {"q", "quit"},
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyName.Render(h[0]) + keyHint.Render(" "+h[1])
	}
	return strings.Join(parts, "  ")
}
