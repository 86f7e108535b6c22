package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

func main() {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	width  int
	height int

	config *Config
	board  *Board
	camera *Camera
	frame  *termRenderer
	engine *Engine

	help       bool
	helpScroll int

	leftDown  bool
	rightDown bool

	errorMessage   string
	successMessage string
}

func initialModel() model {
	config := loadConfig()
	camera := NewCamera()
	frame := newTermRenderer(camera)
	board := NewBoard()
	engine := NewEngine(board, camera, frame)
	if config.InvertOrbit {
		engine.orbitSign = -1
	}

	// Static cell-boundary outlines, registered once.
	for iu := 0; iu < uCells; iu++ {
		frame.RenderBoundaryPath(boundaryPath(AxisMeridional, iu, 48))
	}
	for iv := 0; iv < vCells; iv++ {
		frame.RenderBoundaryPath(boundaryPath(AxisLongitudinal, iv, 96))
	}

	return model{
		config: config,
		board:  board,
		camera: camera,
		frame:  frame,
		engine: engine,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// pointerPos converts a terminal cell position into the engine's
// virtual pixel space.
func (m *model) pointerPos(x, y int) (float64, float64) {
	return float64(x) * cellPxW * m.config.MouseScale,
		float64(y) * cellPxH * m.config.MouseScale
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewH := m.height - 1 // status line
		if viewH < 1 {
			viewH = 1
		}
		m.camera.SetViewport(float64(m.width)*cellPxW, float64(viewH)*cellPxH)
		m.engine.Tick()
		return m, nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "escape", "q", "?":
				m.help = false
				m.helpScroll = 0
			case "j", "down":
				maxScroll := len(helpLines()) - (m.height - 1)
				if maxScroll < 0 {
					maxScroll = 0
				}
				m.helpScroll = clampInt(m.helpScroll+1, 0, maxScroll)
			case "k", "up":
				m.helpScroll = clampInt(m.helpScroll-1, 0, 0x7fffffff)
			default:
				m.help = false
				m.helpScroll = 0
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.help = true
			return m, nil
		case "s":
			m.engine.Scramble(m.config.ScrambleMoves)
			m.successMessage = fmt.Sprintf("Scrambled (%d moves)", m.config.ScrambleMoves)
			m.errorMessage = ""
		case "R":
			m.engine.Reset()
			m.successMessage = "Board reset"
			m.errorMessage = ""
		case "S":
			path := m.config.GetSavePath("torq.png")
			if err := m.frame.exportPNG(m.board, path); err != nil {
				m.errorMessage = err.Error()
				m.successMessage = ""
			} else {
				m.successMessage = "Exported " + path
				m.errorMessage = ""
			}
		case "y":
			data, err := m.engine.SnapshotJSON()
			if err == nil {
				err = copyToClipboard(string(data))
			}
			if err != nil {
				m.errorMessage = err.Error()
				m.successMessage = ""
			} else {
				m.successMessage = "Snapshot copied to clipboard"
				m.errorMessage = ""
			}
		case "esc", "escape":
			m.engine.cancelDrag()
			m.engine.ClearSelection()
		case "h", "left":
			m.engine.Wheel(-1, 0)
		case "l", "right":
			m.engine.Wheel(1, 0)
		case "k", "up":
			m.engine.Wheel(0, -1)
		case "j", "down":
			m.engine.Wheel(0, 1)
		}
		m.engine.Tick()
		return m, nil

	case tea.MouseMsg:
		mx, my := m.pointerPos(msg.X, msg.Y)

		// Wheel notches arrive as press actions with wheel buttons.
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.engine.Wheel(0, -1)
			m.engine.Tick()
			return m, nil
		case tea.MouseButtonWheelDown:
			m.engine.Wheel(0, 1)
			m.engine.Tick()
			return m, nil
		case tea.MouseButtonWheelLeft:
			m.engine.Wheel(-1, 0)
			m.engine.Tick()
			return m, nil
		case tea.MouseButtonWheelRight:
			m.engine.Wheel(1, 0)
			m.engine.Tick()
			return m, nil
		}

		switch msg.Action {
		case tea.MouseActionPress:
			switch msg.Button {
			case tea.MouseButtonLeft:
				m.leftDown = true
				m.engine.PointerDown(PointerEvent{ID: 0, Kind: PointerPrimary, X: mx, Y: my})
			case tea.MouseButtonRight:
				m.rightDown = true
				m.engine.PointerDown(PointerEvent{ID: 1, Kind: PointerSecondary, X: mx, Y: my})
			}
		case tea.MouseActionMotion:
			if m.leftDown {
				m.engine.PointerMove(PointerEvent{ID: 0, Kind: PointerPrimary, X: mx, Y: my})
			}
			if m.rightDown {
				m.engine.PointerMove(PointerEvent{ID: 1, Kind: PointerSecondary, X: mx, Y: my})
			}
		case tea.MouseActionRelease:
			if m.leftDown {
				m.leftDown = false
				m.engine.PointerUp(PointerEvent{ID: 0, Kind: PointerPrimary, X: mx, Y: my})
			}
			if m.rightDown {
				m.rightDown = false
				m.engine.PointerUp(PointerEvent{ID: 1, Kind: PointerSecondary, X: mx, Y: my})
			}
		}
		m.engine.Tick()
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	renderWidth := m.width
	if renderWidth < 1 {
		renderWidth = 1
	}
	renderHeight := m.height - 1 // leave room for status line
	if renderHeight < 1 {
		renderHeight = 1
	}

	lines := m.frame.Frame(m.board, renderWidth, renderHeight)

	var result strings.Builder
	for _, line := range lines {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	mode := strings.ToUpper(m.engine.Mode().String())

	var detail string
	if d := m.engine.drag; d != nil && d.classified {
		detail = fmt.Sprintf(" | %s ring %d, offset %+.2f", d.axis, d.ringIndex, d.offsetCells)
	} else if id := m.engine.SelectedID(); id >= 0 {
		if s := m.board.Lookup(id); s != nil {
			detail = fmt.Sprintf(" | selected sticker %d at (%d,%d)", s.ID, s.Iu, s.Iv)
		}
	}

	status := fmt.Sprintf("Mode: %s%s | drag=twist, right-drag/wheel=orbit, s=scramble, R=reset, S=png, y=copy state, ?=help, q=quit", mode, detail)
	if m.errorMessage != "" {
		status = "ERROR: " + m.errorMessage + " | " + status
	} else if m.successMessage != "" {
		status = m.successMessage + " | " + status
	}
	if m.width > 0 {
		status = runewidth.Truncate(status, m.width, "")
	}
	return status
}

func helpLines() []string {
	return []string{
		"torq Help",
		"=========",
		"",
		"A 16x8 sticker board wrapped around a torus. Drag a sticker to",
		"twist one of the two rings through it; the drag direction picks",
		"the ring, and the twist snaps to whole cells on release.",
		"",
		"Mouse:",
		"------",
		"  left drag        Twist the ring under the pointer",
		"  left click       Select/deselect a sticker",
		"  right drag       Orbit the camera",
		"  wheel            Orbit the camera",
		"",
		"Keys:",
		"-----",
		"  h/j/k/l, arrows  Orbit the camera",
		"  s                Scramble the board",
		"  R                Reset to the initial coloring",
		"  S                Export the current view as PNG",
		"  y                Copy the state snapshot (JSON) to clipboard",
		"  Esc              Cancel gesture / clear selection",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Quit",
		"",
		"Config: ~/.torqrc (save_directory, scramble_moves, mouse_scale,",
		"invert_orbit)",
	}
}

func (m model) helpView() string {
	lines := helpLines()
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	start := clampInt(m.helpScroll, 0, len(lines))
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	var result strings.Builder
	for _, line := range lines[start:end] {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString("j/k=scroll, Esc/q/?=close")
	return result.String()
}
