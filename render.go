package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer is the render-collaborator contract the engine draws
// through. Implementations are passive: they remember what to show
// and the shell decides when a frame is actually produced.
type Renderer interface {
	// RenderPatch shows a sticker's quad patch at a fractional cell
	// offset from its home cell.
	RenderPatch(iu, iv int, uFrac, vFrac float64, colorIndex int)
	// RenderBoundaryPath registers a static cell-boundary polyline.
	RenderBoundaryPath(path []UV)
	// RenderSelectionOutline highlights the single selected sticker.
	RenderSelectionOutline(iu, iv int, uFrac, vFrac float64)
	// ClearSelection hides the selection highlight.
	ClearSelection()
}

type nopRenderer struct{}

func (nopRenderer) RenderPatch(int, int, float64, float64, int)       {}
func (nopRenderer) RenderBoundaryPath([]UV)                           {}
func (nopRenderer) RenderSelectionOutline(int, int, float64, float64) {}
func (nopRenderer) ClearSelection()                                   {}

type patchState struct {
	uFrac, vFrac float64
	colorIndex   int
	set          bool
}

type selectionState struct {
	iu, iv       int
	uFrac, vFrac float64
	visible      bool
}

// termRenderer accumulates the engine's draw calls and rasterizes
// them into styled terminal lines on demand.
type termRenderer struct {
	camera     *Camera
	patches    [uCells][vCells]patchState
	boundaries [][]UV
	selection  selectionState
	styles     [numColors]lipgloss.Style
	selStyles  [numColors]lipgloss.Style
	lineStyle  lipgloss.Style
}

func newTermRenderer(camera *Camera) *termRenderer {
	r := &termRenderer{camera: camera}
	for i, hex := range palette {
		r.styles[i] = lipgloss.NewStyle().Background(lipgloss.Color(hex))
		r.selStyles[i] = lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color("#000000"))
	}
	r.lineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	return r
}

func (r *termRenderer) RenderPatch(iu, iv int, uFrac, vFrac float64, colorIndex int) {
	if iu < 0 || iu >= uCells || iv < 0 || iv >= vCells {
		return
	}
	r.patches[iu][iv] = patchState{uFrac: uFrac, vFrac: vFrac, colorIndex: colorIndex, set: true}
}

func (r *termRenderer) RenderBoundaryPath(path []UV) {
	r.boundaries = append(r.boundaries, path)
}

func (r *termRenderer) RenderSelectionOutline(iu, iv int, uFrac, vFrac float64) {
	r.selection = selectionState{iu: iu, iv: iv, uFrac: uFrac, vFrac: vFrac, visible: true}
}

func (r *termRenderer) ClearSelection() {
	r.selection.visible = false
}

type frameCell struct {
	depth    float64
	color    int
	selected bool
	line     bool
}

// Frame rasterizes the board into width x height styled terminal
// lines. Stickers are painted as projected quads with a depth
// buffer; boundary paths show through the inset gaps between
// patches.
func (r *termRenderer) Frame(board *Board, width, height int) []string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	cells := make([][]frameCell, height)
	for y := range cells {
		cells[y] = make([]frameCell, width)
		for x := range cells[y] {
			cells[y][x] = frameCell{depth: math.MaxFloat64, color: -1}
		}
	}

	r.plotBoundaries(cells, width, height)

	for i := range board.stickers {
		s := &board.stickers[i]
		st := r.patches[s.Iu][s.Iv]
		fu, fv := 0.0, 0.0
		color := s.ColorIndex
		if st.set {
			fu, fv = st.uFrac, st.vFrac
			color = st.colorIndex
		}
		selected := r.selection.visible && r.selection.iu == s.Iu && r.selection.iv == s.Iv
		r.plotPatch(cells, width, height, s.Iu, s.Iv, fu, fv, color, selected)
	}

	lines := make([]string, height)
	for y := 0; y < height; y++ {
		var sb strings.Builder
		for x := 0; x < width; x++ {
			c := cells[y][x]
			switch {
			case c.color >= 0 && c.selected:
				sb.WriteString(r.selStyles[c.color].Render("░"))
			case c.color >= 0:
				sb.WriteString(r.styles[c.color].Render(" "))
			case c.line:
				sb.WriteString(r.lineStyle.Render("·"))
			default:
				sb.WriteRune(' ')
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

func (r *termRenderer) plotPatch(cells [][]frameCell, width, height, iu, iv int, fu, fv float64, color int, selected bool) {
	u, v := cellParam(iu, iv, fu+0.5, fv+0.5)
	center := surfacePoint(u, v)
	if !r.camera.Facing(center, surfaceNormal(u, v)) {
		return
	}

	corners := patchCorners(iu, iv, fu, fv)
	var px, py [4]float64
	depth := 0.0
	for i, c := range corners {
		x, y, d, ok := r.camera.Project(c)
		if !ok {
			return
		}
		px[i] = x / cellPxW
		py[i] = y / cellPxH
		depth += d
	}
	depth /= 4

	minX := int(math.Floor(min4(px[0], px[1], px[2], px[3])))
	maxX := int(math.Ceil(max4(px[0], px[1], px[2], px[3])))
	minY := int(math.Floor(min4(py[0], py[1], py[2], py[3])))
	maxY := int(math.Ceil(max4(py[0], py[1], py[2], py[3])))

	for y := minY; y <= maxY; y++ {
		if y < 0 || y >= height {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < 0 || x >= width {
				continue
			}
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if !pointInQuad(fx, fy, px, py) {
				continue
			}
			cell := &cells[y][x]
			if depth < cell.depth {
				cell.depth = depth
				cell.color = color
				cell.selected = selected
				cell.line = false
			}
		}
	}
}

func (r *termRenderer) plotBoundaries(cells [][]frameCell, width, height int) {
	// Boundary dots sit a hair behind the surface so sticker fills
	// win wherever they overlap.
	const boundaryBias = 0.05
	for _, path := range r.boundaries {
		for _, uv := range path {
			p := surfacePoint(uv.U, uv.V)
			if !r.camera.Facing(p, surfaceNormal(uv.U, uv.V)) {
				continue
			}
			sx, sy, d, ok := r.camera.Project(p)
			if !ok {
				continue
			}
			x := int(sx / cellPxW)
			y := int(sy / cellPxH)
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			cell := &cells[y][x]
			if d+boundaryBias < cell.depth {
				cell.depth = d + boundaryBias
				cell.color = -1
				cell.line = true
			}
		}
	}
}

// pointInQuad tests the convex projected quad via its two triangles.
func pointInQuad(x, y float64, px, py [4]float64) bool {
	return pointInTriangle(x, y, px[0], py[0], px[1], py[1], px[2], py[2]) ||
		pointInTriangle(x, y, px[0], py[0], px[2], py[2], px[3], py[3])
}

func pointInTriangle(x, y, x0, y0, x1, y1, x2, y2 float64) bool {
	d0 := (x1-x0)*(y-y0) - (y1-y0)*(x-x0)
	d1 := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
	d2 := (x0-x2)*(y-y2) - (y0-y2)*(x-x2)
	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	return !(hasNeg && hasPos)
}

func min4(a, b, c, d float64) float64 {
	return math.Min(math.Min(a, b), math.Min(c, d))
}

func max4(a, b, c, d float64) float64 {
	return math.Max(math.Max(a, b), math.Max(c, d))
}
