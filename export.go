package main

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	exportWidth  = 1000
	exportHeight = 700
)

// exportPNG draws the current projected board to a PNG file, using
// the same camera angle as the terminal view but at image
// resolution. Live fractional offsets are included so the export
// matches what is on screen mid-gesture.
func (r *termRenderer) exportPNG(board *Board, filename string) error {
	// Copy the camera so resizing the projection plane does not
	// disturb the interactive view.
	cam := *r.camera
	cam.SetViewport(exportWidth, exportHeight)

	dc := gg.NewContext(exportWidth, exportHeight)
	dc.SetColor(color.Black)
	dc.Clear()

	r.drawBoundariesPNG(dc, &cam)
	r.drawStickersPNG(dc, &cam, board)

	// Caption in the corner
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.DrawString("torq", 12, exportHeight-12)

	return dc.SavePNG(filename)
}

func (r *termRenderer) drawBoundariesPNG(dc *gg.Context, cam *Camera) {
	dc.SetLineWidth(1.0)
	dc.SetRGB(0.25, 0.25, 0.25)
	for _, path := range r.boundaries {
		prevOK := false
		var prevX, prevY float64
		for _, uv := range path {
			p := surfacePoint(uv.U, uv.V)
			if !cam.Facing(p, surfaceNormal(uv.U, uv.V)) {
				prevOK = false
				continue
			}
			x, y, _, ok := cam.Project(p)
			if !ok {
				prevOK = false
				continue
			}
			if prevOK {
				dc.DrawLine(prevX, prevY, x, y)
				dc.Stroke()
			}
			prevX, prevY = x, y
			prevOK = true
		}
	}
}

func (r *termRenderer) drawStickersPNG(dc *gg.Context, cam *Camera, board *Board) {
	type quad struct {
		px, py   [4]float64
		depth    float64
		color    int
		selected bool
	}
	var quads []quad

	for i := range board.stickers {
		s := &board.stickers[i]
		st := r.patches[s.Iu][s.Iv]
		fu, fv := 0.0, 0.0
		colorIdx := s.ColorIndex
		if st.set {
			fu, fv = st.uFrac, st.vFrac
			colorIdx = st.colorIndex
		}

		u, v := cellParam(s.Iu, s.Iv, fu+0.5, fv+0.5)
		center := surfacePoint(u, v)
		if !cam.Facing(center, surfaceNormal(u, v)) {
			continue
		}

		corners := patchCorners(s.Iu, s.Iv, fu, fv)
		var q quad
		visible := true
		for j, c := range corners {
			x, y, d, ok := cam.Project(c)
			if !ok {
				visible = false
				break
			}
			q.px[j], q.py[j] = x, y
			q.depth += d
		}
		if !visible {
			continue
		}
		q.depth /= 4
		q.color = colorIdx
		q.selected = r.selection.visible && r.selection.iu == s.Iu && r.selection.iv == s.Iv
		quads = append(quads, q)
	}

	// Painter's algorithm: far quads first.
	sort.Slice(quads, func(i, j int) bool { return quads[i].depth > quads[j].depth })

	for _, q := range quads {
		dc.MoveTo(q.px[0], q.py[0])
		for j := 1; j < 4; j++ {
			dc.LineTo(q.px[j], q.py[j])
		}
		dc.ClosePath()
		dc.SetHexColor(palette[q.color])
		dc.FillPreserve()
		if q.selected {
			dc.SetLineWidth(3.0)
			dc.SetRGB(1, 1, 1)
		} else {
			dc.SetLineWidth(1.0)
			dc.SetRGB(0.1, 0.1, 0.1)
		}
		dc.Stroke()
	}
}
