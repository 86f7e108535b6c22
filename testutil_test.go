package main

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// gridProj is a flat test projection that unrolls the torus: one cell
// step along u maps to pxPerU pixels of x and one step along v to
// pxPerV pixels of y, with no perspective and no occlusion. It makes
// the pixel-to-cell arithmetic of a drag exact.
type gridProj struct {
	pxPerU, pxPerV float64
}

func (g gridProj) Project(p r3.Vec) (x, y, depth float64, ok bool) {
	u := math.Atan2(p.Y, p.X)
	v := math.Atan2(p.Z, math.Hypot(p.X, p.Y)-majorRadius)
	return u / du * g.pxPerU, v / dv * g.pxPerV, 1, true
}

func (g gridProj) Facing(p, normal r3.Vec) bool { return true }

// newTestEngine wires an engine to the flat projection and a
// controllable clock. The returned *time.Time advances the clock.
func newTestEngine(pxPerU, pxPerV float64) (*Engine, *time.Time) {
	e := NewEngine(NewBoard(), NewCamera(), nil)
	e.proj = gridProj{pxPerU: pxPerU, pxPerV: pxPerV}
	now := time.Unix(1000, 0)
	e.clock = func() time.Time { return now }
	return e, &now
}

// cellPx is the test-projection screen position of a cell's patch
// center.
func cellPx(proj gridProj, iu, iv int) (float64, float64) {
	return (float64(iu) + 0.5) * proj.pxPerU, (float64(iv) + 0.5) * proj.pxPerV
}

// boardMapping captures sticker id -> cell for whole-board
// comparisons.
func boardMapping(b *Board) map[int][2]int {
	m := make(map[int][2]int, len(b.stickers))
	for i := range b.stickers {
		s := &b.stickers[i]
		m[s.ID] = [2]int{s.Iu, s.Iv}
	}
	return m
}
