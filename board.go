package main

import "fmt"

// Board owns the stickers and the derived cell index. Sticker
// coordinates are the source of truth; the index is a cache that must
// be rebuilt after any coordinate mutation before it is read.
type Board struct {
	stickers []Sticker
	index    [uCells][vCells]int // cell -> sticker id
}

// NewBoard creates the full sticker set, one per cell, colored by the
// octant of 3D space its patch center starts in. The coloring is a
// deterministic function of the geometry.
func NewBoard() *Board {
	b := &Board{
		stickers: make([]Sticker, 0, uCells*vCells),
	}
	id := 0
	for iu := 0; iu < uCells; iu++ {
		for iv := 0; iv < vCells; iv++ {
			b.stickers = append(b.stickers, Sticker{
				ID:         id,
				Iu:         iu,
				Iv:         iv,
				InitialIu:  iu,
				InitialIv:  iv,
				ColorIndex: octantColor(iu, iv),
			})
			id++
		}
	}
	b.RebuildIndex()
	return b
}

// octantColor maps a cell's initial patch center to a 3-bit sign code
// over the surrounding 3D space: x sign, y sign, z sign.
func octantColor(iu, iv int) int {
	p := cellCenter(iu, iv, 0, 0)
	code := 0
	if p.X < 0 {
		code |= 4
	}
	if p.Y < 0 {
		code |= 2
	}
	if p.Z < 0 {
		code |= 1
	}
	return code
}

// Lookup returns the sticker with the given id, or nil.
func (b *Board) Lookup(id int) *Sticker {
	if id < 0 || id >= len(b.stickers) {
		return nil
	}
	return &b.stickers[id]
}

// CellAt returns the sticker currently occupying a cell, or nil for
// an out-of-range coordinate. Callers must have rebuilt the index
// since the last coordinate mutation.
func (b *Board) CellAt(iu, iv int) *Sticker {
	if iu < 0 || iu >= uCells || iv < 0 || iv >= vCells {
		return nil
	}
	return b.Lookup(b.index[iu][iv])
}

// RebuildIndex recomputes the cell -> sticker mapping from the
// stickers' own coordinates in one pass.
func (b *Board) RebuildIndex() {
	for i := range b.stickers {
		s := &b.stickers[i]
		b.index[s.Iu][s.Iv] = s.ID
	}
	if debugChecks {
		b.assertBijection()
	}
}

// assertBijection verifies one sticker per cell. Ring moves are exact
// bijections so this can only fire on a programming error.
func (b *Board) assertBijection() {
	var seen [uCells * vCells]bool
	for iu := 0; iu < uCells; iu++ {
		for iv := 0; iv < vCells; iv++ {
			id := b.index[iu][iv]
			s := b.Lookup(id)
			if s == nil || s.Iu != iu || s.Iv != iv {
				panic(fmt.Sprintf("board index broken at (%d,%d): sticker %d", iu, iv, id))
			}
			if seen[id] {
				panic(fmt.Sprintf("sticker %d occupies two cells", id))
			}
			seen[id] = true
		}
	}
}

// Reset restores every sticker to its creation cell and color and
// rebuilds the index.
func (b *Board) Reset() {
	for i := range b.stickers {
		s := &b.stickers[i]
		s.Iu = s.InitialIu
		s.Iv = s.InitialIv
		s.ColorIndex = octantColor(s.InitialIu, s.InitialIv)
	}
	b.RebuildIndex()
}
