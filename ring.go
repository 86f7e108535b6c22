package main

// RingIndexAt resolves the ring a cell belongs to on the given axis.
// A meridional ring is identified by its iu, a longitudinal ring by
// its iv.
func RingIndexAt(axis Axis, iu, iv int) int {
	if axis == AxisMeridional {
		return iu
	}
	return iv
}

// RingMembers returns the ids of every sticker currently in the ring,
// in sticker-slice order. The order is stable between calls as long
// as the board is not mutated.
func (b *Board) RingMembers(axis Axis, ringIndex int) []int {
	var ids []int
	for i := range b.stickers {
		s := &b.stickers[i]
		if inRing(s, axis, ringIndex) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

func inRing(s *Sticker, axis Axis, ringIndex int) bool {
	if axis == AxisMeridional {
		return s.Iu == ringIndex
	}
	return s.Iv == ringIndex
}

// ApplyRingSteps rotates a ring by a whole number of cells. Every
// sticker in the ring has the free coordinate advanced by steps,
// wrapped to the grid; the fixed coordinate is untouched, so ring
// membership survives the move. The operation is a bijection on the
// cells and composes additively: steps a then b equals a+b, and n
// then -n is the identity. Zero steps is a no-op. Callers rebuild the
// board index afterward.
func (b *Board) ApplyRingSteps(axis Axis, ringIndex, steps int) {
	if steps == 0 {
		return
	}
	for i := range b.stickers {
		s := &b.stickers[i]
		if !inRing(s, axis, ringIndex) {
			continue
		}
		if axis == AxisMeridional {
			s.Iv = wrapCell(s.Iv+steps, vCells)
		} else {
			s.Iu = wrapCell(s.Iu+steps, uCells)
		}
	}
}
