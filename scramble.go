package main

// defaultScrambleMoves is the random-walk length when the config does
// not override it.
const defaultScrambleMoves = 100

// Scramble applies n uniformly random unit ring moves. Each move
// picks a random cell and one of the four unit rotations through it,
// resolves the ring on that axis at the cell's current layout, and
// commits it immediately so the next pick sees the updated board.
// Self-canceling pairs are allowed; this is a pure random walk. Any
// in-flight gesture is cancelled first.
func (e *Engine) Scramble(n int) {
	e.cancelDrag()
	for i := 0; i < n; i++ {
		iu := e.rng.Intn(uCells)
		iv := e.rng.Intn(vCells)
		var axis Axis
		steps := 1
		switch e.rng.Intn(4) {
		case 0:
			axis = AxisLongitudinal
		case 1:
			axis, steps = AxisLongitudinal, -1
		case 2:
			axis = AxisMeridional
		case 3:
			axis, steps = AxisMeridional, -1
		}
		e.board.ApplyRingSteps(axis, RingIndexAt(axis, iu, iv), steps)
		e.board.RebuildIndex()
	}
	e.pushBoardVisuals()
}

// Reset cancels any in-flight gesture, clears the transient
// interaction state and selection, and restores the board to its
// creation layout.
func (e *Engine) Reset() {
	e.cancelDrag()
	e.suppressClick = false
	e.selectedID = -1
	e.board.Reset()
	e.pushBoardVisuals()
	e.deriveMode()
}
