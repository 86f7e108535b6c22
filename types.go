package main

// Sticker is the unit of logical identity on the board. The id is
// assigned once at creation and never reused; only the cell
// coordinates and (on reset) the color ever change.
type Sticker struct {
	ID         int
	Iu, Iv     int
	InitialIu  int
	InitialIv  int
	ColorIndex int
}

// UV is a point on the torus parametric grid, in radians.
type UV struct {
	U, V float64
}

// PointerEvent is the uniform input unit the engine dispatches on.
// Mouse buttons and touch contacts all arrive through this shape so
// the state machine never branches on an input-source tag.
type PointerEvent struct {
	ID   int
	Kind PointerKind
	X, Y float64
}

type pointf struct {
	X, Y float64
}

// ringDrag is the transient state of one in-progress ring gesture.
// Before the dead zone is crossed only the anchored fields are set;
// classification fills in the axis, ring index and member snapshot
// exactly once. The whole value is dropped on commit or cancel.
type ringDrag struct {
	pointerID      int
	anchorID       int
	startX, startY float64
	lastX, lastY   float64
	anchorSelected bool

	classified  bool
	axis        Axis
	ringIndex   int
	members     []int
	offsetCells float64
}
