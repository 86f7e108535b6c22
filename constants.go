package main

import (
	"math"
	"time"
)

type Mode int

const (
	ModeIdle Mode = iota
	ModeRingDrag
	ModeOrbit
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeRingDrag:
		return "ring_drag"
	case ModeOrbit:
		return "orbit"
	default:
		return "unknown"
	}
}

// Axis names the two ring directions through any cell. A meridional
// ring shares an iu and rotates iv; a longitudinal ring shares an iv
// and rotates iu.
type Axis int

const (
	AxisMeridional Axis = iota
	AxisLongitudinal
)

func (a Axis) String() string {
	switch a {
	case AxisMeridional:
		return "meridional"
	case AxisLongitudinal:
		return "longitudinal"
	default:
		return "unknown"
	}
}

type PointerKind int

const (
	PointerPrimary PointerKind = iota
	PointerSecondary
	PointerTouch
)

// Grid geometry. The sticker count is fixed for the life of the board.
const (
	uCells = 16
	vCells = 8

	majorRadius = 2.0
	minorRadius = 1.0
)

const (
	du = 2 * math.Pi / uCells
	dv = 2 * math.Pi / vCells
)

// Interaction thresholds, in virtual pixels.
const (
	dragDeadZonePx  = 8.0
	minProjectionPx = 4.0
	orbitDecay      = 120 * time.Millisecond
)

// Terminal cells are taller than wide; the engine works in virtual
// pixels so the dead zone behaves the same in both directions.
const (
	cellPxW = 9.0
	cellPxH = 18.0
)

const numColors = 8

// Octant palette, indexed by the 3-bit sign code of the cell center.
var palette = [numColors]string{
	"#e63946", // +x +y +z
	"#f4a261", // +x +y -z
	"#e9c46a", // +x -y +z
	"#2a9d8f", // +x -y -z
	"#457b9d", // -x +y +z
	"#a8dadc", // -x +y -z
	"#9b5de5", // -x -y +z
	"#f1faee", // -x -y -z
}

// debugChecks turns on the board bijection assertion after every
// index rebuild. Moves are exact bijections so this should never fire.
const debugChecks = false
