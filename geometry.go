package main

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// surfacePoint returns the torus surface point at parametric (u, v).
// u runs around the major circle, v around the tube.
func surfacePoint(u, v float64) r3.Vec {
	ring := majorRadius + minorRadius*math.Cos(v)
	return r3.Vec{
		X: ring * math.Cos(u),
		Y: ring * math.Sin(u),
		Z: minorRadius * math.Sin(v),
	}
}

// surfaceNormal returns the outward unit normal at (u, v).
func surfaceNormal(u, v float64) r3.Vec {
	return r3.Vec{
		X: math.Cos(v) * math.Cos(u),
		Y: math.Cos(v) * math.Sin(u),
		Z: math.Sin(v),
	}
}

// cellParam converts a cell coordinate plus a fractional offset in
// cells into parametric radians.
func cellParam(iu, iv int, uFrac, vFrac float64) (u, v float64) {
	return (float64(iu) + uFrac) * du, (float64(iv) + vFrac) * dv
}

// cellCenter returns the 3D center of a cell's surface patch,
// displaced by a fractional cell offset on each axis.
func cellCenter(iu, iv int, uFrac, vFrac float64) r3.Vec {
	u, v := cellParam(iu, iv, uFrac+0.5, vFrac+0.5)
	return surfacePoint(u, v)
}

// patchCorners returns the four corners of a sticker's quad patch in
// draw order, shrunk slightly toward the center so neighboring
// patches read as separate stickers.
func patchCorners(iu, iv int, uFrac, vFrac float64) [4]r3.Vec {
	const inset = 0.06
	u0, v0 := cellParam(iu, iv, uFrac+inset, vFrac+inset)
	u1, v1 := cellParam(iu, iv, uFrac+1-inset, vFrac+1-inset)
	return [4]r3.Vec{
		surfacePoint(u0, v0),
		surfacePoint(u1, v0),
		surfacePoint(u1, v1),
		surfacePoint(u0, v1),
	}
}

// boundaryPath samples one grid line of the cell lattice as a
// parametric polyline, for the render collaborator's outline pass.
func boundaryPath(axis Axis, index int, samples int) []UV {
	if samples < 2 {
		samples = 2
	}
	path := make([]UV, 0, samples)
	for i := 0; i < samples; i++ {
		t := 2 * math.Pi * float64(i) / float64(samples-1)
		if axis == AxisMeridional {
			path = append(path, UV{U: float64(index) * du, V: t})
		} else {
			path = append(path, UV{U: t, V: float64(index) * dv})
		}
	}
	return path
}

// wrapCell wraps a cell coordinate into [0, n).
func wrapCell(c, n int) int {
	c %= n
	if c < 0 {
		c += n
	}
	return c
}
