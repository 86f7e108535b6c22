package main

import "math"

// stepScreenVec projects the one-cell step along an axis, taken at a
// live fractional grid position, into screen space. The returned dir
// is a unit vector and length is the step's size in pixels. ok is
// false when either endpoint is unprojectable or the step collapses
// to nothing on screen.
func stepScreenVec(proj projector, axis Axis, uPos, vPos float64) (dir pointf, length float64, ok bool) {
	u0 := (uPos + 0.5) * du
	v0 := (vPos + 0.5) * dv
	u1, v1 := u0, v0
	if axis == AxisMeridional {
		v1 += dv
	} else {
		u1 += du
	}

	x0, y0, _, ok0 := proj.Project(surfacePoint(u0, v0))
	x1, y1, _, ok1 := proj.Project(surfacePoint(u1, v1))
	if !ok0 || !ok1 {
		return pointf{}, 0, false
	}
	dx, dy := x1-x0, y1-y0
	length = math.Hypot(dx, dy)
	if length < 1e-9 {
		return pointf{}, 0, false
	}
	return pointf{X: dx / length, Y: dy / length}, length, true
}

// classifyAxis decides, once per gesture, which ring axis a drag
// direction means. Both candidate axes are projected as one-cell
// steps at the anchor; the drag picks whichever step direction it is
// better aligned with in screen space. When the view angle makes both
// projections degenerate the raw drag components decide instead:
// horizontal-dominant drags mean the longitudinal ring.
func classifyAxis(proj projector, uPos, vPos, dragDX, dragDY float64) Axis {
	merDir, merLen, merOK := stepScreenVec(proj, AxisMeridional, uPos, vPos)
	lonDir, lonLen, lonOK := stepScreenVec(proj, AxisLongitudinal, uPos, vPos)

	merUsable := merOK && merLen >= minProjectionPx
	lonUsable := lonOK && lonLen >= minProjectionPx
	if !merUsable && !lonUsable {
		if math.Abs(dragDX) >= math.Abs(dragDY) {
			return AxisLongitudinal
		}
		return AxisMeridional
	}

	dragLen := math.Hypot(dragDX, dragDY)
	if dragLen < 1e-9 {
		return AxisLongitudinal
	}
	ux, uy := dragDX/dragLen, dragDY/dragLen

	merScore, lonScore := -1.0, -1.0
	if merUsable {
		merScore = math.Abs(ux*merDir.X + uy*merDir.Y)
	}
	if lonUsable {
		lonScore = math.Abs(ux*lonDir.X + uy*lonDir.Y)
	}
	if lonScore >= merScore {
		return AxisLongitudinal
	}
	return AxisMeridional
}
