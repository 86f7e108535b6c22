package main

import (
	"math"
	"math/rand"
	"time"
)

// Engine is the interaction core: it owns the board, the transient
// gesture state and the current interaction mode, and turns the
// uniform pointer-event stream into discrete ring moves. Everything
// runs synchronously on the event loop; nothing here blocks.
type Engine struct {
	board    *Board
	camera   *Camera
	proj     projector
	renderer Renderer
	clock    func() time.Time
	rng      *rand.Rand

	mode          Mode
	drag          *ringDrag
	selectedID    int
	primaryDown   bool
	secondaryHeld bool
	secondaryLast pointf
	touches       map[int]pointf
	touchCentroid *pointf
	lastOrbitAt   time.Time
	suppressClick bool
	orbitSign     float64
}

func NewEngine(board *Board, camera *Camera, renderer Renderer) *Engine {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	return &Engine{
		board:      board,
		camera:     camera,
		proj:       camera,
		renderer:   renderer,
		clock:      time.Now,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		selectedID: -1,
		touches:    make(map[int]pointf),
		mode:       ModeIdle,
		orbitSign:  1,
	}
}

func (e *Engine) Mode() Mode      { return e.mode }
func (e *Engine) SelectedID() int { return e.selectedID }

// ClearSelection drops the selection highlight, if any.
func (e *Engine) ClearSelection() { e.selectedID = -1 }

// deriveMode re-evaluates the interaction mode. Priority: an active
// ring drag wins; otherwise any live orbit input (held secondary
// button, two or more touches, or a wheel notch within the decay
// window) means orbit; otherwise idle.
func (e *Engine) deriveMode() {
	switch {
	case e.drag != nil:
		e.mode = ModeRingDrag
	case e.secondaryHeld || len(e.touches) >= 2 || e.clock().Sub(e.lastOrbitAt) <= orbitDecay:
		e.mode = ModeOrbit
	default:
		e.mode = ModeIdle
	}
}

// PointerDown feeds a press of any pointer kind into the state
// machine. A press also closes the window in which the input layer
// may still synthesize a click for the previous release.
func (e *Engine) PointerDown(ev PointerEvent) {
	e.suppressClick = false
	switch ev.Kind {
	case PointerPrimary:
		e.primaryDown = true
		e.startDrag(ev)
	case PointerSecondary:
		e.secondaryHeld = true
		e.secondaryLast = pointf{X: ev.X, Y: ev.Y}
	case PointerTouch:
		e.touches[ev.ID] = pointf{X: ev.X, Y: ev.Y}
		if len(e.touches) == 1 {
			e.startDrag(ev)
		} else {
			// A second finger always means orbit; an unsnapped drag
			// reverts rather than committing a partial move.
			e.cancelDrag()
			e.touchCentroid = nil
		}
	}
	e.deriveMode()
}

// PointerMove feeds pointer motion into the state machine.
func (e *Engine) PointerMove(ev PointerEvent) {
	switch ev.Kind {
	case PointerSecondary:
		if e.secondaryHeld {
			dx := ev.X - e.secondaryLast.X
			dy := ev.Y - e.secondaryLast.Y
			e.secondaryLast = pointf{X: ev.X, Y: ev.Y}
			e.camera.Rotate(dx*orbitPerPixel, e.orbitSign*dy*orbitPerPixel)
		}
	case PointerTouch:
		e.touches[ev.ID] = pointf{X: ev.X, Y: ev.Y}
		if len(e.touches) >= 2 {
			e.orbitByCentroid()
		} else if e.drag != nil && e.drag.pointerID == ev.ID {
			e.dragMove(ev)
		}
	case PointerPrimary:
		if e.primaryDown && e.drag != nil && e.drag.pointerID == ev.ID {
			e.dragMove(ev)
		}
	}
	e.deriveMode()
}

// PointerUp feeds a release into the state machine and resolves any
// gesture the pointer was driving.
func (e *Engine) PointerUp(ev PointerEvent) {
	switch ev.Kind {
	case PointerPrimary:
		e.primaryDown = false
		if e.drag != nil && e.drag.pointerID == ev.ID {
			e.endDrag()
		}
	case PointerSecondary:
		e.secondaryHeld = false
	case PointerTouch:
		delete(e.touches, ev.ID)
		if len(e.touches) < 2 {
			e.touchCentroid = nil
		}
		if e.drag != nil && e.drag.pointerID == ev.ID {
			e.endDrag()
		}
	}
	e.deriveMode()
}

// Wheel feeds a trackpad/wheel orbit notch in and stamps the decay
// timer that bridges the gaps between wheel events.
func (e *Engine) Wheel(dx, dy float64) {
	e.camera.Rotate(dx*orbitPerNotch, e.orbitSign*dy*orbitPerNotch)
	e.lastOrbitAt = e.clock()
	e.deriveMode()
}

// Click handles a click synthesized by the input layer after a
// release. The one following a handled drag release is swallowed so
// the gesture is never double-counted as a tap.
func (e *Engine) Click(x, y float64) {
	if e.suppressClick {
		e.suppressClick = false
		return
	}
	s := e.pickSticker(x, y)
	if s == nil {
		return
	}
	if e.selectedID == s.ID {
		e.selectedID = -1
	} else {
		e.selectedID = s.ID
	}
}

// Tick re-derives the mode and re-pushes mode-dependent visuals. It
// mutates no board or gesture state and is safe to call any number
// of times between input events.
func (e *Engine) Tick() {
	e.deriveMode()
	if e.drag != nil && e.drag.classified {
		e.pushDragVisuals()
	}
	if s := e.board.Lookup(e.selectedID); s != nil {
		fu, fv := e.memberOffset(s.ID)
		e.renderer.RenderSelectionOutline(s.Iu, s.Iv, fu, fv)
	} else {
		e.renderer.ClearSelection()
	}
}

// startDrag anchors a new ring drag on the sticker under the
// pointer, if any. A new anchor is only accepted once the previous
// gesture has fully ended.
func (e *Engine) startDrag(ev PointerEvent) {
	if e.drag != nil {
		return
	}
	s := e.pickSticker(ev.X, ev.Y)
	if s == nil {
		return
	}
	e.drag = &ringDrag{
		pointerID:      ev.ID,
		anchorID:       s.ID,
		startX:         ev.X,
		startY:         ev.Y,
		lastX:          ev.X,
		lastY:          ev.Y,
		anchorSelected: e.selectedID == s.ID,
	}
}

// dragMove advances an active drag. Before the dead zone is crossed
// it only watches total displacement; the crossing move classifies
// the axis and every later move accumulates fractional cells.
func (e *Engine) dragMove(ev PointerEvent) {
	d := e.drag
	dx := ev.X - d.lastX
	dy := ev.Y - d.lastY
	d.lastX, d.lastY = ev.X, ev.Y

	if !d.classified {
		totX := ev.X - d.startX
		totY := ev.Y - d.startY
		if math.Hypot(totX, totY) <= dragDeadZonePx {
			return
		}
		e.classifyDrag(totX, totY)
		return
	}

	anchor := e.board.Lookup(d.anchorID)
	if anchor == nil {
		// Cannot happen with a fixed sticker count, but a stale drag
		// must never crash the frame loop.
		e.cancelDrag()
		return
	}
	uPos, vPos := e.dragAnchorPos(anchor)
	dir, length, ok := stepScreenVec(e.proj, d.axis, uPos, vPos)
	if !ok || length < 1e-6 {
		return
	}
	d.offsetCells += (dx*dir.X + dy*dir.Y) / length
	e.pushDragVisuals()
}

// classifyDrag fixes the drag's axis and ring once, at the dead-zone
// crossing, and snapshots the ring membership.
func (e *Engine) classifyDrag(totX, totY float64) {
	d := e.drag
	anchor := e.board.Lookup(d.anchorID)
	if anchor == nil {
		e.cancelDrag()
		return
	}
	axis := classifyAxis(e.proj, float64(anchor.Iu), float64(anchor.Iv), totX, totY)
	d.axis = axis
	d.ringIndex = RingIndexAt(axis, anchor.Iu, anchor.Iv)
	d.members = e.board.RingMembers(axis, d.ringIndex)
	d.offsetCells = 0
	d.classified = true
}

// dragAnchorPos is the anchor's live fractional grid position, with
// the running offset applied on the free axis. The per-step screen
// direction is recomputed from here on every move because the
// projection itself rotates as the ring visually turns.
func (e *Engine) dragAnchorPos(anchor *Sticker) (uPos, vPos float64) {
	d := e.drag
	uPos = float64(anchor.Iu)
	vPos = float64(anchor.Iv)
	if d.axis == AxisMeridional {
		vPos += d.offsetCells
	} else {
		uPos += d.offsetCells
	}
	return uPos, vPos
}

// endDrag resolves a released drag: a gesture that never crossed the
// dead zone is a tap that toggles selection; anything else snaps the
// fractional offset to whole cells and commits through the ring
// engine.
func (e *Engine) endDrag() {
	d := e.drag
	e.drag = nil
	e.suppressClick = true

	if !d.classified {
		if d.anchorSelected {
			e.selectedID = -1
		} else {
			e.selectedID = d.anchorID
		}
		e.deriveMode()
		return
	}

	steps := int(math.Round(d.offsetCells))
	if steps != 0 {
		e.board.ApplyRingSteps(d.axis, d.ringIndex, steps)
		e.board.RebuildIndex()
	}
	e.settleMembers(d)
	e.deriveMode()
}

// cancelDrag reverts an in-flight drag without committing anything.
func (e *Engine) cancelDrag() {
	if e.drag == nil {
		return
	}
	d := e.drag
	e.drag = nil
	e.settleMembers(d)
	e.deriveMode()
}

// settleMembers redraws a finished drag's members at their logical
// cells with zero fractional offset.
func (e *Engine) settleMembers(d *ringDrag) {
	for _, id := range d.members {
		s := e.board.Lookup(id)
		if s == nil {
			continue
		}
		e.renderer.RenderPatch(s.Iu, s.Iv, 0, 0, s.ColorIndex)
	}
}

// pushDragVisuals applies the live fractional offset to every ring
// member's displayed patch. The board itself is untouched.
func (e *Engine) pushDragVisuals() {
	d := e.drag
	if d == nil || !d.classified {
		return
	}
	var fu, fv float64
	if d.axis == AxisMeridional {
		fv = d.offsetCells
	} else {
		fu = d.offsetCells
	}
	for _, id := range d.members {
		s := e.board.Lookup(id)
		if s == nil {
			continue
		}
		e.renderer.RenderPatch(s.Iu, s.Iv, fu, fv, s.ColorIndex)
	}
}

// pushBoardVisuals repaints every sticker at its home cell with zero
// offset. Scramble and reset move stickers outside any drag, so the
// renderer's per-cell patch state must be refreshed wholesale or it
// keeps the previous occupants' colors.
func (e *Engine) pushBoardVisuals() {
	for i := range e.board.stickers {
		s := &e.board.stickers[i]
		e.renderer.RenderPatch(s.Iu, s.Iv, 0, 0, s.ColorIndex)
	}
}

// memberOffset returns the live fractional offset of a sticker, or
// zeros when it is not riding the active drag.
func (e *Engine) memberOffset(id int) (fu, fv float64) {
	d := e.drag
	if d == nil || !d.classified {
		return 0, 0
	}
	for _, m := range d.members {
		if m != id {
			continue
		}
		if d.axis == AxisMeridional {
			return 0, d.offsetCells
		}
		return d.offsetCells, 0
	}
	return 0, 0
}

// orbitByCentroid tracks the two-finger centroid frame to frame and
// orbits by its delta.
func (e *Engine) orbitByCentroid() {
	var cx, cy float64
	for _, p := range e.touches {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(e.touches))
	c := pointf{X: cx / n, Y: cy / n}
	if e.touchCentroid != nil {
		e.camera.Rotate((c.X-e.touchCentroid.X)*orbitPerPixel, e.orbitSign*(c.Y-e.touchCentroid.Y)*orbitPerPixel)
	}
	e.touchCentroid = &c
}

// pickSticker finds the front-facing sticker whose projected patch
// center is nearest the screen point, within half a projected cell.
func (e *Engine) pickSticker(x, y float64) *Sticker {
	var best *Sticker
	bestDist := math.MaxFloat64
	for i := range e.board.stickers {
		s := &e.board.stickers[i]
		u, v := cellParam(s.Iu, s.Iv, 0.5, 0.5)
		p := surfacePoint(u, v)
		if !e.proj.Facing(p, surfaceNormal(u, v)) {
			continue
		}
		sx, sy, _, ok := e.proj.Project(p)
		if !ok {
			continue
		}
		dist := math.Hypot(sx-x, sy-y)
		if dist >= bestDist {
			continue
		}
		radius := e.pickRadius(s)
		if dist > radius {
			continue
		}
		best = s
		bestDist = dist
	}
	return best
}

// pickRadius is half the larger of the two projected one-cell steps
// at the sticker, padded a little for fat fingers.
func (e *Engine) pickRadius(s *Sticker) float64 {
	_, merLen, merOK := stepScreenVec(e.proj, AxisMeridional, float64(s.Iu), float64(s.Iv))
	_, lonLen, lonOK := stepScreenVec(e.proj, AxisLongitudinal, float64(s.Iu), float64(s.Iv))
	r := 0.0
	if merOK && merLen > r {
		r = merLen
	}
	if lonOK && lonLen > r {
		r = lonLen
	}
	return r/2 + 2
}
