package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func primaryAt(x, y float64) PointerEvent {
	return PointerEvent{ID: 0, Kind: PointerPrimary, X: x, Y: y}
}

func touchAt(id int, x, y float64) PointerEvent {
	return PointerEvent{ID: id, Kind: PointerTouch, X: x, Y: y}
}

// beginClassifiedDrag presses on cell (2,1) and drags just past the
// dead zone so the gesture locks onto the longitudinal axis with a
// zero offset. The projection is 10px per cell on both axes.
func beginClassifiedDrag(t *testing.T, e *Engine) (anchorID int) {
	t.Helper()
	ax, ay := cellPx(gridProj{pxPerU: 10, pxPerV: 10}, 2, 1)
	e.PointerDown(primaryAt(ax, ay))
	require.NotNil(t, e.drag)
	anchorID = e.drag.anchorID
	require.Equal(t, e.board.CellAt(2, 1).ID, anchorID)

	e.PointerMove(primaryAt(ax+9, ay))
	require.True(t, e.drag.classified)
	require.Equal(t, AxisLongitudinal, e.drag.axis)
	require.Equal(t, 1, e.drag.ringIndex)
	require.InDelta(t, 0, e.drag.offsetCells, 1e-9)
	return anchorID
}

func TestDragCommit_RoundsHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		name      string
		movePx    float64 // horizontal travel after classification
		wantSteps int
	}{
		{"under half commits nothing", 4.9, 0},
		{"over half commits one", 5.1, 1},
		{"exact negative half rounds away", -15, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := newTestEngine(10, 10)
			before := boardMapping(e.board)
			anchorID := beginClassifiedDrag(t, e)

			x := 25.0 + 9 + tc.movePx
			e.PointerMove(primaryAt(x, 15))
			require.InDelta(t, tc.movePx/10, e.drag.offsetCells, 1e-9)
			e.PointerUp(primaryAt(x, 15))

			require.Nil(t, e.drag)
			require.Equal(t, ModeIdle, e.Mode())

			anchor := e.board.Lookup(anchorID)
			require.Equal(t, wrapCell(2+tc.wantSteps, uCells), anchor.Iu)
			require.Equal(t, 1, anchor.Iv)
			if tc.wantSteps == 0 {
				require.Equal(t, before, boardMapping(e.board))
			} else {
				require.NotEqual(t, before, boardMapping(e.board))
			}
		})
	}
}

func TestDragAxis_ImmutableAfterClassification(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	beginClassifiedDrag(t, e)

	// A hard vertical swing after lock neither reclassifies nor moves
	// the offset, since it is orthogonal to the locked step direction.
	e.PointerMove(primaryAt(34, 95))
	require.Equal(t, AxisLongitudinal, e.drag.axis)
	require.InDelta(t, 0, e.drag.offsetCells, 1e-9)

	// Horizontal motion still accumulates from the anchor's ring.
	e.PointerMove(primaryAt(44, 95))
	require.InDelta(t, 1.0, e.drag.offsetCells, 1e-9)
}

func TestDeadZoneTap_TogglesSelectionWithoutMutation(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	before := boardMapping(e.board)
	anchorID := e.board.CellAt(2, 1).ID

	// 3px of travel stays under the 8px dead zone.
	e.PointerDown(primaryAt(25, 15))
	e.PointerMove(primaryAt(28, 15))
	e.PointerUp(primaryAt(28, 15))

	require.Equal(t, anchorID, e.SelectedID())
	require.Equal(t, before, boardMapping(e.board))
	require.Equal(t, ModeIdle, e.Mode())

	// Tapping the already-selected sticker deselects it.
	e.Click(25, 15) // synthesized click from the first release: swallowed
	require.Equal(t, anchorID, e.SelectedID())

	e.PointerDown(primaryAt(25, 15))
	e.PointerUp(primaryAt(25, 15))
	require.Equal(t, -1, e.SelectedID())
}

func TestClickSuppression_ConsumedExactlyOnce(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	anchorID := e.board.CellAt(2, 1).ID

	e.PointerDown(primaryAt(25, 15))
	e.PointerUp(primaryAt(25, 15))
	require.Equal(t, anchorID, e.SelectedID())

	// First synthesized click is swallowed, the next real one counts.
	e.Click(25, 15)
	require.Equal(t, anchorID, e.SelectedID())
	e.Click(25, 15)
	require.Equal(t, -1, e.SelectedID())
}

func TestClickSuppression_ClearedByNextPress(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	anchorID := e.board.CellAt(2, 1).ID

	e.PointerDown(primaryAt(25, 15))
	e.PointerUp(primaryAt(25, 15))
	require.Equal(t, anchorID, e.SelectedID())

	// The synthesized-click window ends at the next press: a click
	// arriving after an unrelated press/release pair on empty space
	// must count.
	e.PointerDown(primaryAt(5000, 5000))
	e.PointerUp(primaryAt(5000, 5000))
	e.Click(25, 15)
	require.Equal(t, -1, e.SelectedID())
}

func TestTwoFingerInterrupt_RevertsDragAndOrbits(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	before := boardMapping(e.board)

	e.PointerDown(touchAt(10, 25, 15))
	require.NotNil(t, e.drag)
	e.PointerMove(touchAt(10, 34, 15)) // classify
	e.PointerMove(touchAt(10, 39, 15)) // offset 0.5, unsnapped
	require.InDelta(t, 0.5, e.drag.offsetCells, 1e-9)

	e.PointerDown(touchAt(11, 80, 40))
	require.Nil(t, e.drag, "second finger must cancel the drag")
	require.Equal(t, ModeOrbit, e.Mode())
	require.Equal(t, before, boardMapping(e.board), "no partial move may commit")
	require.Equal(t, -1, e.SelectedID())

	// Dropping back to one finger ends orbit.
	e.PointerUp(touchAt(11, 80, 40))
	require.Equal(t, ModeIdle, e.Mode())
	e.PointerUp(touchAt(10, 39, 15))
	require.Equal(t, before, boardMapping(e.board))
}

func TestTwoFingerOrbit_TracksCentroid(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	yaw, pitch := e.camera.yaw, e.camera.pitch

	e.PointerDown(touchAt(1, 100, 100))
	e.PointerDown(touchAt(2, 200, 100))
	e.PointerMove(touchAt(1, 100, 100)) // seeds the centroid
	e.PointerMove(touchAt(1, 140, 120))
	require.Equal(t, ModeOrbit, e.Mode())
	require.NotEqual(t, yaw, e.camera.yaw)
	require.NotEqual(t, pitch, e.camera.pitch)

	e.PointerUp(touchAt(1, 140, 120))
	e.PointerUp(touchAt(2, 200, 100))
	require.Nil(t, e.touchCentroid)
	require.Equal(t, ModeIdle, e.Mode())
}

func TestWheelOrbit_DecaysAfterWindow(t *testing.T) {
	e, now := newTestEngine(10, 10)

	e.Wheel(0, 1)
	require.Equal(t, ModeOrbit, e.Mode())

	*now = now.Add(100 * time.Millisecond)
	e.Tick()
	require.Equal(t, ModeOrbit, e.Mode(), "within the 120ms window")

	*now = now.Add(100 * time.Millisecond)
	e.Tick()
	require.Equal(t, ModeIdle, e.Mode(), "decay window expired")
}

func TestModePriority_RingDragBeatsOrbit(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	beginClassifiedDrag(t, e)

	e.PointerDown(PointerEvent{ID: 1, Kind: PointerSecondary, X: 50, Y: 50})
	require.Equal(t, ModeRingDrag, e.Mode(), "an active drag wins the mode arbitration")

	e.PointerUp(primaryAt(34, 15))
	require.Equal(t, ModeOrbit, e.Mode(), "secondary still held after the drag ends")

	e.PointerUp(PointerEvent{ID: 1, Kind: PointerSecondary, X: 50, Y: 50})
	require.Equal(t, ModeIdle, e.Mode())
}

func TestSecondAnchorRejectedWhileDragging(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	anchorID := beginClassifiedDrag(t, e)

	// A second primary press cannot re-anchor the gesture.
	e.PointerDown(primaryAt(55, 35))
	require.Equal(t, anchorID, e.drag.anchorID)
}

func TestReset_CancelsInFlightGesture(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	initial := boardMapping(e.board)

	e.Scramble(20)
	beginClassifiedDrag(t, e)
	e.PointerMove(primaryAt(60, 15))
	require.NotZero(t, e.drag.offsetCells)

	e.Reset()
	require.Nil(t, e.drag)
	require.Equal(t, ModeIdle, e.Mode())
	require.Equal(t, -1, e.SelectedID())
	require.Equal(t, initial, boardMapping(e.board))
}

func TestPickSticker_MissesEmptySpace(t *testing.T) {
	e, _ := newTestEngine(10, 10)
	// Far outside any projected patch center's pick radius.
	e.PointerDown(primaryAt(5000, 5000))
	require.Nil(t, e.drag)
	e.PointerUp(primaryAt(5000, 5000))
	require.Equal(t, -1, e.SelectedID())
}
