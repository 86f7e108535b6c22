package main

import (
	"encoding/json"
	"math"
)

// Snapshot is the deterministic introspection document exposed to
// external test and automation tooling. Field order is fixed by the
// struct, so marshaling the same state twice is byte-identical.
type Snapshot struct {
	Mode     string            `json:"mode"`
	Geometry GeometrySnapshot  `json:"geometry"`
	Selected *SelectedSnapshot `json:"selected"`
	Input    InputSnapshot     `json:"input"`
	Board    []CellSnapshot    `json:"board"`
}

type GeometrySnapshot struct {
	MajorRadius float64 `json:"majorRadius"`
	MinorRadius float64 `json:"minorRadius"`
	UCells      int     `json:"uCells"`
	VCells      int     `json:"vCells"`
	DU          float64 `json:"du"`
	DV          float64 `json:"dv"`
}

type SelectedSnapshot struct {
	ID int `json:"id"`
	Iu int `json:"iu"`
	Iv int `json:"iv"`
}

type InputSnapshot struct {
	ActivePointers int           `json:"activePointers"`
	Mode           string        `json:"mode"`
	Drag           *DragSnapshot `json:"drag"`
}

// DragSnapshot describes an in-progress ring drag. Axis is empty
// until the gesture crosses the dead zone and gets classified.
type DragSnapshot struct {
	AnchorID    int     `json:"anchorId"`
	Axis        string  `json:"axis"`
	OffsetCells float64 `json:"offsetCells"`
}

type CellSnapshot struct {
	Iu         int `json:"iu"`
	Iv         int `json:"iv"`
	StickerID  int `json:"stickerId"`
	ColorIndex int `json:"colorIndex"`
}

// Snapshot captures the full logical and interaction state. The
// board dump is ordered iu-major so byte-level comparison works.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Mode: e.mode.String(),
		Geometry: GeometrySnapshot{
			MajorRadius: majorRadius,
			MinorRadius: minorRadius,
			UCells:      uCells,
			VCells:      vCells,
			DU:          du,
			DV:          dv,
		},
	}

	if s := e.board.Lookup(e.selectedID); s != nil {
		snap.Selected = &SelectedSnapshot{ID: s.ID, Iu: s.Iu, Iv: s.Iv}
	}

	active := len(e.touches)
	if e.primaryDown {
		active++
	}
	if e.secondaryHeld {
		active++
	}
	snap.Input = InputSnapshot{
		ActivePointers: active,
		Mode:           e.mode.String(),
	}
	if d := e.drag; d != nil {
		ds := &DragSnapshot{AnchorID: d.anchorID}
		if d.classified {
			ds.Axis = d.axis.String()
			ds.OffsetCells = math.Round(d.offsetCells*10000) / 10000
		}
		snap.Input.Drag = ds
	}

	snap.Board = make([]CellSnapshot, 0, uCells*vCells)
	for iu := 0; iu < uCells; iu++ {
		for iv := 0; iv < vCells; iv++ {
			s := e.board.CellAt(iu, iv)
			if s == nil {
				continue
			}
			snap.Board = append(snap.Board, CellSnapshot{
				Iu:         iu,
				Iv:         iv,
				StickerID:  s.ID,
				ColorIndex: s.ColorIndex,
			})
		}
	}
	return snap
}

// SnapshotJSON renders the snapshot as indented JSON.
func (e *Engine) SnapshotJSON() ([]byte, error) {
	return json.MarshalIndent(e.Snapshot(), "", "  ")
}

// Advance runs one no-op simulation tick and returns the resulting
// snapshot. The tick only refreshes mode and visuals, so external
// tooling can assert determinism without a real clock or renderer.
func (e *Engine) Advance() Snapshot {
	e.Tick()
	return e.Snapshot()
}
