package animation

import (
	"testing"

	"github.com/vovakirdan/tui-memoris/internal/audio"
	"github.com/vovakirdan/tui-memoris/internal/level"
)

// rotated returns where the content of (row, col) lands after one quarter
// rotation.
func rotated(row, col int) (int, int) {
	const h = level.HalfLine
	switch {
	case row < h && col < h:
		return row + h, col
	case row >= h && col < h:
		return row, col + h
	case row >= h && col >= h:
		return row - h, col
	default:
		return row, col - h
	}
}

func TestRotationSingleStar(t *testing.T) {
	const floor = 0
	lvl := level.New()
	lvl.Cell(level.IndexOf(floor, 0, 0)).Type = level.CellStar

	runToEnd(t, NewQuarterRotation(), lvl, floor, 0, RotationStepInterval)

	for i := level.FloorStart(floor); i < level.FloorStart(floor)+level.CellsPerFloor; i++ {
		expected := level.CellWall
		if i == level.IndexOf(floor, 8, 0) {
			expected = level.CellStar
		}
		if got := lvl.Cell(i).Type; got != expected {
			t.Errorf("cell (%d,%d) = %v, expected %v", level.RowOf(i), level.ColOf(i), got, expected)
		}
	}
}

func TestRotationIsBijection(t *testing.T) {
	const floor = 6
	lvl := patternLevel(floor)
	before := snapshot(lvl, floor)

	runToEnd(t, NewQuarterRotation(), lvl, floor, 0, RotationStepInterval)

	after := snapshot(lvl, floor)
	seen := make(map[int]bool)
	for row := 0; row < level.CellsPerLine; row++ {
		for col := 0; col < level.CellsPerLine; col++ {
			r, c := rotated(row, col)
			dst := r*level.CellsPerLine + c
			if seen[dst] {
				t.Fatalf("(%d,%d) received two cells", r, c)
			}
			seen[dst] = true
			if after[dst] != before[row*level.CellsPerLine+col] {
				t.Fatalf("(%d,%d) -> (%d,%d) = %+v, expected %+v",
					row, col, r, c, after[dst], before[row*level.CellsPerLine+col])
			}
		}
	}
	if len(seen) != level.CellsPerFloor {
		t.Errorf("%d cells received content, expected %d", len(seen), level.CellsPerFloor)
	}
}

func TestRotationFourTimesIsIdentity(t *testing.T) {
	const floor = 9
	lvl := patternLevel(floor)
	before := snapshot(lvl, floor)

	now := int64(0)
	for k := 0; k < 4; k++ {
		now = runToEnd(t, NewQuarterRotation(), lvl, floor, now, RotationStepInterval)
	}

	after := snapshot(lvl, floor)
	for k := range before {
		if after[k] != before[k] {
			t.Fatalf("cell %d = %+v, expected %+v", k, after[k], before[k])
		}
	}
}

func TestRotationFollowsPlayer(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"top left", 2, 3},
		{"top right", 3, 12},
		{"bottom left", 10, 0},
		{"bottom right", 15, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const floor = 1
			lvl := level.New()
			player := level.IndexOf(floor, tt.row, tt.col)
			lvl.Cell(player).Type = level.CellDeparture
			lvl.Cell(player).Hide()
			lvl.SetPlayerCellIndex(player)

			runToEnd(t, NewQuarterRotation(), lvl, floor, 0, RotationStepInterval)

			r, c := rotated(tt.row, tt.col)
			expected := level.IndexOf(floor, r, c)
			if lvl.PlayerCellIndex() != expected {
				t.Errorf("PlayerCellIndex() = %d, expected %d", lvl.PlayerCellIndex(), expected)
			}
			if lvl.PlayerCellType() != level.CellDeparture {
				t.Errorf("PlayerCellType() = %v, expected departure", lvl.PlayerCellType())
			}
			if !lvl.Cell(expected).Visible {
				t.Error("player cell hidden after the rotation")
			}
		})
	}
}

func TestRotationSlideIsCosmetic(t *testing.T) {
	const floor = 0
	lvl := level.New()
	r := NewQuarterRotation()

	var sounds audio.Recorder
	now := int64(0)
	for k := 0; k < RotationSteps/2; k++ {
		now += RotationStepInterval
		r.RenderStep(Context{Now: now, Sounds: &sounds}, lvl, floor)
	}

	tl := lvl.Cell(level.IndexOf(floor, 0, 0)).Offset()
	if tl.X != 0 || tl.Y <= 0 {
		t.Errorf("top-left offset mid-slide = %+v, expected moving down", tl)
	}
	tr := lvl.Cell(level.IndexOf(floor, 0, 15)).Offset()
	if tr.Y != 0 || tr.X >= 0 {
		t.Errorf("top-right offset mid-slide = %+v, expected moving left", tr)
	}
	if lvl.Cell(level.IndexOf(floor, 0, 0)).Type != level.CellWall {
		t.Error("content changed before the last step")
	}

	for !r.Finished() {
		now += RotationStepInterval
		r.RenderStep(Context{Now: now, Sounds: &sounds}, lvl, floor)
	}

	for i := level.FloorStart(floor); i < level.FloorStart(floor)+level.CellsPerFloor; i++ {
		if off := lvl.Cell(i).Offset(); off != (level.Position{}) {
			t.Fatalf("cell %d offset after rotation = %+v, expected zero", i, off)
		}
	}
	if sounds.Count(audio.CueRotation) != 1 {
		t.Errorf("rotation cue played %d times, expected 1", sounds.Count(audio.CueRotation))
	}
	if r.Step() != RotationSteps+1 {
		t.Errorf("Step() = %d, expected %d", r.Step(), RotationSteps+1)
	}
}

func TestRotationFullSlideReachesHalfFloor(t *testing.T) {
	lvl := level.New()
	r := NewQuarterRotation()
	now := int64(0)
	for k := 0; k < RotationSteps; k++ {
		now += RotationStepInterval
		r.RenderStep(Context{Now: now}, lvl, 0)
	}

	off := lvl.Cell(level.IndexOf(0, 15, 0)).Offset()
	if off.X != level.HalfLine || off.Y != 0 {
		t.Errorf("bottom-left offset after the slide = %+v, expected {8 0}", off)
	}
}
