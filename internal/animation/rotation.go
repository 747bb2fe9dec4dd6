package animation

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-memoris/internal/audio"
	"github.com/vovakirdan/tui-memoris/internal/level"
)

// Rotation timing: the quadrants slide for RotationSteps steps, then the
// content is relocated on the following step.
const (
	RotationStepInterval int64 = 25
	RotationSteps              = 16
)

// quadrant is one 8x8 corner of a floor, with the direction its content
// travels during a rotation.
type quadrant struct {
	row, col  int
	direction level.Direction
}

var (
	topLeft     = quadrant{0, 0, level.DirectionDown}
	topRight    = quadrant{0, level.HalfLine, level.DirectionLeft}
	bottomLeft  = quadrant{level.HalfLine, 0, level.DirectionRight}
	bottomRight = quadrant{level.HalfLine, level.HalfLine, level.DirectionUp}
)

func (q quadrant) index(floor, row, col int) int {
	return level.IndexOf(floor, q.row+row, q.col+col)
}

// QuarterRotation turns a floor a quarter: the top-left quadrant goes down,
// the bottom-left right, the bottom-right up and the top-right left.
type QuarterRotation struct {
	stepper
	slide       *gween.Tween
	slid        float32
	buffer      cellBuffer
	playerAfter int
}

// NewQuarterRotation creates a rotation animation.
func NewQuarterRotation() *QuarterRotation {
	return &QuarterRotation{
		stepper:     stepper{interval: RotationStepInterval},
		slide:       gween.New(0, level.HalfLine, RotationSteps, ease.InOutQuad),
		playerAfter: -1,
	}
}

func (r *QuarterRotation) Name() string {
	return "quarter-rotation"
}

// RenderStep implements Animation.
func (r *QuarterRotation) RenderStep(ctx Context, lvl *level.Level, floor int) {
	if !r.ready(ctx.Now) {
		ctx.draw(lvl, floor)
		return
	}

	if r.step == 0 {
		ctx.play(audio.CueRotation)
	}
	if r.step < RotationSteps {
		r.move(lvl, floor)
	} else {
		r.rotate(lvl, floor)
		r.buffer.mustBeEmpty()
		commitPlayer(lvl, r.playerAfter)
		r.finish()
	}

	ctx.draw(lvl, floor)
	r.advance(ctx.Now)
}

// move slides every quadrant by the distance covered by the tween since
// the previous step.
func (r *QuarterRotation) move(lvl *level.Level, floor int) {
	current, _ := r.slide.Update(1)
	delta := float64(current) - float64(r.slid)
	r.slid = current

	for _, q := range []quadrant{topLeft, topRight, bottomLeft, bottomRight} {
		for row := 0; row < level.HalfLine; row++ {
			for col := 0; col < level.HalfLine; col++ {
				lvl.Cell(q.index(floor, row, col)).MoveInDirection(q.direction, delta)
			}
		}
	}
}

// rotate relocates the content. The top-left quadrant is saved first since
// it is the first one overwritten.
func (r *QuarterRotation) rotate(lvl *level.Level, floor int) {
	player := lvl.PlayerCellIndex()

	for row := 0; row < level.HalfLine; row++ {
		for col := 0; col < level.HalfLine; col++ {
			r.buffer.push(*lvl.Cell(topLeft.index(floor, row, col)))
		}
	}

	moves := []struct{ from, to quadrant }{
		{topRight, topLeft},
		{bottomRight, topRight},
		{bottomLeft, bottomRight},
	}
	for _, m := range moves {
		for row := 0; row < level.HalfLine; row++ {
			for col := 0; col < level.HalfLine; col++ {
				src := m.from.index(floor, row, col)
				dst := m.to.index(floor, row, col)
				lvl.Cell(dst).CopyContent(*lvl.Cell(src))
				if src == player {
					r.playerAfter = dst
				}
			}
		}
	}

	for row := 0; row < level.HalfLine; row++ {
		for col := 0; col < level.HalfLine; col++ {
			src := topLeft.index(floor, row, col)
			dst := bottomLeft.index(floor, row, col)
			lvl.Cell(dst).CopyContent(r.buffer.pop())
			if src == player {
				r.playerAfter = dst
			}
		}
	}

	start := level.FloorStart(floor)
	for i := start; i < start+level.CellsPerFloor; i++ {
		lvl.Cell(i).ResetPosition()
	}
	r.slid = 0
}
