package animation

import (
	"fmt"

	"github.com/vovakirdan/tui-memoris/internal/audio"
	"github.com/vovakirdan/tui-memoris/internal/level"
)

// Mirror timing. Each fade takes FadeSteps steps of TransparencyStep, so a
// side goes exactly from opaque to invisible and back.
const (
	MirrorStepInterval int64 = 50
	FadeSteps                = 5
	TransparencyStep         = level.TransparencyMax / FadeSteps

	mirrorFadeOutNear = 10
	mirrorSwap        = mirrorFadeOutNear + FadeSteps
	mirrorFadeInNear  = mirrorSwap + 1
	mirrorFadeOutFar  = mirrorFadeInNear + FadeSteps
	mirrorRestore     = mirrorFadeOutFar + FadeSteps
	mirrorFadeInFar   = mirrorRestore + 1
	mirrorIdle        = mirrorFadeInFar + FadeSteps
	MirrorLastStep    = mirrorIdle + 1
)

// Axis selects the reflection axis of a mirror.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// axisLayout describes one axis: which half of the floor is the near side
// and where a position lands once reflected.
type axisLayout struct {
	near   func(row, col int) bool
	mirror func(row, col int) (int, int)
}

var axisLayouts = map[Axis]axisLayout{
	AxisVertical: {
		near:   func(_, col int) bool { return col < level.HalfLine },
		mirror: func(row, col int) (int, int) { return row, level.CellsPerLine - 1 - col },
	},
	AxisHorizontal: {
		near:   func(row, _ int) bool { return row < level.HalfLine },
		mirror: func(row, col int) (int, int) { return level.CellsPerLine - 1 - row, col },
	},
}

// Mirror reflects the content of one floor across an axis. The near side
// fades out, receives the far side content, fades back in; then the far side
// does the same with the snapshots of the near side taken during the first
// swap.
type Mirror struct {
	stepper
	axis         Axis
	layout       axisLayout
	transparency float64
	buffer       cellBuffer
	playerAfter  int
}

// NewMirror creates a mirror animation and plays its cue.
func NewMirror(axis Axis, sounds audio.Player) *Mirror {
	layout, ok := axisLayouts[axis]
	if !ok {
		panic(fmt.Sprintf("animation: unknown mirror axis %d", axis))
	}
	if sounds != nil {
		sounds.Play(audio.CueMirror)
	}
	return &Mirror{
		stepper:      stepper{interval: MirrorStepInterval},
		axis:         axis,
		layout:       layout,
		transparency: level.TransparencyMax,
		playerAfter:  -1,
	}
}

func (m *Mirror) Name() string {
	return "mirror-" + m.axis.String()
}

// Transparency returns the alpha currently applied to the fading side.
func (m *Mirror) Transparency() float64 {
	return m.transparency
}

// RenderStep implements Animation.
func (m *Mirror) RenderStep(ctx Context, lvl *level.Level, floor int) {
	if !m.ready(ctx.Now) {
		ctx.draw(lvl, floor)
		return
	}

	switch s := m.step; {
	case s >= mirrorFadeOutNear && s < mirrorSwap:
		m.fade(lvl, floor, true, -TransparencyStep)
	case s == mirrorSwap:
		m.swap(lvl, floor)
	case s >= mirrorFadeInNear && s < mirrorFadeOutFar:
		m.fade(lvl, floor, true, TransparencyStep)
	case s >= mirrorFadeOutFar && s < mirrorRestore:
		m.fade(lvl, floor, false, -TransparencyStep)
	case s == mirrorRestore:
		m.restore(lvl, floor)
	case s >= mirrorFadeInFar && s < mirrorIdle:
		m.fade(lvl, floor, false, TransparencyStep)
	case s == MirrorLastStep:
		m.buffer.mustBeEmpty()
		commitPlayer(lvl, m.playerAfter)
		m.finish()
	}

	ctx.draw(lvl, floor)
	m.advance(ctx.Now)
}

// side calls fn for each cell of one side of the floor in row-major order.
func (m *Mirror) side(floor int, near bool, fn func(index, row, col int)) {
	for row := 0; row < level.CellsPerLine; row++ {
		for col := 0; col < level.CellsPerLine; col++ {
			if m.layout.near(row, col) == near {
				fn(level.IndexOf(floor, row, col), row, col)
			}
		}
	}
}

func (m *Mirror) fade(lvl *level.Level, floor int, near bool, delta float64) {
	m.transparency += delta
	if m.transparency < level.TransparencyMin {
		m.transparency = level.TransparencyMin
	}
	if m.transparency > level.TransparencyMax {
		m.transparency = level.TransparencyMax
	}
	m.side(floor, near, func(i, _, _ int) {
		lvl.Cell(i).SetTransparency(m.transparency)
	})
}

// swap copies every far cell onto its reflection, keeping the overwritten
// near cells in the buffer.
func (m *Mirror) swap(lvl *level.Level, floor int) {
	player := lvl.PlayerCellIndex()
	m.side(floor, false, func(p, row, col int) {
		r, c := m.layout.mirror(row, col)
		q := level.IndexOf(floor, r, c)

		m.buffer.push(*lvl.Cell(q))
		lvl.Cell(q).CopyContent(*lvl.Cell(p))

		if q == player {
			m.playerAfter = p
		}
		if p == player {
			m.playerAfter = q
		}
	})
}

// restore writes the buffered near cells onto the far side, in the order
// they were saved.
func (m *Mirror) restore(lvl *level.Level, floor int) {
	m.side(floor, false, func(p, _, _ int) {
		lvl.Cell(p).CopyContent(m.buffer.pop())
	})
}
