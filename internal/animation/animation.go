// Package animation implements the floor transforms that rearrange a level
// while it is being played. An animation is stepped once per frame and
// mutates the level in place; steps are gated by wall-clock time so the
// animation speed does not depend on the frame rate.
package animation

import (
	"github.com/vovakirdan/tui-memoris/internal/audio"
	"github.com/vovakirdan/tui-memoris/internal/level"
)

// Animation is a floor transform in progress.
type Animation interface {
	// RenderStep advances the animation if its step interval elapsed, then
	// draws the floor.
	RenderStep(ctx Context, lvl *level.Level, floor int)
	// Finished reports whether the transform completed. A finished
	// animation must not be stepped again.
	Finished() bool
	Name() string
}

// Context carries what one frame hands to an animation.
type Context struct {
	// Now is the clock reading of the frame in milliseconds.
	Now    int64
	Draw   level.DrawFunc
	Sounds audio.Player
}

func (c Context) draw(lvl *level.Level, floor int) {
	if c.Draw != nil {
		lvl.Display(floor, c.Draw)
	}
}

func (c Context) play(cue audio.Cue) {
	if c.Sounds != nil {
		c.Sounds.Play(cue)
	}
}

// stepper is the time-gated step counter shared by every animation.
type stepper struct {
	step     int
	last     int64
	interval int64
	finished bool
}

// ready reports whether enough time passed since the last step.
func (s *stepper) ready(now int64) bool {
	if s.finished {
		panic("animation: step requested on a finished animation")
	}
	return now-s.last >= s.interval
}

func (s *stepper) advance(now int64) {
	s.step++
	s.last = now
}

func (s *stepper) finish() {
	s.finished = true
}

// Step returns the number of steps performed so far.
func (s *stepper) Step() int {
	return s.step
}

func (s *stepper) Finished() bool {
	return s.finished
}

// cellBuffer is a FIFO of cell snapshots taken before they are overwritten.
type cellBuffer struct {
	cells []level.Cell
	head  int
}

func (b *cellBuffer) push(c level.Cell) {
	b.cells = append(b.cells, c)
}

func (b *cellBuffer) pop() level.Cell {
	if b.head >= len(b.cells) {
		panic("animation: cell buffer underflow")
	}
	c := b.cells[b.head]
	b.head++
	return c
}

func (b *cellBuffer) len() int {
	return len(b.cells) - b.head
}

// mustBeEmpty panics if some snapshot was never restored.
func (b *cellBuffer) mustBeEmpty() {
	if n := b.len(); n != 0 {
		panic("animation: cell buffer not drained at the end of the transform")
	}
	b.cells = b.cells[:0]
	b.head = 0
}

// commitPlayer moves the player to after, or keeps it in place when after is
// negative, and reveals the player cell.
func commitPlayer(lvl *level.Level, after int) {
	if after < 0 {
		after = lvl.PlayerCellIndex()
	}
	lvl.SetPlayerCellIndex(after)
	lvl.Cell(after).Show()
}
