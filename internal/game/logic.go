package game

import (
	"github.com/vovakirdan/tui-memoris/internal/animation"
	"github.com/vovakirdan/tui-memoris/internal/audio"
	"github.com/vovakirdan/tui-memoris/internal/level"
	"github.com/vovakirdan/tui-memoris/internal/registry"
)

// collectable cells turn empty once the player walks off them.
func collectable(t level.CellType) bool {
	switch t {
	case level.CellStar, level.CellLife, level.CellMoreTime, level.CellLessTime:
		return true
	}
	return false
}

// move tries to move the player one cell and applies the effect of the
// cell it lands on.
func (g *Game) move(d level.Direction) {
	if !g.lvl.AllowPlayerMovement(d) {
		return
	}
	if g.lvl.DetectWalls(d) {
		g.sounds.Play(audio.CueCollision)
		return
	}

	if collectable(g.lvl.PlayerCellType()) {
		g.lvl.EmptyPlayerCell()
	}
	g.lvl.MovePlayer(d)
	g.sounds.Play(audio.CueMove)
	g.enter()
}

// enter applies the effect of the player cell.
func (g *Game) enter() {
	bonus := int64(g.cfg.TimeBonusSec) * 1000

	switch t := g.lvl.PlayerCellType(); t {
	case level.CellStar:
		g.stars++
		g.sounds.Play(audio.CueStar)

	case level.CellLife:
		g.lives++
		g.sounds.Play(audio.CueLife)

	case level.CellDamage:
		g.lives--
		g.sounds.Play(audio.CueDamage)
		if g.lives <= 0 {
			g.lives = 0
			g.lose()
		}

	case level.CellMoreTime:
		if g.remaining >= 0 {
			g.remaining += bonus
		}
		g.sounds.Play(audio.CueMoreTime)

	case level.CellLessTime:
		g.sounds.Play(audio.CueLessTime)
		if g.remaining >= 0 {
			g.remaining -= bonus
			if g.remaining <= 0 {
				g.remaining = 0
				g.lose()
			}
		}

	case level.CellElevatorUp:
		if g.lvl.MovePlayerToNextFloor() {
			g.sounds.Play(audio.CueElevator)
		}

	case level.CellElevatorDown:
		if g.lvl.MovePlayerToPreviousFloor() {
			g.sounds.Play(audio.CueElevator)
		}

	case level.CellArrival:
		if g.stars >= g.lvl.StarsAmount() {
			g.winLevel()
		}

	default:
		if registry.Exists(t) {
			g.startAnimation(t)
		}
	}
}

// startAnimation builds the transform bound to trigger and runs it on the
// player's floor. Only one transform is live at a time.
func (g *Game) startAnimation(trigger level.CellType) {
	if g.anim != nil {
		return
	}
	a, err := registry.Create(trigger, g.sounds)
	if err != nil {
		return
	}
	g.anim = a
	g.animFloor = g.lvl.PlayerFloor()
	g.phase = PhaseAnimating
}

// Animation returns the live transform, or nil.
func (g *Game) Animation() animation.Animation {
	return g.anim
}
