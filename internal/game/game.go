// Package game runs a serie of Memoris levels: the watch/hide cycle, player
// movement and cell effects, the countdown and the floor transforms started
// by trigger cells. It contains pure logic; the platform feeds it input and
// clock readings and displays what it renders.
package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-memoris/internal/animation"
	"github.com/vovakirdan/tui-memoris/internal/audio"
	"github.com/vovakirdan/tui-memoris/internal/config"
	"github.com/vovakirdan/tui-memoris/internal/core"
	"github.com/vovakirdan/tui-memoris/internal/level"
	"github.com/vovakirdan/tui-memoris/internal/registry"
)

// Phase is the current stage of a level.
type Phase int

const (
	PhaseWatching Phase = iota
	PhasePlaying
	PhaseAnimating
	PhaseLevelWon
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseWatching:
		return "watching"
	case PhasePlaying:
		return "playing"
	case PhaseAnimating:
		return "animating"
	case PhaseLevelWon:
		return "level won"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// levelWonDelay is how long the completed level stays on screen before the
// next one is loaded.
const levelWonDelay int64 = 1500

// Source provides the levels of a serie in play order.
type Source interface {
	Count() int
	Level(i int) (*level.Level, error)
	LevelID(i int) string
	SerieName() string
}

// Outcome is the result of one finished attempt at a level.
type Outcome struct {
	LevelID string
	Serie   string
	Won     bool
	Elapsed time.Duration
	Stars   int
	Lives   int
}

func init() {
	registry.Register(level.CellVerticalMirror, "vertical mirror", func(s audio.Player) animation.Animation {
		return animation.NewMirror(animation.AxisVertical, s)
	})
	registry.Register(level.CellHorizontalMirror, "horizontal mirror", func(s audio.Player) animation.Animation {
		return animation.NewMirror(animation.AxisHorizontal, s)
	})
	registry.Register(level.CellQuarterRotation, "quarter rotation", func(audio.Player) animation.Animation {
		return animation.NewQuarterRotation()
	})
}

// Game is one play session over a serie.
type Game struct {
	source Source
	cfg    config.GameplayConfig
	sounds audio.Player

	index int
	lvl   *level.Level
	phase Phase

	paused    bool
	started   bool
	lastNow   int64
	watchLeft int64
	wonLeft   int64
	remaining int64 // -1 when the level has no time limit
	elapsed   int64

	anim      animation.Animation
	animFloor int

	stars int
	lives int

	outcome     Outcome
	haveOutcome bool

	view    floorView
	screenW int
	screenH int
}

// New creates a game over src starting at level start (0-based) and loads
// that level.
func New(src Source, cfg config.GameplayConfig, sounds audio.Player, start int) (*Game, error) {
	if src.Count() == 0 {
		return nil, fmt.Errorf("game: serie %q has no levels", src.SerieName())
	}
	if start < 0 || start >= src.Count() {
		return nil, fmt.Errorf("game: start level %d out of range 1..%d", start+1, src.Count())
	}
	if sounds == nil {
		sounds = audio.Nop{}
	}

	g := &Game{
		source: src,
		cfg:    cfg,
		sounds: sounds,
		lives:  cfg.Lives,
	}
	rc := core.DefaultConfig()
	g.SetScreenSize(rc.ScreenW, rc.ScreenH)
	if err := g.load(start); err != nil {
		return nil, err
	}
	return g, nil
}

// load reads level i and starts watching it.
func (g *Game) load(i int) error {
	lvl, err := g.source.Level(i)
	if err != nil {
		return fmt.Errorf("game: load level %d: %w", i+1, err)
	}

	g.index = i
	g.lvl = lvl
	g.phase = PhaseWatching
	g.paused = false
	g.anim = nil
	g.stars = 0
	g.elapsed = 0
	g.watchLeft = int64(g.cfg.WatchingTimeMs)
	g.remaining = -1
	if limit := lvl.TimeLimit(); limit > 0 {
		g.remaining = limit.Milliseconds()
	}
	lvl.ShowAllCells()
	return nil
}

// Restart reloads the current level with a fresh set of lives.
func (g *Game) Restart() error {
	g.lives = g.cfg.Lives
	return g.load(g.index)
}

// SetScreenSize updates the render target dimensions.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Level returns the level being played.
func (g *Game) Level() *level.Level {
	return g.lvl
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Index returns the 0-based index of the current level in the serie.
func (g *Game) Index() int {
	return g.index
}

// Step advances the game to clock reading now (milliseconds).
func (g *Game) Step(in core.InputFrame, now int64) core.StepResult {
	var dt int64
	if g.started {
		dt = now - g.lastNow
	}
	g.started = true
	g.lastNow = now

	if in.Has(core.ActionRestart) && g.phase != PhaseWon {
		if err := g.Restart(); err != nil {
			g.lose()
		}
		return core.StepResult{State: g.State()}
	}

	wasPaused := g.paused
	if in.Has(core.ActionPause) && g.pausable() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	if wasPaused {
		// time spent paused does not count
		dt = 0
	}

	switch g.phase {
	case PhaseWatching:
		g.watchLeft -= dt
		if g.watchLeft <= 0 {
			g.lvl.HideAllCellsExceptDeparture()
			g.sounds.Play(audio.CueHideLevel)
			g.phase = PhasePlaying
		}

	case PhasePlaying:
		g.elapsed += dt
		if g.remaining >= 0 {
			g.remaining -= dt
			if g.remaining <= 0 {
				g.remaining = 0
				g.lose()
				break
			}
		}
		for _, a := range in.Moves() {
			g.move(directionOf(a))
			if g.phase != PhasePlaying {
				break
			}
		}

	case PhaseAnimating:
		g.anim.RenderStep(animation.Context{Now: now, Draw: g.drawCell, Sounds: g.sounds}, g.lvl, g.animFloor)
		if g.anim.Finished() {
			g.anim = nil
			g.phase = PhasePlaying
		}

	case PhaseLevelWon:
		g.wonLeft -= dt
		if g.wonLeft <= 0 {
			g.advance()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) pausable() bool {
	switch g.phase {
	case PhaseWatching, PhasePlaying, PhaseAnimating:
		return true
	}
	return false
}

func directionOf(a core.Action) level.Direction {
	switch a {
	case core.ActionUp:
		return level.DirectionUp
	case core.ActionDown:
		return level.DirectionDown
	case core.ActionLeft:
		return level.DirectionLeft
	default:
		return level.DirectionRight
	}
}

// advance loads the next level of the serie, or ends the serie.
func (g *Game) advance() {
	if g.index+1 >= g.source.Count() {
		g.phase = PhaseWon
		return
	}
	if err := g.load(g.index + 1); err != nil {
		g.lose()
	}
}

func (g *Game) winLevel() {
	g.phase = PhaseLevelWon
	g.wonLeft = levelWonDelay
	g.lvl.ShowAllCells()
	g.sounds.Play(audio.CueWin)
	g.record(true)
}

func (g *Game) lose() {
	g.phase = PhaseLost
	g.anim = nil
	g.sounds.Play(audio.CueLose)
	g.record(false)
}

func (g *Game) record(won bool) {
	if g.lvl == nil {
		return
	}
	g.outcome = Outcome{
		LevelID: g.source.LevelID(g.index),
		Serie:   g.source.SerieName(),
		Won:     won,
		Elapsed: time.Duration(g.elapsed) * time.Millisecond,
		Stars:   g.stars,
		Lives:   g.lives,
	}
	g.haveOutcome = true
}

// TakeOutcome returns the result of the last finished attempt, once.
func (g *Game) TakeOutcome() (Outcome, bool) {
	if !g.haveOutcome {
		return Outcome{}, false
	}
	g.haveOutcome = false
	return g.outcome, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:      g.phase.String(),
		Level:      g.index + 1,
		Floor:      g.lvl.PlayerFloor(),
		Stars:      g.stars,
		StarsTotal: g.lvl.StarsAmount(),
		Lives:      g.lives,
		Remaining:  g.remaining,
		Elapsed:    g.elapsed,
		LevelWon:   g.phase == PhaseLevelWon,
		Won:        g.phase == PhaseWon,
		GameOver:   g.phase == PhaseWon || g.phase == PhaseLost,
		Paused:     g.paused,
	}
}
