package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-memoris/internal/core"
	"github.com/vovakirdan/tui-memoris/internal/level"
)

const (
	cellWidth = 2 // terminal columns per grid cell
	hudHeight = 2

	boardW = level.CellsPerLine * cellWidth
	boardH = level.CellsPerLine

	// MinScreenW and MinScreenH are the smallest screen the board fits in,
	// border and HUD included.
	MinScreenW = boardW + 2
	MinScreenH = boardH + 2 + hudHeight + 1
)

// Glyph is how one cell type is drawn.
type Glyph struct {
	Text  string
	Color core.Color
}

var glyphs = map[level.CellType]Glyph{
	level.CellWall:             {"██", core.ColorGray},
	level.CellEmpty:            {"  ", core.ColorDefault},
	level.CellDeparture:        {"[]", core.ColorBrightBlue},
	level.CellArrival:          {"()", core.ColorBrightGreen},
	level.CellStar:             {"**", core.ColorBrightYellow},
	level.CellLife:             {"<3", core.ColorBrightRed},
	level.CellDamage:           {"XX", core.ColorRed},
	level.CellMoreTime:         {"+3", core.ColorCyan},
	level.CellLessTime:         {"-3", core.ColorMagenta},
	level.CellElevatorUp:       {"/\\", core.ColorWhite},
	level.CellElevatorDown:     {"\\/", core.ColorWhite},
	level.CellVerticalMirror:   {"||", core.ColorOrange},
	level.CellHorizontalMirror: {"==", core.ColorOrange},
	level.CellQuarterRotation:  {"%%", core.ColorOrange},
}

var (
	hiddenGlyph = Glyph{"··", core.ColorDarkGray}
	playerGlyph = Glyph{"@@", core.ColorBrightWhite}
)

// GlyphOf returns the glyph of a cell type.
func GlyphOf(t level.CellType) Glyph {
	if g, ok := glyphs[t]; ok {
		return g
	}
	return Glyph{"??", core.ColorRed}
}

// cellView is the last drawn state of one grid cell.
type cellView struct {
	glyph  Glyph
	alpha  uint8
	x, y   float64
	player bool
}

// floorView holds the drawn state of the displayed floor, indexed by the
// cell position inside the floor.
type floorView [level.CellsPerFloor]cellView

// drawCell is the level.DrawFunc of the game: it records how a cell looks
// so Render can paint it.
func (g *Game) drawCell(index int, c *level.Cell) {
	v := cellView{
		glyph: GlyphOf(c.Type),
		alpha: uint8(math.Round(c.Transparency())),
	}
	if !c.Visible {
		v.glyph = hiddenGlyph
	}
	if index == g.lvl.PlayerCellIndex() && g.phase != PhaseWatching {
		v.glyph = playerGlyph
		v.player = true
	}
	pos := c.Position()
	v.x, v.y = pos.X, pos.Y
	g.view[index%level.CellsPerFloor] = v
}

// displayedFloor returns the floor on screen.
func (g *Game) displayedFloor() int {
	if g.phase == PhaseAnimating {
		return g.animFloor
	}
	return g.lvl.PlayerFloor()
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenW < MinScreenW || g.screenH < MinScreenH {
		g.renderTooSmall(dst)
		return
	}

	// a live transform refreshes the view itself
	if g.phase != PhaseAnimating {
		g.lvl.Display(g.displayedFloor(), g.drawCell)
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	dst.DrawBox(core.NewRect(boardX-1, boardY-1, boardW+2, boardH+2), core.ColorDarkGray)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlay(dst, boardY+boardH+1)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
}

func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := fmt.Sprintf("%s  %d/%d", g.source.SerieName(), g.index+1, g.source.Count())
	dst.DrawText(boardX, 0, title)

	info := fmt.Sprintf("Floor %d  Stars %d/%d  Lives %d  %s",
		g.displayedFloor(), g.stars, g.lvl.StarsAmount(), g.lives, FormatRemaining(g.remaining))
	dst.DrawText(boardX, 1, info)
}

// renderBoard paints the view. The player is painted last so a sliding
// quadrant never covers it.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	paint := func(v cellView) {
		x := boardX + int(math.Round(v.x*cellWidth))
		y := boardY + int(math.Round(v.y))
		col := 0
		for _, r := range v.glyph.Text {
			if x+col >= boardX && x+col < boardX+boardW && y >= boardY && y < boardY+boardH {
				dst.SetCell(x+col, y, core.ScreenCell{Rune: r, Color: v.glyph.Color, Alpha: v.alpha})
			}
			col++
		}
	}

	var player *cellView
	for i := range g.view {
		if g.view[i].player {
			player = &g.view[i]
			continue
		}
		paint(g.view[i])
	}
	if player != nil {
		paint(*player)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, y int) {
	var msg string
	switch {
	case g.paused:
		msg = "PAUSED - p to resume"
	case g.phase == PhaseWatching:
		msg = fmt.Sprintf("Memorize! %.1fs", float64(g.watchLeft)/1000)
	case g.phase == PhaseAnimating:
		msg = "The floor is moving..."
	case g.phase == PhaseLevelWon:
		msg = "Level complete!"
	case g.phase == PhaseWon:
		msg = "Serie complete! q to quit"
	case g.phase == PhaseLost:
		msg = "Game over - r to retry, q to quit"
	}
	if msg != "" {
		dst.DrawTextCentered(y, msg)
	}
}

// FormatRemaining renders a countdown as m:ss, or "--:--" without a limit.
func FormatRemaining(ms int64) string {
	if ms < 0 {
		return "--:--"
	}
	secs := (ms + 999) / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
