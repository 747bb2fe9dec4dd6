package level

import (
	"fmt"
	"time"
)

// DrawFunc draws the current visual state of one cell. The level never draws
// anything itself; callers pass the variant they need.
type DrawFunc func(index int, c *Cell)

// Level is the full multi-floor grid plus the player position and the
// counters computed when the level is loaded.
type Level struct {
	cells          []Cell
	playerIndex    int
	starsAmount    int
	playableFloors int
	minutes        int
	seconds        int
}

// New returns an all-wall level with the player on cell 0.
func New() *Level {
	l := &Level{cells: make([]Cell, CellsPerLevel)}
	l.Refresh()
	return l
}

// Refresh turns every cell back into a visible, opaque wall at its resting
// position and clears the counters.
func (l *Level) Refresh() {
	for i := range l.cells {
		l.cells[i] = NewCell(CellWall, float64(ColOf(i)), float64(RowOf(i)))
	}
	l.playerIndex = 0
	l.starsAmount = 0
	l.playableFloors = 0
	l.minutes = 0
	l.seconds = 0
}

// Cells returns the cell sequence. The slice aliases the level storage:
// writes through it mutate the level.
func (l *Level) Cells() []Cell {
	return l.cells
}

// Cell returns the cell at index. Out-of-range indexes panic.
func (l *Level) Cell(index int) *Cell {
	mustIndex(index)
	return &l.cells[index]
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	c := *l
	c.cells = make([]Cell, len(l.cells))
	copy(c.cells, l.cells)
	return &c
}

// PlayerCellIndex returns the flat index of the player.
func (l *Level) PlayerCellIndex() int {
	return l.playerIndex
}

// SetPlayerCellIndex moves the player without any gameplay check.
func (l *Level) SetPlayerCellIndex(index int) {
	mustIndex(index)
	l.playerIndex = index
}

// PlayerFloor returns the floor the player stands on.
func (l *Level) PlayerFloor() int {
	return FloorOf(l.playerIndex)
}

// PlayerCellType returns the type of the cell under the player.
func (l *Level) PlayerCellType() CellType {
	return l.cells[l.playerIndex].Type
}

// StarsAmount returns the number of stars the level was loaded with.
func (l *Level) StarsAmount() int {
	return l.starsAmount
}

// PlayableFloors returns the number of floors from floor 0 up to the highest
// floor that holds something other than walls.
func (l *Level) PlayableFloors() int {
	return l.playableFloors
}

func (l *Level) Minutes() int { return l.minutes }
func (l *Level) Seconds() int { return l.seconds }

// SetTime sets the time limit stored with the level.
func (l *Level) SetTime(minutes, seconds int) {
	l.minutes = minutes
	l.seconds = seconds
}

// TimeLimit returns the level countdown. Zero means no limit.
func (l *Level) TimeLimit() time.Duration {
	return time.Duration(l.minutes)*time.Minute + time.Duration(l.seconds)*time.Second
}

// Recount recomputes the star count, the playable floors and, when a
// departure cell exists, the player index. It returns an error if the level
// has no departure.
func (l *Level) Recount() error {
	l.starsAmount = 0
	l.playableFloors = 0
	departure := -1
	for i := range l.cells {
		switch l.cells[i].Type {
		case CellStar:
			l.starsAmount++
		case CellDeparture:
			if departure < 0 {
				departure = i
			}
		}
		if l.cells[i].Type != CellWall {
			l.playableFloors = FloorOf(i) + 1
		}
	}
	if departure < 0 {
		return fmt.Errorf("%w: no departure cell", ErrMalformed)
	}
	l.playerIndex = departure
	return nil
}

// SetCellsTransparency sets the transparency of every cell of one floor.
func (l *Level) SetCellsTransparency(alpha float64, floor int) {
	start := FloorStart(floor)
	for i := start; i < start+CellsPerFloor; i++ {
		l.cells[i].SetTransparency(alpha)
	}
}

// Display calls draw for each of the cells of one floor, row by row.
func (l *Level) Display(floor int, draw DrawFunc) {
	start := FloorStart(floor)
	for i := start; i < start+CellsPerFloor; i++ {
		draw(i, &l.cells[i])
	}
}

// HideAllCellsExceptDeparture masks the level before the player moves.
func (l *Level) HideAllCellsExceptDeparture() {
	for i := range l.cells {
		if l.cells[i].Type != CellDeparture {
			l.cells[i].Hide()
		}
	}
}

// ShowAllCells reveals the whole level.
func (l *Level) ShowAllCells() {
	for i := range l.cells {
		l.cells[i].Show()
	}
}

// neighbour returns the index next to the player in direction d and whether
// it stays on the player's floor.
func (l *Level) neighbour(d Direction) (int, bool) {
	dr, dc := d.delta()
	row := RowOf(l.playerIndex) + dr
	col := ColOf(l.playerIndex) + dc
	if row < 0 || row >= CellsPerLine || col < 0 || col >= CellsPerLine {
		return l.playerIndex, false
	}
	return IndexOf(l.PlayerFloor(), row, col), true
}

// AllowPlayerMovement reports whether moving in direction d keeps the player
// inside the floor.
func (l *Level) AllowPlayerMovement(d Direction) bool {
	_, ok := l.neighbour(d)
	return ok
}

// DetectWalls reports whether the cell in direction d is a wall. A detected
// wall is revealed.
func (l *Level) DetectWalls(d Direction) bool {
	next, ok := l.neighbour(d)
	if !ok {
		return false
	}
	if l.cells[next].Type != CellWall {
		return false
	}
	l.cells[next].Show()
	return true
}

// MovePlayer moves the player one cell in direction d and reveals the cell.
// Callers check AllowPlayerMovement and DetectWalls first; an illegal move
// leaves the player in place and returns false.
func (l *Level) MovePlayer(d Direction) bool {
	next, ok := l.neighbour(d)
	if !ok || l.cells[next].Type == CellWall {
		return false
	}
	l.playerIndex = next
	l.cells[next].Show()
	return true
}

// EmptyPlayerCell turns the cell under the player into an empty cell.
func (l *Level) EmptyPlayerCell() {
	l.cells[l.playerIndex].Type = CellEmpty
}

// MovePlayerToNextFloor moves the player to the same position one floor up.
func (l *Level) MovePlayerToNextFloor() bool {
	if l.PlayerFloor() >= MaxFloor {
		return false
	}
	l.playerIndex += CellsPerFloor
	l.cells[l.playerIndex].Show()
	return true
}

// MovePlayerToPreviousFloor moves the player to the same position one floor down.
func (l *Level) MovePlayerToPreviousFloor() bool {
	if l.PlayerFloor() <= MinFloor {
		return false
	}
	l.playerIndex -= CellsPerFloor
	l.cells[l.playerIndex].Show()
	return true
}
