package level

import (
	"github.com/vovakirdan/tui-memoris/internal/core"
)

// CellType is the single-symbol tag stored in level files. It fully
// determines the gameplay semantics of a cell.
type CellType byte

const (
	CellWall             CellType = 'f'
	CellEmpty            CellType = 'e'
	CellDeparture        CellType = 'd'
	CellArrival          CellType = 'a'
	CellStar             CellType = 's'
	CellLife             CellType = 'l'
	CellDamage           CellType = 'm'
	CellMoreTime         CellType = '+'
	CellLessTime         CellType = '-'
	CellElevatorUp       CellType = 'u'
	CellElevatorDown     CellType = 'v'
	CellVerticalMirror   CellType = 'k'
	CellHorizontalMirror CellType = 'j'
	CellQuarterRotation  CellType = 'r'
)

// cellNames is the symbol table of the level file format.
var cellNames = map[CellType]string{
	CellWall:             "wall",
	CellEmpty:            "empty",
	CellDeparture:        "departure",
	CellArrival:          "arrival",
	CellStar:             "star",
	CellLife:             "life",
	CellDamage:           "damage",
	CellMoreTime:         "more time",
	CellLessTime:         "less time",
	CellElevatorUp:       "elevator up",
	CellElevatorDown:     "elevator down",
	CellVerticalMirror:   "vertical mirror",
	CellHorizontalMirror: "horizontal mirror",
	CellQuarterRotation:  "quarter rotation",
}

// CellTypes returns every known cell type in file-symbol order.
func CellTypes() []CellType {
	return []CellType{
		CellWall, CellEmpty, CellDeparture, CellArrival, CellStar,
		CellLife, CellDamage, CellMoreTime, CellLessTime,
		CellElevatorUp, CellElevatorDown,
		CellVerticalMirror, CellHorizontalMirror, CellQuarterRotation,
	}
}

// ParseCellType maps a file symbol to its cell type.
func ParseCellType(symbol byte) (CellType, bool) {
	t := CellType(symbol)
	_, ok := cellNames[t]
	return t, ok
}

// String returns the human-readable name of the type.
func (t CellType) String() string {
	if name, ok := cellNames[t]; ok {
		return name
	}
	return "unknown"
}

// Symbol returns the file symbol of the type.
func (t CellType) Symbol() byte {
	return byte(t)
}

// Direction is one of the four grid directions.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// delta returns the (row, col) step of the direction.
func (d Direction) delta() (int, int) {
	switch d {
	case DirectionUp:
		return -1, 0
	case DirectionDown:
		return 1, 0
	case DirectionLeft:
		return 0, -1
	case DirectionRight:
		return 0, 1
	}
	return 0, 0
}

// Transparency bounds of a cell.
const (
	TransparencyMin = 0.0
	TransparencyMax = 255.0
)

// Position is a screen position expressed in cell units, relative to the
// top-left corner of the floor.
type Position struct {
	X, Y float64
}

// Cell is one addressable grid position. It is a plain value so animations
// can keep snapshots of overwritten cells.
type Cell struct {
	Type    CellType
	Visible bool

	transparency float64
	home         Position
	position     Position
}

// NewCell creates a visible, opaque cell of the given type at a position.
func NewCell(t CellType, x, y float64) Cell {
	c := Cell{
		Type:         t,
		Visible:      true,
		transparency: TransparencyMax,
	}
	c.SetPosition(x, y)
	return c
}

// Transparency returns the alpha level of the cell, 0 (invisible) to 255 (opaque).
func (c *Cell) Transparency() float64 {
	return c.transparency
}

// SetTransparency sets the alpha level, clamped to [0, 255].
func (c *Cell) SetTransparency(alpha float64) {
	c.transparency = core.ClampF(alpha, TransparencyMin, TransparencyMax)
}

// Show makes the cell content visible.
func (c *Cell) Show() {
	c.Visible = true
}

// Hide masks the cell content.
func (c *Cell) Hide() {
	c.Visible = false
}

// SetVisible shows or hides the cell.
func (c *Cell) SetVisible(visible bool) {
	c.Visible = visible
}

// SetPosition sets both the resting and the current screen position.
func (c *Cell) SetPosition(x, y float64) {
	c.home = Position{X: x, Y: y}
	c.position = c.home
}

// Position returns the current screen position, slide offset included.
func (c *Cell) Position() Position {
	return c.position
}

// Offset returns how far the cell currently is from its resting position.
func (c *Cell) Offset() Position {
	return Position{X: c.position.X - c.home.X, Y: c.position.Y - c.home.Y}
}

// MoveInDirection slides the cell by amount cell units. Purely cosmetic.
func (c *Cell) MoveInDirection(d Direction, amount float64) {
	dr, dc := d.delta()
	c.position.X += float64(dc) * amount
	c.position.Y += float64(dr) * amount
}

// ResetPosition puts the cell back on its resting position.
func (c *Cell) ResetPosition() {
	c.position = c.home
}

// CopyContent copies the gameplay content (type and visibility) of src.
// Position and transparency stay attached to the grid slot.
func (c *Cell) CopyContent(src Cell) {
	c.Type = src.Type
	c.Visible = src.Visible
}
