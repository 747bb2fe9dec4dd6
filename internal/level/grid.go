// Package level holds the multi-floor cell grid of a Memoris level: flat index
// arithmetic, cell state, floor-scoped queries and the level file format.
package level

import "fmt"

// Grid dimensions. Every floor is a square of CellsPerLine x CellsPerLine cells
// stored row by row; floors are stored one after another.
const (
	CellsPerLine  = 16
	HalfLine      = CellsPerLine / 2
	CellsPerFloor = CellsPerLine * CellsPerLine
	MinFloor      = 0
	MaxFloor      = 9
	Floors        = MaxFloor - MinFloor + 1
	CellsPerLevel = CellsPerFloor * Floors
)

// IndexOf returns the flat cell index of (floor, row, col).
// Arguments outside the grid are a programming error and panic.
func IndexOf(floor, row, col int) int {
	if floor < MinFloor || floor > MaxFloor || row < 0 || row >= CellsPerLine || col < 0 || col >= CellsPerLine {
		panic(fmt.Sprintf("level: position (%d, %d, %d) outside the grid", floor, row, col))
	}
	return floor*CellsPerFloor + row*CellsPerLine + col
}

// ColOf returns the column of a flat index.
func ColOf(index int) int {
	return index % CellsPerLine
}

// RowOf returns the row of a flat index inside its floor.
func RowOf(index int) int {
	return (index % CellsPerFloor) / CellsPerLine
}

// FloorOf returns the floor of a flat index.
func FloorOf(index int) int {
	return index / CellsPerFloor
}

// FloorStart returns the flat index of the first cell of a floor.
func FloorStart(floor int) int {
	return IndexOf(floor, 0, 0)
}

// ValidIndex reports whether index addresses a cell of the level.
func ValidIndex(index int) bool {
	return index >= 0 && index < CellsPerLevel
}

// mustIndex panics when index does not address a cell of the level.
func mustIndex(index int) {
	if !ValidIndex(index) {
		panic(fmt.Sprintf("level: cell index %d out of range", index))
	}
}
