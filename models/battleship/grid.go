package battleship

// PositionState classifies a single cell of a grid.
type PositionState uint8

const (
	PositionStateEmpty PositionState = iota
	PositionStateShip
	PositionStateHit
	PositionStateMiss

	// PositionStateBlocked marks the revealed contour around a sunken
	// ship. Renders like a miss; the surrounding water holds nothing.
	PositionStateBlocked
)

// Grid sizes per difficulty preset.
const (
	GridSizeEasy   int = 5
	GridSizeNormal int = 6
	GridSizeHard   int = 7
)

type Coordinates struct {
	X int
	Y int
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

type Grid [][]PositionState

// Creates a new default grid.
// All cells start as PositionStateEmpty.
func NewGrid(size int) Grid {
	grid := make(Grid, size)

	for i := 0; i < size; i++ {
		grid[i] = make([]PositionState, size)
	}
	return grid
}
