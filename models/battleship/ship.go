package battleship

// Orientation is the axis a ship extends along from its fore cell.
type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

type Ship struct {
	fore        Coordinates
	length      int
	orientation Orientation
	lives       int
}

func NewShip(fore Coordinates, length int, orientation Orientation) *Ship {
	return &Ship{
		fore:        fore,
		length:      length,
		orientation: orientation,
		lives:       length,
	}
}

// Cells returns the coordinates the ship covers, ordered from the fore.
// Horizontal ships extend along Y, vertical ships along X.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		cur := sh.fore
		if sh.orientation == OrientationHorizontal {
			cur.Y += i
		} else {
			cur.X += i
		}
		cells = append(cells, cur)
	}
	return cells
}

func (sh *Ship) Occupies(c Coordinates) bool {
	for _, cell := range sh.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

func (sh *Ship) TakeHit() {
	sh.lives--
}

func (sh *Ship) IsSunk() bool {
	return sh.lives == 0
}

func (sh *Ship) Lives() int {
	return sh.lives
}

func (sh *Ship) Length() int {
	return sh.length
}
