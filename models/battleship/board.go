package battleship

import (
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

// contourOffsets covers the cell itself plus its full 8-neighbourhood.
var contourOffsets = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board owns one player's grid and fleet. During setup the exclusion set
// blocks ship cells and their contour from further placement; during play
// the shots set tracks every coordinate ever targeted. The two sets never
// serve both phases at once: ResetForPlay ends setup.
type Board struct {
	size      int
	hidden    bool
	grid      Grid
	ships     []*Ship
	exclusion map[Coordinates]struct{}
	shots     map[Coordinates]struct{}
	sunken    int
}

func NewBoard(size int, hidden bool) *Board {
	return &Board{
		size:      size,
		hidden:    hidden,
		grid:      NewGrid(size),
		ships:     make([]*Ship, 0, 6),
		exclusion: make(map[Coordinates]struct{}),
		shots:     make(map[Coordinates]struct{}),
	}
}

func (b *Board) Size() int {
	return b.size
}

// Hidden boards belong to the opposing side; renderers draw their ship
// cells as empty water.
func (b *Board) Hidden() bool {
	return b.hidden
}

func (b *Board) ShipCount() int {
	return len(b.ships)
}

func (b *Board) SunkenShips() int {
	return b.sunken
}

// PositionAt is the read-only cell query for renderers. The caller must
// pass an in-bounds coordinate.
func (b *Board) PositionAt(c Coordinates) PositionState {
	return b.grid[c.X][c.Y]
}

func (b *Board) out(c Coordinates) bool {
	return c.X < 0 || c.X >= b.size || c.Y < 0 || c.Y >= b.size
}

// PlaceShip validates every cell of the ship before touching any state,
// so a failed placement leaves the board exactly as it was. On success
// the ship cells and their contour join the exclusion set, which routes
// later placements around this ship.
func (b *Board) PlaceShip(sh *Ship) error {
	cells := sh.Cells()
	for _, c := range cells {
		if b.out(c) {
			return cerr.ErrShipPlacementOutOfBounds(c.X, c.Y)
		}
		if _, prs := b.exclusion[c]; prs {
			return cerr.ErrShipPlacementBlocked(c.X, c.Y)
		}
	}

	for _, c := range cells {
		b.grid[c.X][c.Y] = PositionStateShip
		b.exclusion[c] = struct{}{}
	}
	b.ships = append(b.ships, sh)
	b.markContour(sh, b.exclusion, false)
	return nil
}

// markContour adds the 8-neighbour contour of every ship cell to the
// given set. Out-of-bounds neighbours are skipped, already present ones
// are harmless. With reveal, empty contour cells also get a blocked mark
// on the grid so the viewer sees the cleared water around a wreck.
func (b *Board) markContour(sh *Ship, into map[Coordinates]struct{}, reveal bool) {
	for _, cell := range sh.Cells() {
		for _, d := range contourOffsets {
			cur := NewCoordinates(cell.X+d[0], cell.Y+d[1])
			if b.out(cur) {
				continue
			}
			into[cur] = struct{}{}
			if reveal && b.grid[cur.X][cur.Y] == PositionStateEmpty {
				b.grid[cur.X][cur.Y] = PositionStateBlocked
			}
		}
	}
}

// ResetForPlay discards the setup-time exclusion set. Shots start from a
// clean slate; the generator calls this exactly once per finished board.
func (b *Board) ResetForPlay() {
	b.exclusion = nil
}

// Shoot resolves one shot. Out-of-bounds and repeated coordinates fail
// without changing any state; a legal shot is recorded and matched
// against the surviving ships. Sinking a ship also marks its whole
// contour as targeted, so shots there are auto-rejected from then on.
func (b *Board) Shoot(c Coordinates) (Outcome, error) {
	if b.out(c) {
		return OutcomeNone, cerr.ErrShotOutOfBoundsAt(c.X, c.Y)
	}
	if _, prs := b.shots[c]; prs {
		return OutcomeNone, cerr.ErrCellAlreadyTargetedAt(c.X, c.Y)
	}

	b.shots[c] = struct{}{}

	for _, sh := range b.ships {
		if sh.IsSunk() || !sh.Occupies(c) {
			continue
		}

		sh.TakeHit()
		b.grid[c.X][c.Y] = PositionStateHit
		if sh.IsSunk() {
			b.sunken++
			b.markContour(sh, b.shots, true)
			return OutcomeShipDestroyed, nil
		}
		return OutcomeShipHit, nil
	}

	b.grid[c.X][c.Y] = PositionStateMiss
	return OutcomeMiss, nil
}

func (b *Board) IsDefeated() bool {
	return b.sunken == len(b.ships)
}
