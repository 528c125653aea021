package battleship

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

func newTestGenerator(size int, fleet []int, seed int64) *Generator {
	return NewGenerator(size, fleet, rand.New(rand.NewSource(seed)), zerolog.Nop())
}

func TestRandomBoardFleetComposition(t *testing.T) {
	gen := newTestGenerator(GridSizeNormal, nil, 13)

	board := gen.RandomBoard(false)
	require.Equal(t, len(DefaultFleet), board.ShipCount())

	lengths := make([]int, 0, board.ShipCount())
	for _, sh := range board.ships {
		lengths = append(lengths, sh.Length())
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	assert.Equal(t, DefaultFleet, lengths)
}

func TestRandomBoardShipSeparation(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		gen := newTestGenerator(GridSizeNormal, nil, seed)
		board := gen.RandomBoard(false)

		seen := make(map[Coordinates]int)
		for i, sh := range board.ships {
			for _, c := range sh.Cells() {
				require.False(t, board.out(c), "seed %d: ship cell %v out of bounds", seed, c)

				prev, prs := seen[c]
				require.False(t, prs, "seed %d: ships %d and %d overlap at %v", seed, prev, i, c)
				seen[c] = i
			}
		}

		// no two cells of different ships may touch, diagonals included
		for c, owner := range seen {
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					n := NewCoordinates(c.X+dx, c.Y+dy)
					other, prs := seen[n]
					if prs && other != owner {
						t.Fatalf("seed %d: ships %d and %d are adjacent at %v/%v", seed, owner, other, c, n)
					}
				}
			}
		}
	}
}

func TestRandomBoardIsResetForPlay(t *testing.T) {
	gen := newTestGenerator(GridSizeNormal, nil, 7)
	board := gen.RandomBoard(true)

	assert.Nil(t, board.exclusion)
	assert.Empty(t, board.shots)
	assert.True(t, board.Hidden())

	// a cell next to a ship is a legal target right away
	var contour Coordinates
	found := false
	for x := 0; x < board.Size() && !found; x++ {
		for y := 0; y < board.Size() && !found; y++ {
			c := NewCoordinates(x, y)
			if board.PositionAt(c) != PositionStateShip && nextToShip(board, c) {
				contour = c
				found = true
			}
		}
	}
	require.True(t, found)

	outcome, err := board.Shoot(contour)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMiss, outcome)
}

func nextToShip(board *Board, c Coordinates) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			n := NewCoordinates(c.X+dx, c.Y+dy)
			if board.out(n) {
				continue
			}
			if board.PositionAt(n) == PositionStateShip {
				return true
			}
		}
	}
	return false
}

func TestTryBoardBudgetExhausted(t *testing.T) {
	// the default fleet can never fit on a 2x2 grid
	gen := newTestGenerator(2, nil, 1)

	board, err := gen.tryBoard(false)
	require.ErrorIs(t, err, cerr.ErrPlacementBudgetExhausted)
	assert.Nil(t, board)
}

func TestRandomBoardRestartsAfterExhaustion(t *testing.T) {
	// a 1-cell fleet on a tight grid forces frequent rejected draws but
	// always succeeds eventually
	gen := newTestGenerator(3, []int{1, 1}, 42)

	board := gen.RandomBoard(false)
	require.NotNil(t, board)
	assert.Equal(t, 2, board.ShipCount())
}
