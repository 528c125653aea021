package battleship

import (
	"math/rand"

	"github.com/rs/zerolog"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

// PlacementAttemptBudget bounds the random placement attempts across one
// whole board. A board that burns through it is abandoned and rebuilt
// from scratch.
const PlacementAttemptBudget = 2000

// DefaultFleet is the ship lengths placed on every board, longest first.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1}

// Generator fills boards with randomly placed fleets.
type Generator struct {
	size   int
	fleet  []int
	rng    *rand.Rand
	logger zerolog.Logger
}

func NewGenerator(size int, fleet []int, rng *rand.Rand, logger zerolog.Logger) *Generator {
	if len(fleet) == 0 {
		fleet = DefaultFleet
	}
	return &Generator{
		size:   size,
		fleet:  fleet,
		rng:    rng,
		logger: logger,
	}
}

// tryBoard attempts to place the whole fleet on one fresh board. Anchors
// are drawn from the expanded range [0, size] on purpose; out-of-bounds
// draws are rejected by PlaceShip like any other bad attempt.
func (g *Generator) tryBoard(hidden bool) (*Board, error) {
	board := NewBoard(g.size, hidden)

	attempts := 0
	for _, length := range g.fleet {
		for {
			attempts++
			if attempts > PlacementAttemptBudget {
				return nil, cerr.ErrFleetPlacementExhausted(attempts - 1)
			}

			fore := NewCoordinates(g.rng.Intn(g.size+1), g.rng.Intn(g.size+1))
			ship := NewShip(fore, length, Orientation(g.rng.Intn(2)))
			if err := board.PlaceShip(ship); err != nil {
				continue
			}
			break
		}
	}

	g.logger.Debug().Int("attempts", attempts).Msg("fleet placed")
	board.ResetForPlay()
	return board, nil
}

// RandomBoard retries whole boards until one succeeds. The outer loop is
// deliberately unbounded; only attempts within a single board are
// budgeted.
func (g *Generator) RandomBoard(hidden bool) *Board {
	for {
		board, err := g.tryBoard(hidden)
		if err != nil {
			g.logger.Debug().Err(err).Msg("abandoning board, starting over")
			continue
		}
		return board
	}
}
