package battleship

import (
	"errors"
	"math/rand"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

// Gunner picks the next target. It is the only capability a player role
// must bring; the turn machinery is shared.
type Gunner interface {
	Ask() Coordinates
}

type Player struct {
	board    *Board
	enemy    *Board
	gunner   Gunner
	notifier Notifier
}

func NewPlayer(board, enemy *Board, gunner Gunner, notifier Notifier) *Player {
	return &Player{
		board:    board,
		enemy:    enemy,
		gunner:   gunner,
		notifier: notifier,
	}
}

// Turn keeps asking the gunner until a legal shot resolves. Rejected
// shots are reported to the acting side and retried; they never end the
// turn. Returns true when the shot earned another turn.
func (p *Player) Turn() bool {
	for {
		target := p.gunner.Ask()

		outcome, err := p.enemy.Shoot(target)
		if err != nil {
			switch {
			case errors.Is(err, cerr.ErrShotOutOfBounds):
				p.notifier.Notify(NewEvent(EventInvalidShotOutOfBounds, target))
			case errors.Is(err, cerr.ErrCellAlreadyTargeted):
				p.notifier.Notify(NewEvent(EventInvalidShotAlreadyTargeted, target))
			}
			continue
		}

		switch outcome {
		case OutcomeShipHit:
			p.notifier.Notify(NewEvent(EventShipHit, target))
			return true
		case OutcomeShipDestroyed:
			p.notifier.Notify(NewEvent(EventShipDestroyed, target))
			return true
		default:
			p.notifier.Notify(NewEvent(EventMiss, target))
			return false
		}
	}
}

// ComputerGunner draws uniformly random in-bounds targets with no memory
// of earlier shots. Redundant picks are rejected by the board and simply
// drawn again.
type ComputerGunner struct {
	size     int
	rng      *rand.Rand
	notifier Notifier
}

func NewComputerGunner(size int, rng *rand.Rand, notifier Notifier) *ComputerGunner {
	return &ComputerGunner{
		size:     size,
		rng:      rng,
		notifier: notifier,
	}
}

var _ Gunner = (*ComputerGunner)(nil)

func (g *ComputerGunner) Ask() Coordinates {
	target := NewCoordinates(g.rng.Intn(g.size), g.rng.Intn(g.size))
	g.notifier.Notify(NewEvent(EventComputerShot, target))
	return target
}
