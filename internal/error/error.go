package error

import (
	"errors"
	"fmt"
)

// Sentinel errors of the game. The turn loop and the generator classify
// failures with errors.Is against these; the constructor funcs below
// wrap them with the offending coordinates.
var (
	ErrShotOutOfBounds          = errors.New("shot out of the board")
	ErrCellAlreadyTargeted      = errors.New("space already shot once")
	ErrInvalidPlacement         = errors.New("invalid ship placement")
	ErrPlacementBudgetExhausted = errors.New("ship placement attempt budget exhausted")
)

func ErrShotOutOfBoundsAt(x, y int) error {
	return fmt.Errorf("%w:\tx: %d\ty: %d", ErrShotOutOfBounds, x, y)
}

func ErrCellAlreadyTargetedAt(x, y int) error {
	return fmt.Errorf("%w:\tx: %d\ty: %d", ErrCellAlreadyTargeted, x, y)
}

func ErrShipPlacementOutOfBounds(x, y int) error {
	return fmt.Errorf("%w: cell out of the board\tx: %d\ty: %d", ErrInvalidPlacement, x, y)
}

func ErrShipPlacementBlocked(x, y int) error {
	return fmt.Errorf("%w: cell occupied or adjacent to another ship\tx: %d\ty: %d", ErrInvalidPlacement, x, y)
}

func ErrFleetPlacementExhausted(attempts int) error {
	return fmt.Errorf("%w: %d attempts", ErrPlacementBudgetExhausted, attempts)
}
