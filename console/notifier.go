package console

import (
	"fmt"
	"io"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

// Notifier renders game events as console messages.
type Notifier struct {
	w io.Writer
}

func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

var _ mb.Notifier = (*Notifier)(nil)

func (n *Notifier) Notify(e mb.Event) {
	switch e.Code {
	case mb.EventMiss:
		fmt.Fprintln(n.w, "Missed!")
	case mb.EventShipHit:
		fmt.Fprintln(n.w, "Ship hit!")
	case mb.EventShipDestroyed:
		fmt.Fprintln(n.w, "Ship destroyed!")
	case mb.EventInvalidShotOutOfBounds:
		fmt.Fprintln(n.w, "Shot out of the board!")
	case mb.EventInvalidShotAlreadyTargeted:
		fmt.Fprintln(n.w, "Space already shot once!")
	case mb.EventComputerShot:
		fmt.Fprintf(n.w, "Computer turn: %d %d\n", e.Target.X+1, e.Target.Y+1)
	}
}

// AnnounceWinner prints the terminal message of the match.
func AnnounceWinner(w io.Writer, winner mb.Winner) {
	switch winner {
	case mb.WinnerHuman:
		fmt.Fprintln(w, "You won!")
	case mb.WinnerComputer:
		fmt.Fprintln(w, "Computer won!")
	}
}
