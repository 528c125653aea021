package battleship

// Outcome classifies a resolved shot.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeMiss
	OutcomeShipHit
	OutcomeShipDestroyed
)

// EventCode is the discrete signal the core hands to the presentation
// layer. The core formats no text itself.
type EventCode uint8

const (
	EventMiss EventCode = iota
	EventShipHit
	EventShipDestroyed
	EventInvalidShotOutOfBounds
	EventInvalidShotAlreadyTargeted

	// EventComputerShot announces the computer's pick before it lands.
	EventComputerShot
)

type Event struct {
	Code   EventCode
	Target Coordinates
}

func NewEvent(code EventCode, target Coordinates) Event {
	return Event{Code: code, Target: target}
}

// Notifier renders events as messages for the acting side.
type Notifier interface {
	Notify(e Event)
}

// Presenter draws both boards of the match between turns and at the end.
type Presenter interface {
	Present(own, enemy *Board)
}
