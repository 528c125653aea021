package battleship

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerHuman
	WinnerComputer
)

// Match owns the two board/player pairs and runs the alternating turn
// loop until one fleet is gone.
type Match struct {
	Uuid      string
	human     *Player
	computer  *Player
	presenter Presenter
	logger    zerolog.Logger
}

func NewMatch(humanBoard, computerBoard *Board, humanGunner, computerGunner Gunner, notifier Notifier, presenter Presenter, logger zerolog.Logger) *Match {
	return &Match{
		Uuid:      uuid.NewString()[:6],
		human:     NewPlayer(humanBoard, computerBoard, humanGunner, notifier),
		computer:  NewPlayer(computerBoard, humanBoard, computerGunner, notifier),
		presenter: presenter,
		logger:    logger,
	}
}

// Play alternates turns on a counter: even counts belong to the human,
// odd to the computer. A turn that earned a repeat decrements the counter
// first, so the same slot comes up again. The opponent's defeat is
// checked before one's own after every turn; the computer's board falling
// first means the human won.
func (m *Match) Play() Winner {
	m.logger.Info().Str("match", m.Uuid).Msg("match started")

	num := 0
	for {
		m.presenter.Present(m.human.board, m.computer.board)

		var repeat bool
		if num%2 == 0 {
			repeat = m.human.Turn()
		} else {
			repeat = m.computer.Turn()
		}
		if repeat {
			num--
		}

		if m.computer.board.IsDefeated() {
			m.presenter.Present(m.human.board, m.computer.board)
			m.logger.Info().Str("match", m.Uuid).Int("turns", num+1).Msg("human won")
			return WinnerHuman
		}
		if m.human.board.IsDefeated() {
			m.presenter.Present(m.human.board, m.computer.board)
			m.logger.Info().Str("match", m.Uuid).Int("turns", num+1).Msg("computer won")
			return WinnerComputer
		}
		num++
	}
}
