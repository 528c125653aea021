package console

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	glyphEmpty = "O"
	glyphShip  = "▇"
	glyphHit   = "X"
	glyphMiss  = "."
)

// Renderer draws boards as text grids with 1-indexed row and column
// headers. Hidden boards get their ship cells masked as empty water.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

var _ mb.Presenter = (*Renderer)(nil)

func (r *Renderer) RenderBoard(title string, board *mb.Board) {
	fmt.Fprintln(r.w, strings.Repeat("-", 20))
	fmt.Fprintln(r.w, title)

	var sb strings.Builder
	sb.WriteString("  |")
	for col := 1; col <= board.Size(); col++ {
		fmt.Fprintf(&sb, " %d |", col)
	}
	for row := 0; row < board.Size(); row++ {
		fmt.Fprintf(&sb, "\n%d |", row+1)
		for col := 0; col < board.Size(); col++ {
			fmt.Fprintf(&sb, " %s |", r.glyph(board, mb.NewCoordinates(row, col)))
		}
	}
	fmt.Fprintln(r.w, sb.String())
}

func (r *Renderer) glyph(board *mb.Board, c mb.Coordinates) string {
	switch board.PositionAt(c) {
	case mb.PositionStateShip:
		if board.Hidden() {
			return glyphEmpty
		}
		return glyphShip
	case mb.PositionStateHit:
		return glyphHit
	case mb.PositionStateMiss, mb.PositionStateBlocked:
		return glyphMiss
	default:
		return glyphEmpty
	}
}

// Present draws the player's own board followed by the opponent's.
func (r *Renderer) Present(own, enemy *mb.Board) {
	r.RenderBoard("Your board", own)
	r.RenderBoard("Computer board", enemy)
}
