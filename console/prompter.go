package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

// Prompter reads the human player's target from an input stream. It
// keeps re-prompting until it gets exactly two integers in [1, size];
// coordinates are 1-indexed at the prompt and handed to the game
// 0-indexed.
type Prompter struct {
	scanner *bufio.Scanner
	w       io.Writer
	size    int
}

func NewPrompter(r io.Reader, w io.Writer, size int) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(r),
		w:       w,
		size:    size,
	}
}

var _ mb.Gunner = (*Prompter)(nil)

func (p *Prompter) Ask() mb.Coordinates {
	for {
		fmt.Fprintf(p.w, "Your turn (row column): ")

		if !p.scanner.Scan() {
			fmt.Fprintln(p.w, "\nInput closed, leaving the game.")
			os.Exit(0)
		}

		fields := strings.Fields(p.scanner.Text())
		if len(fields) != 2 {
			fmt.Fprintln(p.w, "Type two coordinates!")
			continue
		}

		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if errX != nil || errY != nil {
			fmt.Fprintln(p.w, "Numbers required!")
			continue
		}

		if x < 1 || x > p.size || y < 1 || y > p.size {
			fmt.Fprintf(p.w, "Coordinates must be between 1 and %d!\n", p.size)
			continue
		}

		return mb.NewCoordinates(x-1, y-1)
	}
}
