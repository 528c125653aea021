package console

import (
	"fmt"
	"io"
)

// Greet prints the welcome banner and the shooting instructions.
func Greet(w io.Writer) {
	fmt.Fprintln(w, "-------------------------------")
	fmt.Fprintln(w, "Welcome to the Battleship game!")
	fmt.Fprintln(w, "-------------------------------")
	fmt.Fprintln(w, "To shoot, type two digits:")
	fmt.Fprintln(w, "the row first, then the column.")
}
