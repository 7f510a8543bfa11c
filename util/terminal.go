package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column count of the terminal attached to stdout,
// or fallback when stdout is not a terminal or its size cannot be read
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
