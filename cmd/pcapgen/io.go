package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

// terminalKeys reads one raw keystroke per call from stdin. The terminal is
// switched to raw mode only for the duration of the read so regular output in
// between stays line-disciplined.
type terminalKeys struct{}

func (terminalKeys) Next() (rune, error) {
	fd := int(os.Stdin.Fd())
	oldState, rawErr := term.MakeRaw(fd)
	rawMode := rawErr == nil // else ENTER is required to confirm input -> acceptable fallback

	var input [1]byte
	_, readErr := os.Stdin.Read(input[:])
	if rawMode {
		term.Restore(fd, oldState)
	}
	if readErr != nil {
		return 0, readErr
	}
	if rawMode && input[0] == 3 { //Ctrl+C, treated like quit
		return 0, io.EOF
	}
	return rune(input[0]), nil
}
