//go:build unix

// Package term reads the size of the controlling terminal.
package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Size returns the columns and rows of the terminal attached to f.
func Size(f *os.File) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	if ws.Col == 0 || ws.Row == 0 {
		return 0, 0, fmt.Errorf("terminal size: %s reports %dx%d", f.Name(), ws.Col, ws.Row)
	}
	return int(ws.Col), int(ws.Row), nil
}
