//go:build !unix

package term

import (
	"errors"
	"os"
)

// Size is not supported off unix.
func Size(f *os.File) (cols, rows int, err error) {
	return 0, 0, errors.New("terminal size: unsupported platform")
}
