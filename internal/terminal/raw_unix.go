//go:build !windows

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// rawController owns the terminal settings for one stdin fd. Enable
// clears canonical mode and echo and sets a 100ms read timeout
// (VMIN=0, VTIME=1) so key reads poll instead of blocking forever.
type rawController struct {
	fd       int
	original *unix.Termios
}

// NewController returns the platform terminal controller for stdin.
func NewController() Controller {
	return &rawController{fd: int(os.Stdin.Fd())}
}

func (c *rawController) Enable() error {
	original, err := unix.IoctlGetTermios(c.fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	c.original = original

	raw := *original
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	return unix.IoctlSetTermios(c.fd, ioctlWriteTermios, &raw)
}

func (c *rawController) Restore() error {
	if c.original == nil {
		return nil
	}
	return unix.IoctlSetTermios(c.fd, ioctlWriteTermios, c.original)
}

// NewKeySource returns the platform key source for stdin.
func NewKeySource() KeySource {
	return NewDecoder(os.Stdin)
}
