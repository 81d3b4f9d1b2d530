//go:build windows

package terminal

import (
	"os"

	"golang.org/x/sys/windows"
)

// rawController owns the console input mode. Enable clears line input
// and echo and turns on virtual terminal input, so arrow and editing
// keys arrive as the same ANSI sequences the shared decoder expects.
type rawController struct {
	handle   windows.Handle
	original uint32
	enabled  bool
}

// NewController returns the platform terminal controller for stdin.
func NewController() Controller {
	return &rawController{handle: windows.Handle(os.Stdin.Fd())}
}

func (c *rawController) Enable() error {
	var mode uint32
	if err := windows.GetConsoleMode(c.handle, &mode); err != nil {
		return err
	}
	c.original = mode
	c.enabled = true

	raw := mode
	raw &^= windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT
	raw |= windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_VIRTUAL_TERMINAL_INPUT

	return windows.SetConsoleMode(c.handle, raw)
}

func (c *rawController) Restore() error {
	if !c.enabled {
		return nil
	}
	return windows.SetConsoleMode(c.handle, c.original)
}

// NewKeySource returns the platform key source for stdin.
func NewKeySource() KeySource {
	return NewDecoder(os.Stdin)
}
