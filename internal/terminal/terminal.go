// Package terminal isolates platform terminal handling behind two
// small capabilities: a Controller that switches the terminal into raw
// mode and restores the previous settings, and a KeySource that yields
// one decoded key event per call.
//
// All OS-specific code lives here. The rest of the shell never touches
// termios or the Windows console API.
package terminal

// KeyType tags a decoded key event.
type KeyType int

const (
	// KeyNone means no event arrived within the poll interval.
	KeyNone KeyType = iota
	// KeyChar is a printable character; Key.Ch holds it.
	KeyChar
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyCtrlA
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyUnknown
)

// Key is a single decoded key event. Events are transient; nothing
// retains them past the keystroke that produced them.
type Key struct {
	Type KeyType
	Ch   byte
}

// Controller switches the terminal in and out of raw mode. Enable must
// be paired with Restore on every exit path so the terminal is never
// left without echo after a crash or early return.
type Controller interface {
	Enable() error
	Restore() error
}

// KeySource produces one key event per call, blocking for at most the
// platform poll interval. A KeyNone event signals a timeout.
type KeySource interface {
	Next() (Key, error)
}
