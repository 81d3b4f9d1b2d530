package terminal

import (
	"errors"
	"io"
)

// Decoder turns raw terminal bytes into key events. It understands the
// control bytes and the CSI escape sequences emitted by VT-style
// terminals; on Windows the console is switched to virtual terminal
// input so the same sequences arrive there.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next reads and decodes one key event. In raw mode the underlying
// read times out after the poll interval; a timed-out read surfaces as
// a KeyNone event, not an error, so callers can keep looping without
// busy-spinning.
func (d *Decoder) Next() (Key, error) {
	b, ok, err := d.readByte()
	if err != nil {
		return Key{}, err
	}
	if !ok {
		return Key{Type: KeyNone}, nil
	}

	switch {
	case b == '\n' || b == '\r':
		return Key{Type: KeyEnter}, nil
	case b == '\t':
		return Key{Type: KeyTab}, nil
	case b == 0x7f || b == 0x08:
		return Key{Type: KeyBackspace}, nil
	case b == 0x03:
		return Key{Type: KeyCtrlC}, nil
	case b == 0x04:
		return Key{Type: KeyCtrlD}, nil
	case b == 0x01:
		return Key{Type: KeyCtrlA}, nil
	case b == 0x05:
		return Key{Type: KeyCtrlE}, nil
	case b == 0x1b:
		return d.decodeEscape()
	case b >= 32 && b < 127:
		return Key{Type: KeyChar, Ch: b}, nil
	default:
		return Key{Type: KeyUnknown}, nil
	}
}

// decodeEscape consumes the remainder of a CSI sequence. A lone ESC,
// or anything unrecognized, decodes as KeyUnknown.
func (d *Decoder) decodeEscape() (Key, error) {
	b, ok, err := d.readByte()
	if err != nil {
		return Key{}, err
	}
	if !ok || b != '[' {
		return Key{Type: KeyUnknown}, nil
	}

	b, ok, err = d.readByte()
	if err != nil {
		return Key{}, err
	}
	if !ok {
		return Key{Type: KeyUnknown}, nil
	}

	switch b {
	case 'A':
		return Key{Type: KeyUp}, nil
	case 'B':
		return Key{Type: KeyDown}, nil
	case 'C':
		return Key{Type: KeyRight}, nil
	case 'D':
		return Key{Type: KeyLeft}, nil
	case 'H':
		return Key{Type: KeyHome}, nil
	case 'F':
		return Key{Type: KeyEnd}, nil
	case '3':
		// Delete arrives as ESC [ 3 ~ ; swallow the tilde.
		d.readByte()
		return Key{Type: KeyDelete}, nil
	default:
		return Key{Type: KeyUnknown}, nil
	}
}

// readByte reads a single byte. A zero-byte read (the VTIME poll
// expiring) reports ok=false rather than an error.
func (d *Decoder) readByte() (byte, bool, error) {
	var buf [1]byte
	n, err := d.r.Read(buf[:])
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return buf[0], true, nil
}
