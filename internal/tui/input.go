package tui

import "time"

// KeyKind identifies a decoded key event.
type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyQuit // Ctrl-C
	KeyChar
)

// Key is one decoded input event. Char is set for KeyChar.
type Key struct {
	Kind KeyKind
	Char byte
}

// CharKey builds a printable key event.
func CharKey(c byte) Key {
	return Key{Kind: KeyChar, Char: c}
}

// Is reports whether k is the printable character c.
func (k Key) Is(c byte) bool {
	return k.Kind == KeyChar && k.Char == c
}

const (
	byteCtrlC     = 0x03
	byteBackspace = 0x08
	byteLF        = 0x0a
	byteCR        = 0x0d
	byteEscape    = 0x1b
	byteDelete    = 0x7f
)

// BytePoller yields single input bytes, waiting at most timeout for each.
type BytePoller interface {
	PollByte(timeout time.Duration) (byte, bool)
}

// Decoder turns raw terminal bytes into key events.
type Decoder struct {
	in      BytePoller
	timeout time.Duration
}

// NewDecoder creates a decoder reading from in.
func NewDecoder(in BytePoller, timeout time.Duration) *Decoder {
	return &Decoder{in: in, timeout: timeout}
}

// Poll returns at most one event. It reports false when no byte arrived
// within the timeout.
func (d *Decoder) Poll() (Key, bool) {
	b, ok := d.in.PollByte(d.timeout)
	if !ok {
		return Key{}, false
	}

	switch {
	case b == byteEscape:
		return d.escape(), true
	case b == byteCR || b == byteLF:
		return Key{Kind: KeyEnter}, true
	case b == byteDelete || b == byteBackspace:
		return Key{Kind: KeyBackspace}, true
	case b == byteCtrlC:
		return Key{Kind: KeyQuit}, true
	case b >= 0x20 && b <= 0x7e:
		return CharKey(b), true
	default:
		return Key{Kind: KeyUnknown}, true
	}
}

// escape finishes a sequence that started with ESC. A byte other than '['
// after ESC is consumed and the whole thing reads as Escape.
func (d *Decoder) escape() Key {
	next, ok := d.in.PollByte(d.timeout)
	if !ok || next != '[' {
		return Key{Kind: KeyEscape}
	}

	final, ok := d.in.PollByte(d.timeout)
	if !ok {
		return Key{Kind: KeyUnknown}
	}
	switch final {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	default:
		return Key{Kind: KeyUnknown}
	}
}
