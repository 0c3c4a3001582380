package tui

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Begin when stdin or stdout is not a TTY.
var ErrNotTerminal = errors.New("stdin and stdout must be an interactive terminal")

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Session owns the terminal for the lifetime of the interactive view:
// raw input, the alternate screen and signal delivery.
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	oldState *term.State
	signals  chan os.Signal
	endOnce  sync.Once
	started  bool
}

// NewSession creates a session over the given streams. Nothing changes on
// the terminal until Begin.
func NewSession(in, out *os.File) *Session {
	return &Session{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

// Begin enters raw mode and the alternate screen.
func (s *Session) Begin() error {
	if !term.IsTerminal(s.inFd) || !term.IsTerminal(s.outFd) {
		return ErrNotTerminal
	}

	old, err := term.MakeRaw(s.inFd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	s.oldState = old

	s.signals = make(chan os.Signal, 8)
	signal.Notify(s.signals, watchedSignals...)
	s.started = true

	if _, err := s.out.WriteString(altScreenEnter + cursorHide + autoWrapOff); err != nil {
		s.End()
		return fmt.Errorf("failed to prepare screen: %w", err)
	}
	return nil
}

// End restores the terminal. Safe to call more than once and after a
// failed Begin.
func (s *Session) End() {
	s.endOnce.Do(func() {
		if !s.started {
			return
		}
		signal.Stop(s.signals)
		_, _ = s.out.WriteString(sgrReset + autoWrapOn + cursorShow + altScreenExit)
		if s.oldState != nil {
			_ = term.Restore(s.inFd, s.oldState)
		}
	})
}

// PollByte waits up to timeout for one input byte.
func (s *Session) PollByte(timeout time.Duration) (byte, bool) {
	fds := []unix.PollFd{{Fd: int32(s.inFd), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		// EINTR from a signal lands here too; the next tick picks it up.
		return 0, false
	}

	var buf [1]byte
	rn, err := unix.Read(s.inFd, buf[:])
	if err != nil || rn == 0 {
		return 0, false
	}
	return buf[0], true
}

// Size reports the terminal's columns and rows, or 80x24 if it cannot.
func (s *Session) Size() (int, int) {
	w, h, err := term.GetSize(s.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// WriteFrame sends one frame in a single write call.
func (s *Session) WriteFrame(frame string) error {
	_, err := s.out.WriteString(frame)
	return err
}

// Pending drains signals received since the previous call.
func (s *Session) Pending() Pending {
	if s.signals == nil {
		return Pending{}
	}
	return drainSignals(s.signals)
}

// WithSession runs fn between Begin and End. End also runs when fn panics,
// before the panic continues.
func WithSession(s *Session, fn func() error) error {
	if err := s.Begin(); err != nil {
		return err
	}
	defer s.End()
	return fn()
}

// Ensure Session satisfies Terminal.
var _ Terminal = (*Session)(nil)
