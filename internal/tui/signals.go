package tui

import (
	"os"
	"syscall"
)

// Pending is the set of signal-derived requests observed since the last tick.
type Pending struct {
	Resize    bool
	Interrupt bool
}

// watchedSignals are forwarded to the session's channel. Raw mode disables
// the terminal's own Ctrl-C, so SIGINT only arrives from outside.
var watchedSignals = []os.Signal{
	syscall.SIGWINCH,
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGHUP,
}

// drainSignals empties ch without blocking and folds what it saw into Pending.
func drainSignals(ch <-chan os.Signal) Pending {
	var p Pending
	for {
		select {
		case sig := <-ch:
			if sig == syscall.SIGWINCH {
				p.Resize = true
			} else {
				p.Interrupt = true
			}
		default:
			return p
		}
	}
}
