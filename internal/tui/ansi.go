package tui

// Escape sequences written by the session and the renderer.
const (
	altScreenEnter = "\x1b[?1049h"
	altScreenExit  = "\x1b[?1049l"
	cursorHide     = "\x1b[?25l"
	cursorShow     = "\x1b[?25h"
	// DECAWM off keeps a full-width last line from scrolling the screen.
	autoWrapOff = "\x1b[?7l"
	autoWrapOn  = "\x1b[?7h"

	cursorHome = "\x1b[H"
	clearEOL   = "\x1b[K"
	clearEOS   = "\x1b[J"

	sgrReset      = "\x1b[0m"
	sgrDim        = "\x1b[2m"
	sgrReverse    = "\x1b[7m"
	sgrBoldWhite  = "\x1b[1;37m"
	sgrBoldYellow = "\x1b[1;33m"
	sgrGreen      = "\x1b[32m"
	sgrYellow     = "\x1b[33m"
	sgrRed        = "\x1b[31m"
)
