package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/eliteGoblin/activity/internal/format"
)

// cliError is a failure shown to the user as a message plus an optional hint.
type cliError struct {
	message string
	hint    string
	cause   error
}

func newCLIError(message string) *cliError {
	return &cliError{message: message}
}

func (e *cliError) withHint(hint string) *cliError {
	e.hint = hint
	return e
}

func (e *cliError) withCause(cause error) *cliError {
	e.cause = cause
	return e
}

func (e *cliError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *cliError) Unwrap() error {
	return e.cause
}

// reportError prints err for the user. Causes of a cliError are left to the log.
func reportError(w io.Writer, err error) {
	p := format.NewPalette(colorEnabled(w))

	var ce *cliError
	if errors.As(err, &ce) {
		fmt.Fprintln(w, p.Danger.Sprint("Error: "+ce.message+"."))
		if ce.hint != "" {
			fmt.Fprintln(w, ce.hint)
		}
		return
	}
	fmt.Fprintln(w, p.Danger.Sprint("Error: "+err.Error()))
}
