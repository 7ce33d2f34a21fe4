// File: terminal.go
// Title: Terminal Capability Specification
// Description: Defines the abstract, text-based interface with the user and
//              the helpers derived from it. A terminal knows how to print a
//              string and block-read one line; everything else (prompting,
//              parse-retry loops) is layered on top of those two operations.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-19
//
// Change History:
// - 2026-07-12 v0.1.0: Initial terminal specification
// - 2026-07-19 v0.1.1: Added ReadString/ReadStringDefault helpers

package terminal

import "strings"

// AccessError reports a failure to read from or write to the terminal
// device. It is the single, unrecoverable I/O failure kind of this module:
// once raised it percolates through command execution and out of the loop
// engine untouched.
type AccessError struct {
	Reason string
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	return e.Reason
}

// NewAccessError creates an AccessError with the given reason.
func NewAccessError(reason string) *AccessError {
	return &AccessError{Reason: reason}
}

// WrapAccessError converts an arbitrary error into an AccessError,
// preserving its message. Returns nil if err is nil; returns err unchanged
// if it already is an AccessError.
func WrapAccessError(err error) error {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*AccessError); ok {
		return ae
	}
	return &AccessError{Reason: err.Error()}
}

// Terminal is the specification of a text-based I/O device for interfacing
// with the user. Ordinarily this is a real terminal over stdin/stdout;
// separating the specification from the device allows fine-grained
// mocking of user interactions.
//
// Both operations fail only with *AccessError.
type Terminal interface {
	// Print writes a string to the output device without appending a
	// newline.
	Print(s string) error

	// ReadLine reads a complete line from the input device, blocking until
	// input becomes available. The returned line may include the trailing
	// newline separator.
	ReadLine() (string, error)
}

// PrintLine prints a string with an added trailing newline separator.
func PrintLine(t Terminal, s string) error {
	return t.Print(s + "\n")
}

// ReadValue reads a value from the terminal using the supplied parse
// function. The user is prompted repeatedly until the parser yields a
// non-error value; each parse failure is reported as
// "Invalid input: <err>." and the prompt is shown again. Parse errors are
// never propagated to the caller; only an *AccessError from the underlying
// device terminates the loop.
//
// The line read from the device is trimmed of surrounding whitespace
// before being handed to the parser.
func ReadValue[V any](t Terminal, prompt string, parse func(string) (V, error)) (V, error) {
	var zero V
	for {
		if err := t.Print(prompt); err != nil {
			return zero, err
		}
		line, err := t.ReadLine()
		if err != nil {
			return zero, err
		}
		val, perr := parse(strings.TrimSpace(line))
		if perr == nil {
			return val, nil
		}
		if err := PrintLine(t, "Invalid input: "+perr.Error()+"."); err != nil {
			return zero, err
		}
	}
}

// ReadString reads a non-blank string from the terminal, re-prompting on
// blank input.
func ReadString(t Terminal, prompt string) (string, error) {
	return ReadValue(t, prompt, func(s string) (string, error) {
		if s == "" {
			return "", &blankInputError{}
		}
		return s, nil
	})
}

// ReadStringDefault reads a string from the terminal, substituting the
// given default when the user submits a blank line.
func ReadStringDefault(t Terminal, prompt, def string) (string, error) {
	return ReadValue(t, prompt, func(s string) (string, error) {
		if s == "" {
			return def, nil
		}
		return s, nil
	})
}

type blankInputError struct{}

func (e *blankInputError) Error() string {
	return "blank input"
}
