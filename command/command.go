// File: command.go
// Title: Command Lifecycle Contract
// Description: Defines the shape every executable command must satisfy:
//              how a parsed action is constructed from argument text, how
//              it reports success, a benign no-op, a recoverable domain
//              error or a fatal I/O error, and the execution environment
//              lent to it for the duration of one loop iteration.
// Version: v0.1.0
// Created: 2026-07-13
// Modified: 2026-07-20
//
// Change History:
// - 2026-07-13 v0.1.0: Initial lifecycle contract
// - 2026-07-20 v0.1.1: Added Func adapter and ConvertParseError

package command

import (
	"errors"
	"fmt"

	"github.com/repliq/repliq/terminal"
)

// Outcome is the result of successfully applying a Command.
type Outcome int

const (
	// Applied means the command executed with all of its side effects (if
	// any) committed to the application state.
	Applied Outcome = iota

	// Skipped means the execution was intentionally declined without an
	// accompanying error, e.g. aborted at the user's request.
	Skipped
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// RunFlag tracks whether the loop engine is running. By calling Stop, a
// command signals the termination of the application; the loop engine
// observes the flag at the next iteration boundary, never preemptively.
// The zero value is stopped.
type RunFlag struct {
	running bool
}

// Start signals a start.
func (f *RunFlag) Start() {
	f.running = true
}

// Stop signals a stop.
func (f *RunFlag) Stop() {
	f.running = false
}

// IsRunning reports whether the flag is in the running state.
func (f *RunFlag) IsRunning() bool {
	return f.running
}

// Env is the execution environment lent to a command for the duration of
// one loop iteration. It exposes the three independently addressable
// resources of the engine — the terminal device, the compiled command
// table and the caller's application context — plus the run flag through
// which a command can request termination.
//
// C is the application context type; by convention a pointer type, so
// that mutations made inside Apply survive the iteration.
type Env[C any] struct {
	Terminal  terminal.Terminal
	Commander *Commander[C]
	Run       *RunFlag
	Context   C
}

// Command is a short-lived, executable action produced by a successful
// parse. It is applied exactly once and discarded.
//
// Apply reports one of two outcomes on success. On failure it returns an
// error: a *terminal.AccessError is fatal and aborts the loop engine,
// anything else is a recoverable application error that the loop engine
// reports to the user before continuing.
type Command[C any] interface {
	Apply(env *Env[C]) (Outcome, error)
}

// Func adapts a plain function to the Command interface.
type Func[C any] func(env *Env[C]) (Outcome, error)

// Apply implements Command.
func (f Func[C]) Apply(env *Env[C]) (Outcome, error) {
	return f(env)
}

// IsAccessError reports whether err is (or wraps) a terminal access
// failure, the fatal branch of the command error taxonomy.
func IsAccessError(err error) bool {
	var ae *terminal.AccessError
	return errors.As(err, &ae)
}

// ParseError reports that a string could not be parsed into a Command.
type ParseError struct {
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Reason
}

// NewParseError creates a ParseError with the given reason.
func NewParseError(reason string) *ParseError {
	return &ParseError{Reason: reason}
}

// ConvertParseError converts an arbitrary error into a ParseError,
// preserving its message. Mostly used when delegating to strconv and
// similar parsers inside a Parser implementation.
func ConvertParseError(err error) *ParseError {
	return &ParseError{Reason: err.Error()}
}

// Parser is the definition of one named command: it resolves argument
// text into an executable Command and carries the command's identity and
// documentation. Implementations are registered with a Commander once and
// treated as read-only thereafter.
type Parser[C any] interface {
	// Parse maps the raw argument substring (everything after the command
	// identifier, untrimmed) to an executable Command, or fails with a
	// *ParseError.
	Parse(arg string) (Command[C], error)

	// Name is the mandatory, complete name of the command. Must be at
	// least two characters long.
	Name() string

	// Shorthand is an optional short alias the user may type instead of
	// the full name. Empty means no shorthand.
	Shorthand() string

	// Description documents the command for the help listing.
	Description() Description
}

// Description is a comprehensive description of a command.
type Description struct {
	// Purpose states why the command exists. One or more fully punctuated
	// sentences.
	Purpose string

	// Usage is the syntax for arguments, if any. Left blank when the
	// command accepts no arguments. Does not include the command name.
	Usage string

	// Examples holds zero or more usage examples. Should be empty when
	// the command takes no arguments, in which case the example is
	// implied.
	Examples []Example
}

// Example is one example of using a command.
type Example struct {
	// Scenario states what the example fulfils. Part-sentence: starts
	// with a lowercase letter, no trailing period.
	Scenario string

	// Command holds the sample arguments. Does not include the command
	// name.
	Command string
}

// ParseNoArgs is a convenience helper for zero-argument commands: it
// invokes ctor when the argument text is empty, and fails with a
// ParseError otherwise.
func ParseNoArgs[C any](p Parser[C], arg string, ctor func() Command[C]) (Command[C], error) {
	if arg == "" {
		return ctor(), nil
	}
	return nil, NewParseError(fmt.Sprintf("invalid arguments to '%s': '%s'", p.Name(), arg))
}
