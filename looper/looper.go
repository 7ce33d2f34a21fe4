// File: looper.go
// Title: Loop Engine / State Machine
// Description: Implements the mechanism for iteratively running commands
//              based on successive user input: prompt, read, resolve,
//              execute, react. Owns the run flag and the prompt selection
//              keyed by the outcome of the last executed command.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-21
//
// Change History:
// - 2026-07-15 v0.1.0: Initial loop engine
// - 2026-07-21 v0.1.1: Session ids in log entries

package looper

import (
	"github.com/google/uuid"

	"github.com/repliq/repliq/command"
	"github.com/repliq/repliq/core/log"
	"github.com/repliq/repliq/terminal"
)

// Prompts holds the three prompt literals, keyed by the outcome of the
// last executed command. The exact strings are a branding concern of the
// caller; the engine only requires three values.
type Prompts struct {
	Applied string
	Skipped string
	Erred   string
}

// DefaultPrompts returns the stock prompt set.
func DefaultPrompts() Prompts {
	return Prompts{
		Applied: "+>> ",
		Skipped: "->> ",
		Erred:   "!>> ",
	}
}

// Options configures a Looper.
type Options struct {
	// Logger for loop diagnostics (optional, defaults to the default
	// logger).
	Logger *log.Logger

	// Prompts overrides the stock prompt set. Empty fields fall back to
	// their defaults individually.
	Prompts Prompts

	// SessionID tags the loop's log entries. Generated when empty.
	SessionID string
}

// Looper controls the main application loop. It encapsulates a Terminal
// for interfacing with the user, a Commander for resolving commands, a
// run flag tracking the state of the application, and a caller-specified
// context representing the rest of the application state.
//
// Strictly single-threaded: one full prompt-read-resolve-execute cycle
// completes before the next read begins.
type Looper[C any] struct {
	terminal  terminal.Terminal
	commander *command.Commander[C]
	run       command.RunFlag
	context   C
	prompts   Prompts
	logger    *log.Logger
	sessionID string
}

// New creates a Looper over the given terminal, commander and application
// context. The context is conventionally a pointer type so that command
// side effects persist across iterations.
func New[C any](t terminal.Terminal, c *command.Commander[C], context C, opts Options) *Looper[C] {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	defaults := DefaultPrompts()
	if opts.Prompts.Applied == "" {
		opts.Prompts.Applied = defaults.Applied
	}
	if opts.Prompts.Skipped == "" {
		opts.Prompts.Skipped = defaults.Skipped
	}
	if opts.Prompts.Erred == "" {
		opts.Prompts.Erred = defaults.Erred
	}

	return &Looper[C]{
		terminal:  t,
		commander: c,
		context:   context,
		prompts:   opts.Prompts,
		logger:    opts.Logger.WithField("component", "looper").WithField("session", opts.SessionID),
		sessionID: opts.SessionID,
	}
}

// Terminal returns the underlying terminal device.
func (l *Looper[C]) Terminal() terminal.Terminal {
	return l.terminal
}

// Commander returns the command dispatch table.
func (l *Looper[C]) Commander() *command.Commander[C] {
	return l.commander
}

// Context returns the application context.
func (l *Looper[C]) Context() C {
	return l.context
}

// lastOutcome tracks the result of the last executed command, used to
// present a slightly different prompt.
type lastOutcome int

const (
	lastApplied lastOutcome = iota
	lastSkipped
	lastErred
)

func (l *Looper[C]) prompt(last lastOutcome) string {
	switch last {
	case lastSkipped:
		return l.prompts.Skipped
	case lastErred:
		return l.prompts.Erred
	default:
		return l.prompts.Applied
	}
}

// Run starts the loop, blocking until one of the commands terminates it
// by stopping the run flag.
//
// A command yielding an application error has the error printed to the
// user ("Command error: <err>.") and the loop continues with the next
// command; only a *terminal.AccessError percolates up the call stack.
//
// Run may be called repeatedly. Calling it after the looper has returned
// starts a new loop, resetting the run flag before the first command. It
// is up to the caller to reset the application context.
func (l *Looper[C]) Run() error {
	l.run.Start()
	last := lastApplied

	l.logger.Info("loop started", log.Fields{"commands": l.commander.Len()})

	for l.run.IsRunning() {
		cmd, err := terminal.ReadValue(l.terminal, l.prompt(last), l.commander.Parse)
		if err != nil {
			l.logger.Error("terminal access failed", log.Fields{"error": err.Error()})
			return err
		}

		env := &command.Env[C]{
			Terminal:  l.terminal,
			Commander: l.commander,
			Run:       &l.run,
			Context:   l.context,
		}

		outcome, err := cmd.Apply(env)
		switch {
		case err == nil:
			if outcome == command.Skipped {
				last = lastSkipped
			} else {
				last = lastApplied
			}
		case command.IsAccessError(err):
			l.logger.Error("terminal access failed", log.Fields{"error": err.Error()})
			return err
		default:
			if perr := terminal.PrintLine(l.terminal, "Command error: "+err.Error()+"."); perr != nil {
				return perr
			}
			l.logger.Debug("command erred", log.Fields{"error": err.Error()})
			last = lastErred
		}
	}

	l.logger.Info("loop stopped")
	return nil
}
