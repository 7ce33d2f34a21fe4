// File: quit.go
// Title: Built-In Quit Command
// Description: A command for terminating the REPL. Once applied, it stops
//              the run flag; when control returns to the loop engine, the
//              engine observes the stopped flag and returns from the loop.
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-14
//
// Change History:
// - 2026-07-14 v0.1.0: Initial quit command

package command

import "github.com/repliq/repliq/terminal"

// Quit is the built-in `quit` command.
type Quit[C any] struct{}

// Apply implements Command by stopping the run flag. The loop exits after
// this command finishes, not preemptively.
func (Quit[C]) Apply(env *Env[C]) (Outcome, error) {
	env.Run.Stop()
	if err := terminal.PrintLine(env.Terminal, "Exiting."); err != nil {
		return 0, err
	}
	return Applied, nil
}

// QuitParser is the parser for the built-in `quit` command.
type QuitParser[C any] struct{}

// Parse implements Parser.
func (p QuitParser[C]) Parse(arg string) (Command[C], error) {
	return ParseNoArgs[C](p, arg, func() Command[C] { return Quit[C]{} })
}

// Shorthand implements Parser.
func (QuitParser[C]) Shorthand() string {
	return "q"
}

// Name implements Parser.
func (QuitParser[C]) Name() string {
	return "quit"
}

// Description implements Parser.
func (QuitParser[C]) Description() Description {
	return Description{
		Purpose: "Exits the program.",
	}
}
