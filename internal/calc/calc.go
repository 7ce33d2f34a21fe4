// File: calc.go
// Title: Calculator REPL Commands
// Description: An example consumer of the REPL engine: a single float64
//              register manipulated through add, subtract and print
//              commands, plus the built-in help and quit commands.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial calculator commands

package calc

import (
	"fmt"
	"strconv"

	"github.com/repliq/repliq/command"
	"github.com/repliq/repliq/terminal"
)

// Register is the calculator's application context: a single value that
// commands mutate and print.
type Register struct {
	Value float64
}

// Print writes the contents of the register to the terminal.
func (r *Register) Print(t terminal.Terminal) error {
	return terminal.PrintLine(t, fmt.Sprintf("register = %v", r.Value))
}

// Parsers returns the calculator's full parser set, including the
// built-in help and quit commands.
func Parsers() []command.Parser[*Register] {
	return []command.Parser[*Register]{
		AddParser{},
		PrintParser{},
		SubtractParser{},
		command.HelpParser[*Register]{},
		command.QuitParser[*Register]{},
	}
}

// NewCommander compiles the calculator's command table.
func NewCommander(opts command.Options) (*command.Commander[*Register], error) {
	return command.NewCommander(Parsers(), opts)
}

type addCommand struct {
	value float64
}

func (c *addCommand) Apply(env *command.Env[*Register]) (command.Outcome, error) {
	env.Context.Value += c.value
	if err := env.Context.Print(env.Terminal); err != nil {
		return 0, err
	}
	return command.Applied, nil
}

// AddParser parses the `add` command, which adds a value to the register.
type AddParser struct{}

// Parse implements command.Parser.
func (AddParser) Parse(arg string) (command.Command[*Register], error) {
	value, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, command.ConvertParseError(err)
	}
	return &addCommand{value: value}, nil
}

// Shorthand implements command.Parser.
func (AddParser) Shorthand() string { return "a" }

// Name implements command.Parser.
func (AddParser) Name() string { return "add" }

// Description implements command.Parser.
func (AddParser) Description() command.Description {
	return command.Description{
		Purpose: "Adds a value to the register.",
		Usage:   "<value>",
		Examples: []command.Example{
			{Scenario: "adds 1.5 to the register", Command: "1.5"},
		},
	}
}

type subtractCommand struct {
	value float64
}

func (c *subtractCommand) Apply(env *command.Env[*Register]) (command.Outcome, error) {
	env.Context.Value -= c.value
	if err := env.Context.Print(env.Terminal); err != nil {
		return 0, err
	}
	return command.Applied, nil
}

// SubtractParser parses the `subtract` command, which subtracts a value
// from the register.
type SubtractParser struct{}

// Parse implements command.Parser.
func (SubtractParser) Parse(arg string) (command.Command[*Register], error) {
	value, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, command.ConvertParseError(err)
	}
	return &subtractCommand{value: value}, nil
}

// Shorthand implements command.Parser.
func (SubtractParser) Shorthand() string { return "s" }

// Name implements command.Parser.
func (SubtractParser) Name() string { return "subtract" }

// Description implements command.Parser.
func (SubtractParser) Description() command.Description {
	return command.Description{
		Purpose: "Subtracts a value from the register.",
		Usage:   "<value>",
		Examples: []command.Example{
			{Scenario: "subtracts 1.5 from the register", Command: "1.5"},
		},
	}
}

type printCommand struct{}

func (printCommand) Apply(env *command.Env[*Register]) (command.Outcome, error) {
	if err := env.Context.Print(env.Terminal); err != nil {
		return 0, err
	}
	return command.Applied, nil
}

// PrintParser parses the `print` command, which prints the register
// without changing it.
type PrintParser struct{}

// Parse implements command.Parser.
func (p PrintParser) Parse(arg string) (command.Command[*Register], error) {
	return command.ParseNoArgs[*Register](p, arg, func() command.Command[*Register] {
		return printCommand{}
	})
}

// Shorthand implements command.Parser.
func (PrintParser) Shorthand() string { return "p" }

// Name implements command.Parser.
func (PrintParser) Name() string { return "print" }

// Description implements command.Parser.
func (PrintParser) Description() command.Description {
	return command.Description{
		Purpose: "Prints the contents of the register.",
	}
}
