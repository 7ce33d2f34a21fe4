// File: help.go
// Title: Built-In Help Command
// Description: A self-help guide outlining the available commands and how
//              to use them. The list of commands is obtained by
//              interrogating the Commander; output is a rendered two-column
//              table enumerating each command, its name (and shorthand, if
//              set) and its description, including any examples.
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-21
//
// Change History:
// - 2026-07-14 v0.1.0: Initial help command
// - 2026-07-21 v0.1.1: Suppress colors when stdout is not a TTY

package command

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/repliq/repliq/terminal"
)

// Help is the built-in `help` command.
type Help[C any] struct{}

// Apply implements Command by printing the command table.
func (Help[C]) Apply(env *Env[C]) (Outcome, error) {
	if err := terminal.PrintLine(env.Terminal, RenderCommandTable(env.Commander)); err != nil {
		return 0, err
	}
	return Applied, nil
}

// HelpParser is the parser for the built-in `help` command.
type HelpParser[C any] struct{}

// Parse implements Parser.
func (p HelpParser[C]) Parse(arg string) (Command[C], error) {
	return ParseNoArgs[C](p, arg, func() Command[C] { return Help[C]{} })
}

// Shorthand implements Parser.
func (HelpParser[C]) Shorthand() string {
	return "h"
}

// Name implements Parser.
func (HelpParser[C]) Name() string {
	return "help"
}

// Description implements Parser.
func (HelpParser[C]) Description() Description {
	return Description{
		Purpose: "Displays a list of commands, their usage syntax and examples.",
	}
}

// RenderCommandTable renders the commander's parsers, in name-sorted
// order, into a two-column table. Colors are applied only when stdout is
// a TTY.
func RenderCommandTable[C any](c *Commander[C]) string {
	colored := isatty.IsTerminal(os.Stdout.Fd())

	headerStyle := lipgloss.NewStyle().Bold(true)
	commandStyle := lipgloss.NewStyle()
	descriptionStyle := lipgloss.NewStyle()
	if colored {
		headerStyle = headerStyle.Foreground(lipgloss.Color("11"))  // yellow
		commandStyle = commandStyle.Foreground(lipgloss.Color("10")) // green
	}

	rows := make([][]string, 0, c.Len())
	for _, parser := range c.Parsers() {
		rows = append(rows, []string{commandCell(parser), descriptionCell(parser)})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case col == 0:
				style = commandStyle
			default:
				style = descriptionStyle
			}
			if col == 0 {
				return style.Width(15).PaddingRight(2)
			}
			return style.Width(80)
		}).
		Headers("Command", "Description").
		Rows(rows...)

	return tbl.Render()
}

func commandCell[C any](parser Parser[C]) string {
	if shorthand := parser.Shorthand(); shorthand != "" {
		return shorthand + ", " + parser.Name()
	}
	return parser.Name()
}

func descriptionCell[C any](parser Parser[C]) string {
	desc := parser.Description()
	var b strings.Builder
	b.WriteString(desc.Purpose)
	b.WriteString("\nusage: ")
	b.WriteString(strings.TrimRight(parser.Name()+" "+desc.Usage, " "))
	for _, example := range desc.Examples {
		b.WriteString("\nexample - ")
		b.WriteString(example.Scenario)
		b.WriteString(":\n    ")
		b.WriteString(parser.Name())
		b.WriteString(" ")
		b.WriteString(example.Command)
	}
	return b.String()
}
