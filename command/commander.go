// File: commander.go
// Title: Command Registry and Dispatcher
// Description: Compiles a set of command parsers into a conflict-free
//              dispatch table and resolves raw input lines into executable
//              commands. Construction validates structural rules (name
//              length, shorthand/name collisions, parsable examples) and
//              is all-or-nothing.
// Version: v0.1.0
// Created: 2026-07-13
// Modified: 2026-07-13
//
// Change History:
// - 2026-07-13 v0.1.0: Initial dispatcher implementation

package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/repliq/repliq/core/log"
)

// SpecError reports that there was something wrong with the parsers given
// to a Commander: incorrectly specified, or conflicting amongst
// themselves.
type SpecError struct {
	Reason string
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	return e.Reason
}

// Options configures Commander construction.
type Options struct {
	// Logger for registry diagnostics (optional, defaults to the default
	// logger).
	Logger *log.Logger
}

// Commander decodes user input (typically a line read from a terminal
// device) into an executable Command, using a preconfigured table of
// parsers. The table is built once at construction and read-only
// afterwards.
type Commander[C any] struct {
	parsers     []Parser[C]
	byShorthand map[string]int
	byName      map[string]int
	sortedNames []string
	logger      *log.Logger
}

// NewCommander compiles the given parsers into a Commander. For each
// parser, in order, it asserts that every documented example parses, that
// the shorthand (if any) collides with no registered name or shorthand,
// that the name is at least two characters long, and that the name
// collides with no registered shorthand or name. Any violation aborts
// construction with a *SpecError.
func NewCommander[C any](parsers []Parser[C], opts Options) (*Commander[C], error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	logger := opts.Logger.WithField("component", "commander")

	byShorthand := make(map[string]int)
	byName := make(map[string]int)

	for index, parser := range parsers {
		for _, example := range parser.Description().Examples {
			if _, err := parser.Parse(example.Command); err != nil {
				return nil, &SpecError{Reason: fmt.Sprintf(
					"unparsable example command '%s': %s", example.Command, err)}
			}
		}

		if shorthand := parser.Shorthand(); shorthand != "" {
			if _, taken := byName[shorthand]; taken {
				return nil, duplicateError(shorthand)
			}
			if _, taken := byShorthand[shorthand]; taken {
				return nil, duplicateError(shorthand)
			}
			byShorthand[shorthand] = index
		}

		name := parser.Name()
		if len(name) < 2 {
			return nil, &SpecError{Reason: fmt.Sprintf(
				"invalid command name '%s': must contain at least 2 characters", name)}
		}
		if _, taken := byShorthand[name]; taken {
			return nil, duplicateError(name)
		}
		if _, taken := byName[name]; taken {
			return nil, duplicateError(name)
		}
		byName[name] = index
	}

	sortedNames := make([]string, 0, len(byName))
	for name := range byName {
		sortedNames = append(sortedNames, name)
	}
	sort.Strings(sortedNames)

	logger.Debug("command table compiled", log.Fields{
		"commands":   len(byName),
		"shorthands": len(byShorthand),
	})

	return &Commander[C]{
		parsers:     parsers,
		byShorthand: byShorthand,
		byName:      byName,
		sortedNames: sortedNames,
		logger:      logger,
	}, nil
}

// MustCommander is like NewCommander but panics on a spec error. Intended
// for static command sets whose validity is guaranteed by the definition
// authors' own tests.
func MustCommander[C any](parsers []Parser[C], opts Options) *Commander[C] {
	c, err := NewCommander(parsers, opts)
	if err != nil {
		panic(err)
	}
	return c
}

func duplicateError(key string) *SpecError {
	return &SpecError{Reason: fmt.Sprintf("duplicate command parser for '%s'", key)}
}

// Parse resolves the given input line into an executable Command.
//
// The input should be in the form "<identifier> [<args>]" where
// <identifier> is either a registered full name or a registered
// shorthand. The argument fragment (everything after the first space) is
// handed to the matched parser verbatim, without trimming.
func (c *Commander[C]) Parse(input string) (Command[C], error) {
	if input == "" {
		return nil, NewParseError("empty command string")
	}

	identifier, frag := input, ""
	if i := strings.IndexByte(input, ' '); i >= 0 {
		identifier, frag = input[:i], input[i+1:]
	}

	index, ok := c.byShorthand[identifier]
	if !ok {
		index, ok = c.byName[identifier]
	}
	if !ok {
		return nil, NewParseError(fmt.Sprintf("no command parser for '%s'", identifier))
	}

	return c.parsers[index].Parse(frag)
}

// Parsers lists the registered parsers in name-sorted order, independent
// of registration order. Used for help/listing purposes.
func (c *Commander[C]) Parsers() []Parser[C] {
	out := make([]Parser[C], 0, len(c.sortedNames))
	for _, name := range c.sortedNames {
		out = append(out, c.parsers[c.byName[name]])
	}
	return out
}

// Len returns the number of registered commands.
func (c *Commander[C]) Len() int {
	return len(c.byName)
}
