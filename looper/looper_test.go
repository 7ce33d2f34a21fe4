// File: looper_test.go
// Title: Loop Engine Tests
// Description: Tests the prompt-read-resolve-execute cycle against a mock
//              terminal: prompt selection by last outcome, parse-retry
//              behaviour, error recovery, access-failure propagation and
//              re-entrancy.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-21

package looper

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repliq/repliq/command"
	"github.com/repliq/repliq/core/log"
	"github.com/repliq/repliq/terminal"
)

// counter is the application context for the loop tests.
type counter struct {
	total int
}

// echoCommand prints its number and bumps the context total.
type echoCommand struct {
	number int
}

func (c echoCommand) Apply(env *command.Env[*counter]) (command.Outcome, error) {
	env.Context.total += c.number
	if err := terminal.PrintLine(env.Terminal, fmt.Sprintf("the number is %d", c.number)); err != nil {
		return 0, err
	}
	return command.Applied, nil
}

type echoParser struct{}

func (echoParser) Parse(arg string) (command.Command[*counter], error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, command.ConvertParseError(err)
	}
	return echoCommand{number: n}, nil
}

func (echoParser) Shorthand() string { return "e" }
func (echoParser) Name() string      { return "echo" }

func (echoParser) Description() command.Description {
	return command.Description{
		Purpose: "Echoes a number.",
		Usage:   "<number>",
		Examples: []command.Example{
			{Scenario: "echoes the number 42", Command: "42"},
		},
	}
}

// skipCommand does nothing and reports it did nothing.
type skipCommand struct{}

func (skipCommand) Apply(env *command.Env[*counter]) (command.Outcome, error) {
	return command.Skipped, nil
}

type skipParser struct{}

func (p skipParser) Parse(arg string) (command.Command[*counter], error) {
	return command.ParseNoArgs[*counter](p, arg, func() command.Command[*counter] {
		return skipCommand{}
	})
}

func (skipParser) Shorthand() string { return "" }
func (skipParser) Name() string      { return "skip" }

func (skipParser) Description() command.Description {
	return command.Description{Purpose: "Does nothing."}
}

// respondCommand fails with a configurable error.
type respondCommand struct {
	err error
}

func (c respondCommand) Apply(env *command.Env[*counter]) (command.Outcome, error) {
	return 0, c.err
}

type respondParser struct {
	err error
}

func (p respondParser) Parse(arg string) (command.Command[*counter], error) {
	return command.ParseNoArgs[*counter](p, arg, func() command.Command[*counter] {
		return respondCommand{err: p.err}
	})
}

func (respondParser) Shorthand() string { return "r" }
func (respondParser) Name() string      { return "respond" }

func (respondParser) Description() command.Description {
	return command.Description{Purpose: "Fails on purpose."}
}

func newLooper(t *testing.T, mock *terminal.Mock, extra ...command.Parser[*counter]) *Looper[*counter] {
	t.Helper()
	parsers := append([]command.Parser[*counter]{
		echoParser{},
		skipParser{},
		command.QuitParser[*counter]{},
	}, extra...)
	commander, err := command.NewCommander(parsers, command.Options{Logger: log.Nop()})
	require.NoError(t, err)
	return New[*counter](mock, commander, &counter{}, Options{Logger: log.Nop()})
}

func TestDefaultPrompts(t *testing.T) {
	assert.Equal(t, Prompts{Applied: "+>> ", Skipped: "->> ", Erred: "!>> "}, DefaultPrompts())
}

func TestNewFillsPromptDefaultsPerField(t *testing.T) {
	commander, err := command.NewCommander([]command.Parser[*counter]{
		command.QuitParser[*counter]{},
	}, command.Options{Logger: log.Nop()})
	require.NoError(t, err)

	loop := New[*counter](terminal.NewMock(), commander, &counter{}, Options{
		Logger:  log.Nop(),
		Prompts: Prompts{Erred: "?? "},
	})
	assert.Equal(t, Prompts{Applied: "+>> ", Skipped: "->> ", Erred: "?? "}, loop.prompts)
}

func TestRunEchoesUntilQuit(t *testing.T) {
	mock := terminal.NewMock().OnReadLine(terminal.ScriptLines("echo 1", "echo 2", "quit"))
	loop := newLooper(t, mock)

	require.NoError(t, loop.Run())

	assert.Equal(t, []terminal.Invocation{
		{Kind: terminal.InvocationPrint, Text: "+>> "},
		{Kind: terminal.InvocationReadLine, Text: "echo 1"},
		{Kind: terminal.InvocationPrint, Text: "the number is 1\n"},
		{Kind: terminal.InvocationPrint, Text: "+>> "},
		{Kind: terminal.InvocationReadLine, Text: "echo 2"},
		{Kind: terminal.InvocationPrint, Text: "the number is 2\n"},
		{Kind: terminal.InvocationPrint, Text: "+>> "},
		{Kind: terminal.InvocationReadLine, Text: "quit"},
		{Kind: terminal.InvocationPrint, Text: "Exiting.\n"},
	}, mock.Invocations())

	assert.Equal(t, 3, loop.Context().total)
}

func TestRunResolvesShorthandAndTrimsInput(t *testing.T) {
	mock := terminal.NewMock().OnReadLine(terminal.ScriptLines("  e 5  ", "q"))
	loop := newLooper(t, mock)

	require.NoError(t, loop.Run())
	assert.Equal(t, 5, loop.Context().total)
	assert.Contains(t, mock.Prints(), "the number is 5\n")
}

func TestRunRetriesUnresolvableInput(t *testing.T) {
	mock := terminal.NewMock().OnReadLine(terminal.ScriptLines("zzz", "quit"))
	loop := newLooper(t, mock)

	require.NoError(t, loop.Run())

	// A resolution failure is a retry at the same prompt, not a command
	// error.
	assert.Equal(t, []string{
		"+>> ",
		"Invalid input: no command parser for 'zzz'.\n",
		"+>> ",
		"Exiting.\n",
	}, mock.Prints())
}

func TestRunRetriesUnparsableArguments(t *testing.T) {
	mock := terminal.NewMock().OnReadLine(terminal.ScriptLines("echo five", "quit"))
	loop := newLooper(t, mock)

	require.NoError(t, loop.Run())
	assert.Equal(t, []string{
		"+>> ",
		"Invalid input: strconv.Atoi: parsing \"five\": invalid syntax.\n",
		"+>> ",
		"Exiting.\n",
	}, mock.Prints())
}

func TestRunPromptReflectsSkippedOutcome(t *testing.T) {
	mock := terminal.NewMock().OnReadLine(terminal.ScriptLines("skip", "echo 1", "quit"))
	loop := newLooper(t, mock)

	require.NoError(t, loop.Run())
	assert.Equal(t, []string{
		"+>> ",
		"->> ",
		"the number is 1\n",
		"+>> ",
		"Exiting.\n",
	}, mock.Prints())
}

func TestRunRecoversFromApplicationError(t *testing.T) {
	mock := terminal.NewMock().OnReadLine(terminal.ScriptLines("respond", "quit"))
	loop := newLooper(t, mock, respondParser{err: errors.New("cooling pump exploded")})

	require.NoError(t, loop.Run())
	assert.Equal(t, []string{
		"+>> ",
		"Command error: cooling pump exploded.\n",
		"!>> ",
		"Exiting.\n",
	}, mock.Prints())
}

func TestRunPropagatesAccessErrorFromCommand(t *testing.T) {
	boom := terminal.NewAccessError("terminal meltdown")
	mock := terminal.NewMock().OnReadLine(terminal.ScriptLines("respond"))
	loop := newLooper(t, mock, respondParser{err: boom})

	err := loop.Run()
	assert.ErrorIs(t, err, boom)

	// The loop stops immediately: no error message, no further prompt.
	assert.Equal(t, []terminal.Invocation{
		{Kind: terminal.InvocationPrint, Text: "+>> "},
		{Kind: terminal.InvocationReadLine, Text: "respond"},
	}, mock.Invocations())
}

func TestRunPropagatesWrappedAccessError(t *testing.T) {
	boom := terminal.NewAccessError("terminal meltdown")
	wrapped := fmt.Errorf("while greeting: %w", boom)
	mock := terminal.NewMock().OnReadLine(terminal.ScriptLines("respond"))
	loop := newLooper(t, mock, respondParser{err: wrapped})

	err := loop.Run()
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, mock.Prints(), "Command error: while greeting: terminal meltdown.\n")
}

func TestRunPropagatesReadFailure(t *testing.T) {
	mock := terminal.NewMock().OnReadLine(terminal.ScriptLines("echo 1"))
	loop := newLooper(t, mock)

	err := loop.Run()
	require.Error(t, err)
	assert.EqualError(t, err, "no more lines")
	assert.True(t, command.IsAccessError(err))
}

func TestRunPropagatesErrorReportFailure(t *testing.T) {
	boom := terminal.NewAccessError("ink cartridge empty")
	prints := 0
	mock := terminal.NewMock().
		OnReadLine(terminal.ScriptLines("respond")).
		OnPrint(func(s string) error {
			prints++
			if prints > 1 {
				return boom
			}
			return nil
		})
	loop := newLooper(t, mock, respondParser{err: errors.New("cooling pump exploded")})

	err := loop.Run()
	assert.ErrorIs(t, err, boom)
}

func TestRunIsReentrant(t *testing.T) {
	mock := terminal.NewMock().OnReadLine(terminal.ScriptLines("echo 1", "quit", "echo 2", "quit"))
	loop := newLooper(t, mock)

	require.NoError(t, loop.Run())
	require.NoError(t, loop.Run())

	// The context carries over between runs.
	assert.Equal(t, 3, loop.Context().total)
}

func TestAccessors(t *testing.T) {
	mock := terminal.NewMock()
	loop := newLooper(t, mock)

	assert.Same(t, mock, loop.Terminal())
	assert.NotNil(t, loop.Commander())
	assert.NotNil(t, loop.Context())
}
