// File: help_test.go
// Title: Help Command Tests
// Description: Tests the built-in help command and the rendered command
//              table content.
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-14

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repliq/repliq/terminal"
)

func TestHelpParserLints(t *testing.T) {
	AssertLints[*testContext](t, HelpParser[*testContext]{})
}

func TestHelpParserRejectsArguments(t *testing.T) {
	_, err := HelpParser[*testContext]{}.Parse("me")
	assert.EqualError(t, err, "invalid arguments to 'help': 'me'")
}

func TestRenderCommandTable(t *testing.T) {
	commander, err := NewCommander([]Parser[*testContext]{
		numberParser{short: "n", long: "number", example: "42"},
		HelpParser[*testContext]{},
		QuitParser[*testContext]{},
	}, nopOptions())
	require.NoError(t, err)

	rendered := RenderCommandTable(commander)

	assert.Contains(t, rendered, "Command")
	assert.Contains(t, rendered, "Description")
	// Shorthand and name joined in the command column, name-sorted.
	assert.Contains(t, rendered, "h, help")
	assert.Contains(t, rendered, "n, number")
	assert.Contains(t, rendered, "q, quit")
	assert.Contains(t, rendered, "Exits the program.")
	// Usage lines carry the command name; examples carry the scenario.
	assert.Contains(t, rendered, "usage: quit")
	assert.Contains(t, rendered, "sample scenario")
}

func TestHelpApplyPrintsTable(t *testing.T) {
	commander, err := NewCommander([]Parser[*testContext]{
		HelpParser[*testContext]{},
		QuitParser[*testContext]{},
	}, nopOptions())
	require.NoError(t, err)

	mock := terminal.NewMock()
	env := &Env[*testContext]{
		Terminal:  mock,
		Commander: commander,
		Run:       &RunFlag{},
		Context:   &testContext{},
	}

	outcome, err := Help[*testContext]{}.Apply(env)
	require.NoError(t, err)
	assert.Equal(t, Applied, outcome)
	assert.Equal(t, RenderCommandTable(commander)+"\n", mock.Transcript())
}

func TestHelpApplyPropagatesPrintFailure(t *testing.T) {
	commander, err := NewCommander([]Parser[*testContext]{
		HelpParser[*testContext]{},
	}, nopOptions())
	require.NoError(t, err)

	boom := terminal.NewAccessError("ink cartridge empty")
	mock := terminal.NewMock().OnPrint(func(string) error { return boom })
	env := &Env[*testContext]{
		Terminal:  mock,
		Commander: commander,
		Run:       &RunFlag{},
		Context:   &testContext{},
	}

	_, err = Help[*testContext]{}.Apply(env)
	assert.ErrorIs(t, err, boom)
}

func TestDescriptionCell(t *testing.T) {
	p := lintParser{
		name: "launch",
		desc: Description{
			Purpose: "Launches the probe.",
			Usage:   "<thrust>",
			Examples: []Example{
				{Scenario: "launches at full thrust", Command: "100"},
			},
		},
	}

	want := "Launches the probe.\n" +
		"usage: launch <thrust>\n" +
		"example - launches at full thrust:\n" +
		"    launch 100"
	assert.Equal(t, want, descriptionCell[*testContext](p))

	// Without usage, the usage line is just the command name.
	bare := lintParser{name: "launch", desc: Description{Purpose: "Launches the probe."}}
	assert.Equal(t, "Launches the probe.\nusage: launch", descriptionCell[*testContext](bare))
}
