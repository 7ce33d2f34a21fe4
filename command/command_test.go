// File: command_test.go
// Title: Command Lifecycle Tests
// Description: Tests the outcome/error taxonomy, the run flag, the
//              zero-argument parse helper and the Func adapter.
// Version: v0.1.0
// Created: 2026-07-13
// Modified: 2026-07-13

package command

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repliq/repliq/terminal"
)

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "applied", Applied.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

func TestRunFlag(t *testing.T) {
	var flag RunFlag
	assert.False(t, flag.IsRunning(), "zero value must be stopped")

	flag.Start()
	assert.True(t, flag.IsRunning())

	flag.Stop()
	assert.False(t, flag.IsRunning())
}

func TestParseNoArgs(t *testing.T) {
	p := sampleParser{}

	cmd, err := ParseNoArgs[*testContext](p, "", func() Command[*testContext] {
		return sampleCommand{}
	})
	require.NoError(t, err)
	assert.NotNil(t, cmd)

	cmd, err = ParseNoArgs[*testContext](p, "extra", func() Command[*testContext] {
		return sampleCommand{}
	})
	assert.Nil(t, cmd)
	assert.EqualError(t, err, "invalid arguments to 'sample': 'extra'")
}

func TestIsAccessError(t *testing.T) {
	access := terminal.NewAccessError("terminal meltdown")

	assert.True(t, IsAccessError(access))
	assert.True(t, IsAccessError(fmt.Errorf("while printing: %w", access)))
	assert.False(t, IsAccessError(errors.New("cooling pump exploded")))
	assert.False(t, IsAccessError(nil))
}

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, &SpecError{Reason: "foo"}, "foo")
	assert.EqualError(t, NewParseError("foo"), "foo")
	assert.EqualError(t, ConvertParseError(errors.New("bar")), "bar")
}

func TestFuncAdapter(t *testing.T) {
	called := false
	cmd := Func[*testContext](func(env *Env[*testContext]) (Outcome, error) {
		called = true
		env.Context.state++
		return Skipped, nil
	})

	ctx := &testContext{}
	outcome, err := cmd.Apply(&Env[*testContext]{Context: ctx})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, Skipped, outcome)
	assert.Equal(t, 1, ctx.state)
}
