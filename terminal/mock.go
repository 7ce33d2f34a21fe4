// File: mock.go
// Title: Mock Terminal Device
// Description: Implements a scriptable Terminal for tests. The mock
//              delegates reads and writes to caller-supplied hooks and
//              journals every invocation in order, so tests can assert on
//              the exact conversation between the engine and the user.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-12
//
// Change History:
// - 2026-07-12 v0.1.0: Initial mock implementation

package terminal

import "strings"

// InvocationKind discriminates the operations journaled by a Mock.
type InvocationKind int

const (
	// InvocationReadLine records a ReadLine call.
	InvocationReadLine InvocationKind = iota

	// InvocationPrint records a Print call.
	InvocationPrint
)

// Invocation is a single journaled call against a Mock. For a Print call,
// Text is the printed string; for a ReadLine call, Text is the line that
// was returned. Err carries the outcome of the call.
type Invocation struct {
	Kind InvocationKind
	Text string
	Err  error
}

// Mock is a Terminal implementation for tests, with delegate hooks for the
// ReadLine and Print operations and an ordered invocation journal.
type Mock struct {
	onReadLine func() (string, error)
	onPrint    func(s string) error

	invocations []Invocation
}

// NewMock creates a Mock whose reads return empty lines and whose prints
// succeed silently. Use OnReadLine and OnPrint to install behaviour.
func NewMock() *Mock {
	return &Mock{
		onReadLine: func() (string, error) { return "", nil },
		onPrint:    func(string) error { return nil },
	}
}

// OnReadLine installs the delegate invoked by ReadLine. Returns the mock
// for chaining.
func (m *Mock) OnReadLine(delegate func() (string, error)) *Mock {
	m.onReadLine = delegate
	return m
}

// OnPrint installs the delegate invoked by Print. Returns the mock for
// chaining.
func (m *Mock) OnPrint(delegate func(s string) error) *Mock {
	m.onPrint = delegate
	return m
}

// Print implements Terminal.
func (m *Mock) Print(s string) error {
	err := m.onPrint(s)
	m.invocations = append(m.invocations, Invocation{Kind: InvocationPrint, Text: s, Err: err})
	return err
}

// ReadLine implements Terminal.
func (m *Mock) ReadLine() (string, error) {
	line, err := m.onReadLine()
	m.invocations = append(m.invocations, Invocation{Kind: InvocationReadLine, Text: line, Err: err})
	return line, err
}

// Invocations lists the calls recorded against this mock, in order.
func (m *Mock) Invocations() []Invocation {
	return m.invocations
}

// Prints lists the printed strings recorded against this mock, in order.
func (m *Mock) Prints() []string {
	var prints []string
	for _, inv := range m.invocations {
		if inv.Kind == InvocationPrint {
			prints = append(prints, inv.Text)
		}
	}
	return prints
}

// Transcript concatenates everything printed to this mock into one string.
func (m *Mock) Transcript() string {
	return strings.Join(m.Prints(), "")
}

// ScriptLines produces a ReadLine delegate that returns one canned line
// per call. Once the script is exhausted, further reads fail with an
// AccessError ("no more lines").
func ScriptLines(lines ...string) func() (string, error) {
	remaining := lines
	return func() (string, error) {
		if len(remaining) == 0 {
			return "", NewAccessError("no more lines")
		}
		line := remaining[0]
		remaining = remaining[1:]
		return line, nil
	}
}
