// File: streaming.go
// Title: Streaming Terminal Device
// Description: Implements a Terminal over stream-like input/output
//              abstractions. Out-of-the-box adapters exist for stdin and
//              stdout; custom adapters may be supplied to interface with
//              nonstandard streams.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-12
//
// Change History:
// - 2026-07-12 v0.1.0: Initial streaming implementation

package terminal

import (
	"bufio"
	"fmt"
	"os"
)

// Input is the piecewise abstraction over an input device.
type Input interface {
	// ReadLine reads a complete line from the underlying stream, blocking
	// until input becomes available.
	ReadLine() (string, error)
}

// Output is the piecewise abstraction over an output device.
type Output interface {
	// Print writes a string to the underlying stream.
	Print(s string) error
}

// InputFunc adapts a plain function to the Input interface.
type InputFunc func() (string, error)

// ReadLine implements Input.
func (f InputFunc) ReadLine() (string, error) {
	return f()
}

// OutputFunc adapts a plain function to the Output interface.
type OutputFunc func(s string) error

// Print implements Output.
func (f OutputFunc) Print(s string) error {
	return f(s)
}

// Streaming is a Terminal implementation composed over Input and Output
// stream abstractions.
type Streaming struct {
	In  Input
	Out Output
}

// NewStreaming creates a Streaming terminal over the given input and
// output adapters.
func NewStreaming(in Input, out Output) *Streaming {
	return &Streaming{In: in, Out: out}
}

// NewStdio creates a Streaming terminal bound to the stdin and stdout of
// the current process.
func NewStdio() *Streaming {
	reader := bufio.NewReader(os.Stdin)
	return &Streaming{
		In: InputFunc(func() (string, error) {
			line, err := reader.ReadString('\n')
			if err != nil {
				return "", WrapAccessError(err)
			}
			return line, nil
		}),
		Out: OutputFunc(func(s string) error {
			if _, err := fmt.Fprint(os.Stdout, s); err != nil {
				return WrapAccessError(err)
			}
			return nil
		}),
	}
}

// Print implements Terminal.
func (s *Streaming) Print(out string) error {
	return WrapAccessError(s.Out.Print(out))
}

// ReadLine implements Terminal.
func (s *Streaming) ReadLine() (string, error) {
	line, err := s.In.ReadLine()
	if err != nil {
		return "", WrapAccessError(err)
	}
	return line, nil
}
