// File: doc.go
// Title: Terminal Package Documentation
// Description: Documents the terminal capability consumed by the REPL
//              engine: the abstract device specification, the streaming
//              stdin/stdout implementation and the scriptable mock.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-12
//
// Change History:
// - 2026-07-12 v0.1.0: Initial package documentation

/*
Package terminal provides the abstract, text-based interface with the user.
It fulfils the 'read' and 'print' parts of a REPL application.

The package provides:

  • The Terminal specification: print a string, block-read one line
  • ReadValue, a prompt-until-parses helper layered on any Terminal
  • Streaming, a Terminal over stdin/stdout or custom stream adapters
  • Mock, a scriptable Terminal with an invocation journal for tests

All failures surface as *AccessError, the single unrecoverable I/O
failure kind of the engine.
*/
package terminal
