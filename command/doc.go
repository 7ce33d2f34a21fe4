// File: doc.go
// Title: Command Package Documentation
// Description: Documents the command lifecycle contract, the registry that
//              compiles parsers into a dispatch table, the description lint
//              engine and the built-in help/quit commands.
// Version: v0.1.0
// Created: 2026-07-13
// Modified: 2026-07-14
//
// Change History:
// - 2026-07-13 v0.1.0: Initial package documentation

/*
Package command specifies executable commands and the machinery that
builds them from user input. It fulfils the 'eval' part of a REPL
application.

The package provides:

  • The Command lifecycle contract (Apply -> Applied | Skipped | error)
  • The Parser definition of one named command and its documentation
  • The Commander, a compiled, conflict-free dispatch table
  • The description lint engine for definition authors' tests
  • The built-in help and quit commands

Commands report failure through ordinary errors: a
*terminal.AccessError is fatal to the loop engine, anything else is a
recoverable application error.
*/
package command
