// File: doc.go
// Title: Looper Package Documentation
// Description: Documents the loop engine that repeatedly prompts, reads,
//              resolves and executes commands until told to stop.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Change History:
// - 2026-07-15 v0.1.0: Initial package documentation

/*
Package looper provides the mechanism for iteratively running commands
based on successive user input. It fulfils the 'loop' part of a REPL
application.

Each iteration chooses a prompt from the outcome of the last command,
reads and resolves one line through the Commander, executes the resolved
command with a fresh execution environment, and reacts to the outcome.
Termination is cooperative: a command stops the shared run flag and the
loop observes it at the next iteration boundary.
*/
package looper
