// File: doc.go
// Title: Log Package Documentation
// Description: Documents the structured logging facade shared by all
//              components of the module.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-12
//
// Change History:
// - 2026-07-12 v0.1.0: Initial package documentation

/*
Package log provides a thin structured logging facade over uber-go/zap.

Components take a *Logger through their Options and attach contextual
fields with WithField/WithFields. Construction is configured through
Config (level, console or JSON encoding, output writer, logger name);
Nop returns a silent logger for tests and optional wiring.
*/
package log
