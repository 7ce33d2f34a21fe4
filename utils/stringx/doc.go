// File: doc.go
// Title: Stringx Package Documentation
// Description: Documents the shared string predicates.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-12
//
// Change History:
// - 2026-07-12 v0.1.0: Initial package documentation

// Package stringx provides small, Unicode-aware string predicates used
// by the command lint engine and the configuration loader.
package stringx
