// File: stringx.go
// Title: String Predicates
// Description: Implements small string predicates shared by the command
//              lint engine and the configuration loader. Unicode-aware
//              where rune semantics matter (first/last character checks).
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-12
//
// Change History:
// - 2026-07-12 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string has zero length.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or consists entirely of
// whitespace characters.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsTrimmed returns true if the string carries no leading or trailing
// whitespace, i.e. it equals its own trimmed form.
func IsTrimmed(s string) bool {
	return s == strings.TrimSpace(s)
}

// FirstRune returns the first rune of the string. Returns utf8.RuneError
// with a false flag if the string is empty.
func FirstRune(s string) (rune, bool) {
	if len(s) == 0 {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// LastRune returns the last rune of the string. Returns utf8.RuneError
// with a false flag if the string is empty.
func LastRune(s string) (rune, bool) {
	if len(s) == 0 {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r, true
}
