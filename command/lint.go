// File: lint.go
// Title: Description Lint Engine
// Description: Pure, stateless validation of a command's documentation
//              against the conventions the help listing relies on. All
//              violations are collected, not short-circuited. Typically
//              invoked from the definition author's own tests rather than
//              at runtime.
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-14
//
// Change History:
// - 2026-07-14 v0.1.0: Initial lint engine

package command

import (
	"slices"
	"strings"
	"testing"
	"unicode"

	"github.com/repliq/repliq/utils/stringx"
)

// Lint identifies one independently checkable documentation-quality rule
// violated during validation.
type Lint int

const (
	PurposeHasExcessWhitespace Lint = iota
	PurposeIsEmpty
	PurposeDoesNotBeginWithUppercase
	PurposeDoesNotEndWithPeriod
	UsageHasExcessWhitespace
	UsageBeginsWithCommandName
	ExampleScenarioHasExcessWhitespace
	ExampleScenarioIsEmpty
	ExampleScenarioBeginsWithUppercase
	ExampleScenarioEndsWithPeriod
	ExampleCommandHasExcessWhitespace
	ExampleCommandIsEmpty
	ExampleCommandBeginsWithCommandName
)

var lintNames = map[Lint]string{
	PurposeHasExcessWhitespace:          "PurposeHasExcessWhitespace",
	PurposeIsEmpty:                      "PurposeIsEmpty",
	PurposeDoesNotBeginWithUppercase:    "PurposeDoesNotBeginWithUppercase",
	PurposeDoesNotEndWithPeriod:         "PurposeDoesNotEndWithPeriod",
	UsageHasExcessWhitespace:            "UsageHasExcessWhitespace",
	UsageBeginsWithCommandName:          "UsageBeginsWithCommandName",
	ExampleScenarioHasExcessWhitespace:  "ExampleScenarioHasExcessWhitespace",
	ExampleScenarioIsEmpty:              "ExampleScenarioIsEmpty",
	ExampleScenarioBeginsWithUppercase:  "ExampleScenarioBeginsWithUppercase",
	ExampleScenarioEndsWithPeriod:       "ExampleScenarioEndsWithPeriod",
	ExampleCommandHasExcessWhitespace:   "ExampleCommandHasExcessWhitespace",
	ExampleCommandIsEmpty:               "ExampleCommandIsEmpty",
	ExampleCommandBeginsWithCommandName: "ExampleCommandBeginsWithCommandName",
}

// String returns the name of the lint.
func (l Lint) String() string {
	if name, ok := lintNames[l]; ok {
		return name
	}
	return "UnknownLint"
}

// check appends the lint to failed when the condition does not hold, and
// returns the condition so dependent rules can be skipped.
func (l Lint) check(condition bool, failed *[]Lint) bool {
	if !condition {
		*failed = append(*failed, l)
	}
	return condition
}

// Validate checks that the parser's documentation is correctly
// formulated, returning the ordered list of violated lints. An empty list
// means fully compliant.
func Validate[C any](p Parser[C]) []Lint {
	var failed []Lint
	validateDescription(p.Name(), p.Description(), &failed)
	return failed
}

// AssertLints fails the test if validation of the parser raises any lint.
// The failure message names the first violated lint (possibly among many).
func AssertLints[C any](tb testing.TB, p Parser[C]) {
	tb.Helper()
	AssertLintsExcluding(tb, p)
}

// AssertLintsExcluding fails the test if validation of the parser raises
// a lint outside the exclusions list.
func AssertLintsExcluding[C any](tb testing.TB, p Parser[C], exclusions ...Lint) {
	tb.Helper()
	for _, failed := range Validate(p) {
		if !slices.Contains(exclusions, failed) {
			tb.Fatalf("failed lint: %v", failed)
		}
	}
}

func validateDescription(commandName string, desc Description, failed *[]Lint) {
	purpose, usage := desc.Purpose, desc.Usage

	PurposeHasExcessWhitespace.check(stringx.IsTrimmed(purpose), failed)
	if PurposeIsEmpty.check(purpose != "", failed) {
		first, _ := stringx.FirstRune(purpose)
		last, _ := stringx.LastRune(purpose)
		PurposeDoesNotBeginWithUppercase.check(unicode.IsUpper(first), failed)
		PurposeDoesNotEndWithPeriod.check(last == '.', failed)
	}

	UsageHasExcessWhitespace.check(stringx.IsTrimmed(usage), failed)
	if usage != "" {
		UsageBeginsWithCommandName.check(!strings.HasPrefix(usage, commandName), failed)
	}

	for _, example := range desc.Examples {
		validateExample(commandName, example, failed)
	}
}

func validateExample(commandName string, ex Example, failed *[]Lint) {
	scenario, cmd := ex.Scenario, ex.Command

	ExampleScenarioHasExcessWhitespace.check(stringx.IsTrimmed(scenario), failed)
	if ExampleScenarioIsEmpty.check(scenario != "", failed) {
		first, _ := stringx.FirstRune(scenario)
		last, _ := stringx.LastRune(scenario)
		ExampleScenarioBeginsWithUppercase.check(!unicode.IsUpper(first), failed)
		ExampleScenarioEndsWithPeriod.check(last != '.', failed)
	}

	ExampleCommandHasExcessWhitespace.check(stringx.IsTrimmed(cmd), failed)
	if ExampleCommandIsEmpty.check(cmd != "", failed) {
		ExampleCommandBeginsWithCommandName.check(!strings.HasPrefix(cmd, commandName), failed)
	}
}
