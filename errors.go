package qlam

import "fmt"

// Error kinds per spec §7. Each carries a human-readable payload and
// is never used for control flow beyond the REPL's "print and
// continue" policy. Grounded on original_source/src/term.rs's
// EvalError enum and parser.rs's ParseError enum, translated from
// Rust enum variants to Go's idiomatic "one struct type per kind,
// each implementing error" pattern, in the spirit of the teacher's
// own preference for small, pattern-matchable value types.

// LinearityViolationError reports that a linear variable was unused,
// duplicated, or escaped into a Bang suspension.
type LinearityViolationError struct {
	Variable string
	Reason   string
}

func (e *LinearityViolationError) Error() string {
	return fmt.Sprintf("linearity violation: variable %q %s", e.Variable, e.Reason)
}

// BadApplicationError reports beta-reduction attempted on a non-lambda
// LHS, or a nonlinear lambda applied to a non-bang argument.
type BadApplicationError struct {
	Detail string
}

func (e *BadApplicationError) Error() string {
	return fmt.Sprintf("bad application: %s", e.Detail)
}

// BadGateError reports a gate applied to the wrong arity, a non-ket
// operand, or an unknown gate symbol.
type BadGateError struct {
	Detail string
}

func (e *BadGateError) Error() string {
	return fmt.Sprintf("bad gate: %s", e.Detail)
}

// UndefinedSymbolError reports a free identifier that survived
// environment expansion.
type UndefinedSymbolError struct {
	Name string
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("undefined symbol: %s", e.Name)
}

// StepLimitError reports that evaluation was aborted after exhausting
// its configured reduction-step budget (spec §9 open question).
type StepLimitError struct {
	Steps int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("reached step limit (%d steps) without a normal form", e.Steps)
}

// ParseError reports a syntactic problem in surface-syntax input,
// grounded on original_source/src/parser.rs's ParseError enum.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Message)
}

// CircuitError reports an empty circuit file, an invalid character, or
// a layer width mismatch, grounded on
// original_source/src/circuit.rs's CircuitError enum.
type CircuitError struct {
	Message string
}

func (e *CircuitError) Error() string {
	return fmt.Sprintf("circuit error: %s", e.Message)
}
