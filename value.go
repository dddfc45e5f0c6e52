package qlam

// Value is a disjoint union of a classical Term not yet collapsed to
// a superposition, or a Superposition (spec §3). Grounded on
// original_source/src/term.rs's Value enum (Value::Term /
// Value::Superpos).
type Value interface {
	String() string
	value()
}

// TermValue wraps a classical term that has not (yet) branched into a
// superposition.
type TermValue struct {
	Term Term
}

// SuperposValue wraps a quantum superposition of terms.
type SuperposValue struct {
	Superposition Superposition
}

func (TermValue) value()     {}
func (SuperposValue) value() {}

func (v TermValue) String() string     { return v.Term.String() }
func (v SuperposValue) String() string { return v.Superposition.String() }
