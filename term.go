// Package qlam implements a small quantum lambda calculus: an untyped
// lambda calculus extended with basis kets, a fixed unitary gate set,
// measurement, and a linearity discipline enforcing the no-cloning
// theorem on quantum data.
package qlam

// Term is the interface implemented by every node of the syntax tree.
// It is a closed sum type: Var, Ket, Gate, Meas, Abs, NonlinearAbs,
// App, and Bang are the only implementations.
type Term interface {
	// String renders the term per the surface syntax (§6.4).
	String() string
	term()
}

// Var is a bound or free variable reference.
type Var struct {
	Name string
}

// Ket is a single-qubit computational-basis state, |0⟩ or |1⟩.
type Ket struct {
	Bit bool
}

// Gate is one of the fixed gate symbols {H, C, T}.
type Gate struct {
	Symbol string
}

// Meas is the measurement operator M.
type Meas struct{}

// Abs is a linear abstraction λx.body: Param must occur exactly once
// free in Body.
type Abs struct {
	Param string
	Body  Term
}

// NonlinearAbs is a duplicable abstraction #x.body: Param may occur
// any number of times in Body, including not at all. checkLinearity
// does not restrict where those occurrences appear, so they need not
// be inside a Bang suspension.
type NonlinearAbs struct {
	Param string
	Body  Term
}

// App is function application (f a).
type App struct {
	Func Term
	Arg  Term
}

// Bang is the "!" suspension marking a term as duplicable.
type Bang struct {
	Inner Term
}

func (Var) term()          {}
func (Ket) term()          {}
func (Gate) term()         {}
func (Meas) term()         {}
func (Abs) term()          {}
func (NonlinearAbs) term() {}
func (App) term()          {}
func (Bang) term()         {}

// KetZero and KetOne are the two basis states, provided as convenience
// constructors mirroring the teacher's combinator-library style of
// exposing common terms as ready-made values.
var (
	KetZero Term = Ket{Bit: false}
	KetOne  Term = Ket{Bit: true}
)

// reservedIdentifiers are the tokens §4.1 forbids fresh-naming from
// ever synthesizing; the parser is the only place new names ever
// collide with them, since freshFrom only ever perturbs names that
// already came from user-written text.
var reservedIdentifiers = map[string]bool{
	"H": true, "C": true, "T": true, "M": true,
}
