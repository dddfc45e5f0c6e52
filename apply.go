package qlam

import "math/rand"

// apply implements the application relation of spec §4.7. Grounded on
// original_source/src/term.rs's apply, which dispatches on the same
// six (Value, Value) shape pairs.
func apply(v1, v2 Value, rng *rand.Rand) (Value, error) {
	switch a := v1.(type) {
	case TermValue:
		if _, isMeas := a.Term.(Meas); isMeas {
			if b, ok := v2.(SuperposValue); ok {
				return TermValue{Term: applyMeasurement(b.Superposition, rng)}, nil
			}
			return nil, &BadApplicationError{Detail: "measurement applied to a classical term, not a superposition"}
		}

		switch b := v2.(type) {
		case TermValue:
			return applyTermTerm(a.Term, b.Term, rng)
		case SuperposValue:
			out, err := mapTerms(b.Superposition, func(t Term) (Value, error) {
				return apply(TermValue{Term: a.Term}, TermValue{Term: t}, rng)
			})
			if err != nil {
				return nil, err
			}
			return SuperposValue{Superposition: out}, nil
		}
	case SuperposValue:
		switch b := v2.(type) {
		case TermValue:
			out, err := mapTerms(a.Superposition, func(t Term) (Value, error) {
				return apply(TermValue{Term: t}, TermValue{Term: b.Term}, rng)
			})
			if err != nil {
				return nil, err
			}
			return SuperposValue{Superposition: out}, nil
		case SuperposValue:
			out, err := zipTerms(a.Superposition, b.Superposition, func(t, u Term) (Value, error) {
				return apply(TermValue{Term: t}, TermValue{Term: u}, rng)
			})
			if err != nil {
				return nil, err
			}
			return SuperposValue{Superposition: out}, nil
		}
	}
	return nil, &BadApplicationError{Detail: "unreachable value shape"}
}

// applyTermTerm handles the Term·Term cases of spec §4.7: gate
// dispatch, linear beta reduction, and nonlinear (bang-guarded) beta
// reduction, plus an UndefinedSymbolError for a free variable on the
// left. Measurement never reaches it; apply handles M first.
func applyTermTerm(t1, t2 Term, rng *rand.Rand) (Value, error) {
	if g, ok := t1.(Gate); ok {
		sup, err := applyGate(g.Symbol, t2)
		if err != nil {
			return nil, err
		}
		return SuperposValue{Superposition: sup}, nil
	}

	switch fn := t1.(type) {
	case Abs:
		return TermValue{Term: subst(fn.Body, fn.Param, t2)}, nil
	case NonlinearAbs:
		bang, ok := t2.(Bang)
		if !ok {
			return nil, &BadApplicationError{Detail: "nonlinear lambda applied to an argument that is not !-wrapped"}
		}
		return TermValue{Term: subst(fn.Body, fn.Param, bang.Inner)}, nil
	case Var:
		// A free variable reaching function position here was not
		// caught syntactically by evalFuncPosition because it only
		// became a bare Var through reduction (e.g. an outer redex
		// reduced to it). Spec §4.6: a free variable is an
		// UndefinedSymbol error at the point where it would be
		// applied, wherever that variable came from.
		return nil, &UndefinedSymbolError{Name: fn.Name}
	default:
		return nil, &BadApplicationError{Detail: "left-hand side of application is not a lambda abstraction or gate"}
	}
}

// applyMeasurement implements the Measurement·Superposition case of
// spec §4.7, kept separate since it is the only case whose RHS must
// already be a Superposition rather than a Term.
func applyMeasurement(sup Superposition, rng *rand.Rand) Term {
	return measure(sup, rng)
}
