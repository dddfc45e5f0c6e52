package qlam

import "math/rand"

// Eval reduces t to a Value, per spec §4.6. It runs the linearity
// checker once, over the whole term, before any reduction (property
// 4, spec §8); a term that fails the check never begins reduction.
// maxSteps bounds the number of application steps taken; 0 means
// unbounded, per the step-cap open question resolved in
// SPEC_FULL.md. Per spec §3, named definitions are expanded into t by
// Environment.Expand *before* Eval is ever called — Eval itself never
// dereferences an environment. Grounded on
// original_source/src/term.rs's eval/apply pair, restructured from the
// teacher's BetaReduce (which has no notion of a threaded Value) into
// a recursive evaluator that dispatches through apply (spec §4.7).
func Eval(t Term, rng *rand.Rand, maxSteps int) (Value, error) {
	if err := checkLinearity(t); err != nil {
		return nil, err
	}
	steps := 0
	return evalStep(t, rng, maxSteps, &steps)
}

func evalStep(t Term, rng *rand.Rand, maxSteps int, steps *int) (Value, error) {
	switch n := t.(type) {
	case Ket, Gate, Meas, Abs, NonlinearAbs, Bang, Var:
		// Constants, variables, (Nonlinear)Abstractions, and ! wrappers
		// are already values (spec §4.6). A free Var surviving here is
		// in value position, not function position, and is returned
		// as-is per spec.
		return TermValue{Term: n}, nil

	case App:
		if maxSteps > 0 && *steps >= maxSteps {
			return nil, &StepLimitError{Steps: *steps}
		}
		*steps++

		vf, err := evalFuncPosition(n.Func, rng, maxSteps, steps)
		if err != nil {
			return nil, err
		}
		va, err := evalStep(n.Arg, rng, maxSteps, steps)
		if err != nil {
			return nil, err
		}

		result, err := apply(vf, va, rng)
		if err != nil {
			return nil, err
		}

		switch res := result.(type) {
		case TermValue:
			return evalStep(res.Term, rng, maxSteps, steps)
		case SuperposValue:
			out := make(Superposition, 0, len(res.Superposition))
			for _, br := range res.Superposition {
				v, err := evalStep(br.Term, rng, maxSteps, steps)
				if err != nil {
					return nil, err
				}
				switch bv := v.(type) {
				case TermValue:
					out = append(out, Branch{Term: bv.Term, Amp: br.Amp})
				case SuperposValue:
					// A branch that itself branched is flattened, its
					// amplitudes scaled by the outer branch's.
					for _, inner := range bv.Superposition {
						out = append(out, Branch{Term: inner.Term, Amp: br.Amp * inner.Amp})
					}
				}
			}
			return SuperposValue{Superposition: merge(out)}, nil
		}
	}
	return nil, &BadApplicationError{Detail: "unreachable term shape"}
}

// evalFuncPosition evaluates the function side of an application,
// surfacing UndefinedSymbolError for a free variable — spec §4.6: "A
// free variable that was not expanded by the environment is an
// UndefinedSymbol error at the point where it would be applied."
func evalFuncPosition(t Term, rng *rand.Rand, maxSteps int, steps *int) (Value, error) {
	if v, ok := t.(Var); ok {
		return nil, &UndefinedSymbolError{Name: v.Name}
	}
	return evalStep(t, rng, maxSteps, steps)
}
