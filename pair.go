package qlam

// pair builds the Church pair encoding λb. ((b a) c), used in lieu of
// a native pair constructor (spec §3). Grounded on
// original_source/src/helpers.rs's pair().
func pair(a, c Term) Term {
	const b = "b"
	return Abs{Param: b, Body: App{Func: App{Func: Var{Name: b}, Arg: a}, Arg: c}}
}

// Pair is the exported form of pair, used by package circuit to build
// the right-nested n-tuple encoding of a wire bundle (spec §4.9).
func Pair(a, c Term) Term {
	return pair(a, c)
}

// First and Second extract the two halves of a pair-encoded term by
// matching its shape syntactically through asPair, without evaluating
// anything; ok is false when t is not of the pair shape.
func First(t Term) (Term, bool) {
	a, _, ok := asPair(t)
	return a, ok
}

func Second(t Term) (Term, bool) {
	_, c, ok := asPair(t)
	return c, ok
}

// asPair recognizes the pair-encoding shape syntactically: the
// evaluator must not normalize or η-contract during detection (spec
// §9 design note), so this is a direct structural match, grounded on
// original_source/src/term.rs's as_pair/as_app/as_var.
func asPair(t Term) (first, second Term, ok bool) {
	abs, ok := t.(Abs)
	if !ok {
		return nil, nil, false
	}
	outer, ok := abs.Body.(App)
	if !ok {
		return nil, nil, false
	}
	inner, ok := outer.Func.(App)
	if !ok {
		return nil, nil, false
	}
	v, ok := inner.Func.(Var)
	if !ok || v.Name != abs.Param {
		return nil, nil, false
	}
	return inner.Arg, outer.Arg, true
}
