package qlam

import "fmt"

// subst implements capture-avoiding substitution of s for free
// occurrences of x in t, per spec §4.2. Grounded on the teacher's
// Substitute() methods (lambda.go) and cross-checked against
// original_source/src/term.rs's subst_helper. Substitution is a pure
// function and never fails — unlike the Rust original, which folds a
// linearity check for ket substitutions into subst itself, this
// implementation keeps substitution and linearity checking as
// separate components (spec §4.3 runs the linearity check once, up
// front, over the whole term, rather than re-deriving it at every
// substitution site).
func subst(t Term, x string, s Term) Term {
	switch n := t.(type) {
	case Var:
		if n.Name == x {
			return s
		}
		return n
	case Ket, Gate, Meas:
		return n
	case App:
		return App{Func: subst(n.Func, x, s), Arg: subst(n.Arg, x, s)}
	case Bang:
		return Bang{Inner: subst(n.Inner, x, s)}
	case Abs:
		body, param := substBinder(n.Param, n.Body, x, s)
		return Abs{Param: param, Body: body}
	case NonlinearAbs:
		body, param := substBinder(n.Param, n.Body, x, s)
		return NonlinearAbs{Param: param, Body: body}
	}
	panic(fmt.Sprintf("qlam: subst: unhandled term type %T", t))
}

// substBinder implements rule 5 of spec §4.2, shared by Abs and
// NonlinearAbs since they differ only in the linearity discipline
// applied to their parameter, not in how substitution threads through
// them.
func substBinder(param string, body Term, x string, s Term) (newBody Term, newParam string) {
	if param == x {
		// Shadowed: x is rebound here, s cannot reach the original body.
		return body, param
	}

	if freeVars(s)[param] {
		used := freeVars(body)
		for k := range freeVars(s) {
			used[k] = true
		}
		fresh := freshFrom(param, used)
		renamedBody := subst(body, param, Var{Name: fresh})
		return subst(renamedBody, x, s), fresh
	}

	return subst(body, x, s), param
}
