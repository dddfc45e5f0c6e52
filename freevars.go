package qlam

import "fmt"

// freeVars returns the set of identifiers occurring free in t,
// grounded on the teacher's FreeVars() methods (lambda.go), generalized
// to the eight-variant Term set per spec §4.1.
func freeVars(t Term) map[string]bool {
	switch n := t.(type) {
	case Var:
		return map[string]bool{n.Name: true}
	case Ket, Gate, Meas:
		return map[string]bool{}
	case Abs:
		fv := freeVars(n.Body)
		delete(fv, n.Param)
		return fv
	case NonlinearAbs:
		fv := freeVars(n.Body)
		delete(fv, n.Param)
		return fv
	case App:
		fv := freeVars(n.Func)
		for k := range freeVars(n.Arg) {
			fv[k] = true
		}
		return fv
	case Bang:
		return freeVars(n.Inner)
	}
	panic(fmt.Sprintf("qlam: freeVars: unhandled term type %T", t))
}

// freshFrom returns base if it is absent from taken, else the smallest
// integer-suffixed variant base1, base2, ... that is absent, per spec
// §4.1. Grounded on the teacher's freshVar helper (lambda.go).
func freshFrom(base string, taken map[string]bool) string {
	if !taken[base] {
		return base
	}
	i := 1
	for {
		candidate := fmt.Sprintf("%s%d", base, i)
		if !taken[candidate] {
			return candidate
		}
		i++
	}
}
