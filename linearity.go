package qlam

// linTag tracks, per variable, how it was bound and how many times it
// has been seen so far, per spec §4.3.
type linTag struct {
	nonlinear bool
	count     int
}

// checkLinearity runs exactly once on the whole term before
// evaluation (spec §4.6 step 1). It is grounded on
// original_source/src/term.rs's num_occurrences, generalized from "a
// single count check at substitution time" to the whole-program,
// scope-aware walk spec §4.3 describes: a linear variable must be
// used exactly once inside the body of the Abs that binds it, a
// nonlinear variable may be used any number of times, and no linear
// variable may appear (let alone be duplicated) underneath a Bang.
func checkLinearity(t Term) error {
	_, err := walkLinearity(t, map[string]linTag{})
	return err
}

// walkLinearity returns the scope map after processing t, threading
// usage counts upward through sequential children the way spec's
// App rule ("check both subtrees in sequence with the same map")
// requires.
func walkLinearity(t Term, scope map[string]linTag) (map[string]linTag, error) {
	switch n := t.(type) {
	case Var:
		if tag, ok := scope[n.Name]; ok && !tag.nonlinear {
			tag.count++
			scope[n.Name] = tag
		}
		return scope, nil

	case Ket, Gate, Meas:
		return scope, nil

	case Abs:
		inner := cloneScope(scope)
		inner[n.Param] = linTag{count: 0}
		inner, err := walkLinearity(n.Body, inner)
		if err != nil {
			return nil, err
		}
		tag := inner[n.Param]
		delete(inner, n.Param)
		if tag.count == 0 {
			return nil, &LinearityViolationError{Variable: n.Param, Reason: "was never used (linear variables must be used exactly once)"}
		}
		if tag.count >= 2 {
			return nil, &LinearityViolationError{Variable: n.Param, Reason: "was used more than once (linear variables must be used exactly once)"}
		}
		propagateOuter(scope, inner)
		return scope, nil

	case NonlinearAbs:
		inner := cloneScope(scope)
		inner[n.Param] = linTag{nonlinear: true}
		inner, err := walkLinearity(n.Body, inner)
		if err != nil {
			return nil, err
		}
		delete(inner, n.Param)
		propagateOuter(scope, inner)
		return scope, nil

	case App:
		scope, err := walkLinearity(n.Func, scope)
		if err != nil {
			return nil, err
		}
		return walkLinearity(n.Arg, scope)

	case Bang:
		snapshot := cloneScope(scope)
		result, err := walkLinearity(n.Inner, snapshot)
		if err != nil {
			return nil, err
		}
		for name, before := range scope {
			if before.nonlinear {
				continue
			}
			if after, ok := result[name]; ok && after.count > before.count {
				return nil, &LinearityViolationError{Variable: name, Reason: "is linear and may not appear inside a ! suspension"}
			}
		}
		return scope, nil
	}
	return scope, nil
}

func cloneScope(scope map[string]linTag) map[string]linTag {
	out := make(map[string]linTag, len(scope)+1)
	for k, v := range scope {
		out[k] = v
	}
	return out
}

// propagateOuter copies usage-count increments for variables that
// were already in scope before entering a binder back out to the
// enclosing scope, so a linear variable captured from an outer Abs and
// used inside a nested Abs/NonlinearAbs body is still correctly
// counted exactly once overall.
func propagateOuter(outer, inner map[string]linTag) {
	for name, tag := range outer {
		if innerTag, ok := inner[name]; ok {
			outer[name] = innerTag
		} else {
			_ = tag
		}
	}
}
