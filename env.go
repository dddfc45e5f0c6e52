package qlam

// Environment is a mapping from identifier to Term (spec §3). Binding
// is by substitution: Expand walks a term and substitutes every bound
// identifier's definition in before reduction begins; Eval never
// dereferences an Environment at runtime. Grounded on
// original_source/src/repl.rs's Env (a HashMap<String, Term> with
// put/get), generalized from "the REPL owns one flat map inline" to a
// reusable type with its own Reset, the way the teacher prefers small
// testable value types (e.g. Parser in parser.go) over ad-hoc state.
type Environment struct {
	bindings map[string]Term
	order    []string
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Term)}
}

// Define stores t under name. Per spec §4.8, the caller is expected to
// have already expanded t against the then-current environment;
// Define itself performs no expansion so that assignment order is
// exactly what the caller observed. order records the sequence names
// were first bound in, so Expand can replay definitions in that same
// sequence (see Expand).
func (e *Environment) Define(name string, t Term) {
	if _, exists := e.bindings[name]; !exists {
		e.order = append(e.order, name)
	}
	e.bindings[name] = t
}

// Lookup returns the term bound to name, if any.
func (e *Environment) Lookup(name string) (Term, bool) {
	t, ok := e.bindings[name]
	return t, ok
}

// Names returns the bound identifiers, for the REPL's "env" command.
func (e *Environment) Names() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// Reset clears every binding, per spec §3's "cleared on the reset
// command" lifecycle note.
func (e *Environment) Reset() {
	e.bindings = make(map[string]Term)
	e.order = nil
}

// Expand substitutes every occurrence of a bound identifier in t with
// its definition, per spec §4.8. If an identifier is shadowed by an
// enclosing binder, the inner binder wins and that occurrence is left
// alone — subst already guarantees this, since a shadowed parameter
// blocks substitution from reaching the shadowed body.
//
// Per spec §4.8, a stored definition is already expanded against the
// environment as it stood at definition time, so it can only refer
// free to a name bound *after* it. A single pass must therefore visit
// earlier definitions before later ones, or a forward reference picked
// up from an earlier substitution would never get its own turn — so
// this walks e.order (insertion order) rather than ranging over the
// map directly, whose iteration order Go leaves unspecified.
func (e *Environment) Expand(t Term) Term {
	for _, name := range e.order {
		t = subst(t, name, e.bindings[name])
	}
	return t
}
