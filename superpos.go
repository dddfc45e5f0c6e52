package qlam

import (
	"math/cmplx"
	"math/rand"
)

// ampEpsilon is the squared-magnitude threshold below which a branch
// is dropped as numerically zero, per spec §3 invariant 2.
const ampEpsilon = 1e-9

// Branch is one (term, amplitude) pair of a Superposition.
type Branch struct {
	Term Term
	Amp  complex128
}

// Superposition is a finite complex-amplitude-weighted sum of terms,
// interpreted probabilistically only at measurement time (spec §3).
// Grounded on original_source/src/superpos.rs's Superpos(Vec<(Term,
// Complex<f64>)>), translated to a Go slice of structs.
type Superposition []Branch

// trivial creates the trivial superposition from a classical term,
// per spec §4.4.
func trivial(t Term) Superposition {
	return Superposition{{Term: t, Amp: complex(1, 0)}}
}

// termKey returns a string that two α-equal terms always share and
// two non-α-equal terms never do, used by merge to fold duplicate
// branches without needing full structural equality at every
// comparison. Names are compared verbatim per spec §3, so the
// rendered surface syntax is a sound key.
func termKey(t Term) string {
	return t.String()
}

// merge folds α-equal terms in s by summing amplitudes and drops
// branches with squared amplitude at or below ampEpsilon, preserving
// the order of first appearance. Grounded on
// original_source/src/superpos.rs's Superpos::merge.
func merge(s Superposition) Superposition {
	order := make([]string, 0, len(s))
	sums := make(map[string]complex128, len(s))
	terms := make(map[string]Term, len(s))

	for _, br := range s {
		key := termKey(br.Term)
		if _, seen := sums[key]; !seen {
			order = append(order, key)
			terms[key] = br.Term
		}
		sums[key] += br.Amp
	}

	out := make(Superposition, 0, len(order))
	for _, key := range order {
		amp := sums[key]
		if cmplx.Abs(amp)*cmplx.Abs(amp) <= ampEpsilon {
			continue
		}
		out = append(out, Branch{Term: terms[key], Amp: amp})
	}
	return out
}

// branchFn is the per-term callback passed to mapTerms: it may yield a
// plain Term or a further Superposition to flatten.
type branchFn func(Term) (Value, error)

// mapTerms computes f(t) for each (t, a) in s, flattening any nested
// superposition the way spec §4.4 describes; the result is returned
// unmerged — the caller merges. Grounded on
// original_source/src/superpos.rs's Superpos::map_terms.
func mapTerms(s Superposition, f branchFn) (Superposition, error) {
	out := make(Superposition, 0, len(s))
	for _, br := range s {
		v, err := f(br.Term)
		if err != nil {
			return nil, err
		}
		switch val := v.(type) {
		case TermValue:
			out = append(out, Branch{Term: val.Term, Amp: br.Amp})
		case SuperposValue:
			for _, inner := range val.Superposition {
				out = append(out, Branch{Term: inner.Term, Amp: br.Amp * inner.Amp})
			}
		}
	}
	return out, nil
}

// zipFn is the per-pair callback passed to zipTerms.
type zipFn func(a, b Term) (Value, error)

// zipTerms computes the Cartesian product g(t, u) for every (t, a) in
// s1 and (u, b) in s2, flattening and multiplying amplitudes as in
// mapTerms. Grounded on original_source/src/superpos.rs's
// Superpos::zip_terms.
func zipTerms(s1, s2 Superposition, g zipFn) (Superposition, error) {
	out := make(Superposition, 0, len(s1)*len(s2))
	for _, b1 := range s1 {
		for _, b2 := range s2 {
			v, err := g(b1.Term, b2.Term)
			if err != nil {
				return nil, err
			}
			switch val := v.(type) {
			case TermValue:
				out = append(out, Branch{Term: val.Term, Amp: b1.Amp * b2.Amp})
			case SuperposValue:
				for _, inner := range val.Superposition {
					out = append(out, Branch{Term: inner.Term, Amp: b1.Amp * b2.Amp * inner.Amp})
				}
			}
		}
	}
	return out, nil
}

// measure draws a uniform random branch weighted by |amp|^2, per spec
// §4.4. Grounded on original_source/src/superpos.rs's
// Superpos::measure, adapted from Rust's implicit thread-local
// rand::thread_rng() to an explicitly threaded *rand.Rand (spec §5:
// single-threaded, sequential evaluation means one RNG suffices and
// makes results reproducible when the caller seeds it).
func measure(s Superposition, rng *rand.Rand) Term {
	s = merge(s)
	r := rng.Float64()
	var cumulative float64
	for _, br := range s {
		p := real(br.Amp)*real(br.Amp) + imag(br.Amp)*imag(br.Amp)
		cumulative += p
		if cumulative > r {
			return br.Term
		}
	}
	// Sub-normalized: fall back to the last branch (spec §4.4).
	return s[len(s)-1].Term
}
