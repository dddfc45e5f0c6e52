package qlam

import (
	"fmt"
	"strconv"
	"strings"
)

// String implementations, grounded on the teacher's Object.String()
// methods (lambda.go) and generalized per spec §6.4.

func (v Var) String() string { return v.Name }

func (k Ket) String() string {
	if k.Bit {
		return "|1>"
	}
	return "|0>"
}

func (g Gate) String() string { return g.Symbol }

func (Meas) String() string { return "M" }

func (a Abs) String() string {
	return fmt.Sprintf("(λ%s. %s)", a.Param, a.Body.String())
}

func (a NonlinearAbs) String() string {
	return fmt.Sprintf("(#%s. %s)", a.Param, a.Body.String())
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Func.String(), a.Arg.String())
}

func (b Bang) String() string {
	return fmt.Sprintf("!(%s)", b.Inner.String())
}

// String renders a superposition as a bracketed list of "(term):
// amplitude" lines, grounded on original_source/src/superpos.rs's
// Display impl for Superpos.
func (s Superposition) String() string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, br := range s {
		sb.WriteString(fmt.Sprintf("(%s): %s,\n", br.Term.String(), formatComplex(br.Amp)))
	}
	sb.WriteString("]")
	return sb.String()
}

func formatComplex(c complex128) string {
	re, im := real(c), imag(c)
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return strconv.FormatFloat(re, 'g', -1, 64) + sign + strconv.FormatFloat(im, 'g', -1, 64) + "i"
}
