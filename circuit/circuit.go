// Package circuit compiles the textual quantum circuit DSL of spec
// §4.9 into an equivalent qlam.Term. The grid parser (ParseCircuit,
// the Block enum, per-layer dimension checking) is carried over
// nearly as-is from original_source/src/circuit.rs's parse_circuit,
// translated from Rust's Vec<Vec<Block>> into Go's [][]Block. The
// compiler itself (Compile) is original: original_source's
// circuit_to_lambda is an unimplemented todo!(), so the
// continuation-passing compilation strategy below follows spec
// §4.9's prose description rather than any existing source.
package circuit

import (
	"fmt"
	"strings"

	"github.com/wmcram/qlam"
)

// Block is a single cell of the circuit grid: a gate token or the
// identity, per spec §4.9/§6.2. Grounded on circuit.rs's Block enum,
// with S (swap) added as a fifth variant absent from the original,
// since the Rust enum predates spec §6.2's swap token.
type Block int

const (
	I Block = iota
	H
	T
	C
	S
)

func (b Block) width() int {
	switch b {
	case C, S:
		return 2
	default:
		return 1
	}
}

func (b Block) String() string {
	switch b {
	case I:
		return "I"
	case H:
		return "H"
	case T:
		return "T"
	case C:
		return "C"
	case S:
		return "S"
	default:
		return "?"
	}
}

// Circuit is a parsed grid: an input bit vector and the layers of
// gate tokens applied to it in sequence, per spec §4.9.
type Circuit struct {
	Input  []bool
	Layers [][]Block
}

// ParseCircuit parses the grid DSL: the first line is the input bit
// vector, each following line is one layer of whitespace-separated
// tokens drawn from {I, H, T, C, S}. Grounded on circuit.rs's
// parse_circuit.
func ParseCircuit(text string) (*Circuit, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, &qlam.CircuitError{Message: "empty circuit: missing input line"}
	}

	input := make([]bool, 0, len(lines[0]))
	for _, c := range lines[0] {
		switch {
		case c == '0':
			input = append(input, false)
		case c == '1':
			input = append(input, true)
		case isSpace(c):
			continue
		default:
			return nil, &qlam.CircuitError{Message: fmt.Sprintf("invalid character %q in input line", c)}
		}
	}
	if len(input) == 0 {
		return nil, &qlam.CircuitError{Message: "empty circuit: input line has no qubits"}
	}

	layers := make([][]Block, 0, len(lines)-1)
	for lineNo, line := range lines[1:] {
		layer := make([]Block, 0)
		for _, c := range line {
			switch c {
			case 'I':
				layer = append(layer, I)
			case 'H':
				layer = append(layer, H)
			case 'T':
				layer = append(layer, T)
			case 'C':
				layer = append(layer, C)
			case 'S':
				layer = append(layer, S)
			default:
				if isSpace(c) {
					continue
				}
				return nil, &qlam.CircuitError{Message: fmt.Sprintf("invalid character %q in layer %d", c, lineNo+1)}
			}
		}
		layers = append(layers, layer)
	}

	dim := len(input)
	for i, layer := range layers {
		width := 0
		for _, blk := range layer {
			width += blk.width()
		}
		if width != dim {
			return nil, &qlam.CircuitError{Message: fmt.Sprintf("layer %d: block widths sum to %d, want %d", i+1, width, dim)}
		}
	}

	return &Circuit{Input: input, Layers: layers}, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

// Compile translates a parsed Circuit into a single qlam.Term whose
// reduction under Eval models the circuit's action on its input, per
// spec §4.9. The initial n-tuple is the right-nested pair encoding of
// the input bits; each layer contributes one continuation-passing
// "step" — a function that destructures the current tuple into named
// wires, applies CNOTs first so their outputs are available as fresh
// names, then applies the single-qubit gates and swaps, and finally
// reassembles the next tuple — applied to the running term.
func Compile(c *Circuit) (qlam.Term, error) {
	n := len(c.Input)
	if n == 0 {
		return nil, &qlam.CircuitError{Message: "empty circuit: no input wires"}
	}

	kets := make([]qlam.Term, n)
	for i, bit := range c.Input {
		kets[i] = qlam.Ket{Bit: bit}
	}
	cur := nestTuple(kets)

	for layerIdx, layer := range c.Layers {
		next, err := compileLayer(cur, layer, n, layerIdx)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

// nestTuple right-folds a list of terms into the pair-encoded
// n-tuple, per spec §4.9's "initial tuple is the Church encoding of
// the input bit-string".
func nestTuple(terms []qlam.Term) qlam.Term {
	if len(terms) == 1 {
		return terms[0]
	}
	return qlam.Pair(terms[0], nestTuple(terms[1:]))
}

type cnotBinding struct {
	name     string
	arg      qlam.Term
	outNameA string
	outNameB string
}

// compileLayer builds the CPS step for one layer: it binds the layer
// to a fresh outer variable ("cur"), destructures that variable into
// one name per wire, binds every CNOT's output pair to its own fresh
// name and destructures that in turn, then constructs the new tuple
// from those names — directly for I/S (renaming only) and through a
// Gate application for H/T.
//
// Destructuring a pair-encoded term never uses a discarding Church
// projector (p (λx.λy.x)): spec §4.3 forbids a linear Abs from ever
// leaving a bound parameter unused, and a naive projector's second
// parameter is exactly that. destructure instead applies the pair to
// a two-argument continuation that goes on to use BOTH components —
// the head immediately where it's bound in the caller's body, the
// tail by recursing into the next destructuring step — so every
// synthesized binder is used exactly once, the same discipline
// prelude/prelude.go's combinators follow for their own arguments.
func compileLayer(cur qlam.Term, blocks []Block, n, layerIdx int) (qlam.Term, error) {
	width := 0
	for _, blk := range blocks {
		width += blk.width()
	}
	if width != n {
		return nil, &qlam.CircuitError{Message: fmt.Sprintf("layer %d: block widths sum to %d, want %d", layerIdx+1, width, n)}
	}

	wireNames := make([]string, n)
	for i := range wireNames {
		wireNames[i] = fmt.Sprintf("w%d_%d", layerIdx, i)
	}

	outputs := make([]qlam.Term, n)
	var bindings []cnotBinding
	pos := 0
	cnotIdx := 0
	for _, blk := range blocks {
		switch blk {
		case I:
			outputs[pos] = qlam.Var{Name: wireNames[pos]}
			pos++
		case H:
			outputs[pos] = qlam.App{Func: qlam.Gate{Symbol: "H"}, Arg: qlam.Var{Name: wireNames[pos]}}
			pos++
		case T:
			outputs[pos] = qlam.App{Func: qlam.Gate{Symbol: "T"}, Arg: qlam.Var{Name: wireNames[pos]}}
			pos++
		case S:
			outputs[pos] = qlam.Var{Name: wireNames[pos+1]}
			outputs[pos+1] = qlam.Var{Name: wireNames[pos]}
			pos += 2
		case C:
			name := fmt.Sprintf("cnot%d_%d", layerIdx, cnotIdx)
			cnotIdx++
			arg := qlam.Pair(qlam.Var{Name: wireNames[pos]}, qlam.Var{Name: wireNames[pos+1]})
			outNameA := name + "_a"
			outNameB := name + "_b"
			bindings = append(bindings, cnotBinding{
				name:     name,
				arg:      qlam.App{Func: qlam.Gate{Symbol: "C"}, Arg: arg},
				outNameA: outNameA,
				outNameB: outNameB,
			})
			outputs[pos] = qlam.Var{Name: outNameA}
			outputs[pos+1] = qlam.Var{Name: outNameB}
			pos += 2
		}
	}

	body := nestTuple(outputs)
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		body = destructure(qlam.Var{Name: b.name}, []string{b.outNameA, b.outNameB}, body)
		body = qlam.App{Func: qlam.Abs{Param: b.name, Body: body}, Arg: b.arg}
	}

	full := destructure(qlam.Var{Name: "cur"}, wireNames, body)
	return qlam.App{Func: qlam.Abs{Param: "cur", Body: full}, Arg: cur}, nil
}

// destructure binds the right-nested pair-encoded term p to names in
// order, wrapping body in the corresponding binders: for a single
// name it is a plain let, (λname. body) p; for more than one it
// applies p directly to a continuation — p (λhead.λtail. ...) — which
// is how a Church-encoded pair p = λb.((b x) y) is eliminated (p k
// reduces to (k x) y), recursing on tail for the remaining names.
func destructure(p qlam.Term, names []string, body qlam.Term) qlam.Term {
	if len(names) == 1 {
		return qlam.App{Func: qlam.Abs{Param: names[0], Body: body}, Arg: p}
	}

	tailVar := names[0] + "_tail"
	inner := destructure(qlam.Var{Name: tailVar}, names[1:], body)
	cont := qlam.Abs{Param: names[0], Body: qlam.Abs{Param: tailVar, Body: inner}}
	return qlam.App{Func: p, Arg: cont}
}
