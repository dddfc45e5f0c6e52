package qlam

import "math"

// sqrtHalf is √½, the Hadamard amplitude, per spec §4.5.
var sqrtHalf = math.Sqrt(0.5)

// tPhase is ω = e^{iπ/4}, the T-gate phase, per spec §4.5.
var tPhase = complexFromPolar(1, math.Pi/4)

func complexFromPolar(r, theta float64) complex128 {
	return complex(r*math.Cos(theta), r*math.Sin(theta))
}

// applyGate dispatches the fixed gate set {H, C, T} to arg, per spec
// §4.5. Grounded on original_source/src/term.rs's apply_gate, which
// computes the same amplitude formulas against Rust's num::Complex.
// Any other gate symbol, mismatched arity, or non-ket operand is a
// BadGateError.
func applyGate(symbol string, arg Term) (Superposition, error) {
	switch symbol {
	case "H":
		k, ok := arg.(Ket)
		if !ok {
			return nil, &BadGateError{Detail: "Hadamard gate must take a single qubit"}
		}
		if !k.Bit {
			return Superposition{
				{Term: KetZero, Amp: complex(sqrtHalf, 0)},
				{Term: KetOne, Amp: complex(sqrtHalf, 0)},
			}, nil
		}
		return Superposition{
			{Term: KetZero, Amp: complex(sqrtHalf, 0)},
			{Term: KetOne, Amp: complex(-sqrtHalf, 0)},
		}, nil

	case "T":
		k, ok := arg.(Ket)
		if !ok {
			return nil, &BadGateError{Detail: "T gate must take a single qubit"}
		}
		if !k.Bit {
			return Superposition{{Term: KetZero, Amp: complex(1, 0)}}, nil
		}
		return Superposition{{Term: KetOne, Amp: tPhase}}, nil

	case "C":
		a, b, ok := asPair(arg)
		if !ok {
			return nil, &BadGateError{Detail: "CNOT must take a pair-encoded term"}
		}
		ka, ok1 := a.(Ket)
		kb, ok2 := b.(Ket)
		if !ok1 || !ok2 {
			return nil, &BadGateError{Detail: "CNOT must take a pair of qubits"}
		}
		control, target := ka.Bit, kb.Bit
		newTarget := target
		if control {
			newTarget = !target
		}
		return Superposition{{Term: pair(Ket{Bit: control}, Ket{Bit: newTarget}), Amp: complex(1, 0)}}, nil

	default:
		return nil, &BadGateError{Detail: "unknown gate symbol: " + symbol}
	}
}
