package qlam_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wmcram/qlam"
)

func TestToDiagram_Ket(t *testing.T) {
	d := qlam.ToDiagram(qlam.Ket{Bit: false})
	require.Contains(t, d.ToUnicode(), "0")
}

func TestToDiagram_Abstraction(t *testing.T) {
	term := qlam.Abs{Param: "x", Body: qlam.Var{Name: "x"}}
	d := qlam.ToDiagram(term)
	rendered := d.ToUnicode()
	require.True(t, strings.Contains(rendered, "─"))
	require.True(t, strings.Contains(rendered, "│"))
}

func TestToDiagram_NonlinearAbstractionUsesDoubleBar(t *testing.T) {
	term := qlam.NonlinearAbs{Param: "x", Body: qlam.Var{Name: "x"}}
	d := qlam.ToDiagram(term)
	require.True(t, strings.Contains(d.ToUnicode(), "═"))
}

func TestToDiagram_BangDrawsDashedBorder(t *testing.T) {
	term := qlam.Bang{Inner: qlam.Ket{Bit: true}}
	d := qlam.ToDiagram(term)
	rendered := d.ToUnicode()
	require.True(t, strings.Contains(rendered, "┄") || strings.Contains(rendered, "┆"))
}

func TestToSVG_ProducesValidWrapper(t *testing.T) {
	d := qlam.ToDiagram(qlam.Ket{Bit: false})
	svg := d.ToSVG()
	require.True(t, strings.HasPrefix(svg, "<svg"))
	require.True(t, strings.HasSuffix(svg, "</svg>"))
}
