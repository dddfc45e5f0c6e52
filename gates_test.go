package qlam

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// GateSuite exercises the fixed gate kernel {H, C, T} (spec §4.5).
type GateSuite struct {
	suite.Suite
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateSuite))
}

func (s *GateSuite) TestHadamardOnZero() {
	sup, err := applyGate("H", KetZero)
	require.NoError(s.T(), err)
	require.Len(s.T(), sup, 2)
	require.InDelta(s.T(), sqrtHalf, real(sup[0].Amp), 1e-9)
	require.InDelta(s.T(), sqrtHalf, real(sup[1].Amp), 1e-9)
}

func (s *GateSuite) TestHadamardOnOneHasNegativePhase() {
	sup, err := applyGate("H", KetOne)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), sqrtHalf, real(sup[0].Amp), 1e-9)
	require.InDelta(s.T(), -sqrtHalf, real(sup[1].Amp), 1e-9)
}

func (s *GateSuite) TestHadamardRejectsNonKet() {
	_, err := applyGate("H", Var{Name: "x"})
	require.Error(s.T(), err)
	var gerr *BadGateError
	require.ErrorAs(s.T(), err, &gerr)
}

func (s *GateSuite) TestTGateFixesZero() {
	sup, err := applyGate("T", KetZero)
	require.NoError(s.T(), err)
	require.Len(s.T(), sup, 1)
	require.Equal(s.T(), complex(1.0, 0), sup[0].Amp)
}

func (s *GateSuite) TestTGateAppliesPhaseToOne() {
	sup, err := applyGate("T", KetOne)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 1.0, cmplx.Abs(sup[0].Amp), 1e-9)
	require.InDelta(s.T(), 0.0, real(sup[0].Amp)-imag(sup[0].Amp), 1e-9) // ω has equal real/imag parts
}

func (s *GateSuite) TestCNOTFlipsTargetWhenControlSet() {
	arg := pair(KetOne, KetZero)
	sup, err := applyGate("C", arg)
	require.NoError(s.T(), err)
	require.Len(s.T(), sup, 1)
	a, b, ok := asPair(sup[0].Term)
	require.True(s.T(), ok)
	require.Equal(s.T(), KetOne, a)
	require.Equal(s.T(), KetOne, b)
}

func (s *GateSuite) TestCNOTLeavesTargetWhenControlClear() {
	arg := pair(KetZero, KetOne)
	sup, err := applyGate("C", arg)
	require.NoError(s.T(), err)
	a, b, ok := asPair(sup[0].Term)
	require.True(s.T(), ok)
	require.Equal(s.T(), KetZero, a)
	require.Equal(s.T(), KetOne, b)
}

func (s *GateSuite) TestCNOTRejectsNonPair() {
	_, err := applyGate("C", KetZero)
	require.Error(s.T(), err)
}

func (s *GateSuite) TestUnknownGateSymbol() {
	_, err := applyGate("X", KetZero)
	require.Error(s.T(), err)
}
