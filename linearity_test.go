package qlam

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// LinearitySuite exercises the linearity discipline (spec §4.3) and
// testable property 4 (spec §8).
type LinearitySuite struct {
	suite.Suite
}

func TestLinearitySuite(t *testing.T) {
	suite.Run(t, new(LinearitySuite))
}

func (s *LinearitySuite) TestLinearVarUsedOnceIsFine() {
	// \x. x
	term := Abs{Param: "x", Body: Var{Name: "x"}}
	require.NoError(s.T(), checkLinearity(term))
}

func (s *LinearitySuite) TestUnusedLinearVarIsAViolation() {
	// \x. |0>  -- x is never used.
	term := Abs{Param: "x", Body: KetZero}
	err := checkLinearity(term)
	require.Error(s.T(), err)
	var lerr *LinearityViolationError
	require.ErrorAs(s.T(), err, &lerr)
}

func (s *LinearitySuite) TestDuplicatedLinearVarIsAViolation() {
	// \x. (C (pair x x)) -- x used twice, scenario S4 of spec §8.
	term := Abs{Param: "x", Body: App{Func: Gate{Symbol: "C"}, Arg: pair(Var{Name: "x"}, Var{Name: "x"})}}
	err := checkLinearity(term)
	require.Error(s.T(), err)
	var lerr *LinearityViolationError
	require.ErrorAs(s.T(), err, &lerr)
}

func (s *LinearitySuite) TestLinearVarEscapingBangIsAViolation() {
	// \x. !(x) -- a linear variable may never appear under a Bang.
	term := Abs{Param: "x", Body: Bang{Inner: Var{Name: "x"}}}
	err := checkLinearity(term)
	require.Error(s.T(), err)
}

func (s *LinearitySuite) TestNonlinearVarMayBeUsedAnyNumberOfTimes() {
	// #x. C (pair x x) -- legal: x is nonlinear.
	term := NonlinearAbs{Param: "x", Body: App{Func: Gate{Symbol: "C"}, Arg: pair(Var{Name: "x"}, Var{Name: "x"})}}
	require.NoError(s.T(), checkLinearity(term))
}

func (s *LinearitySuite) TestNonlinearVarMayBeUnused() {
	// #x. |0> -- legal: nonlinear variables need not be used at all.
	term := NonlinearAbs{Param: "x", Body: KetZero}
	require.NoError(s.T(), checkLinearity(term))
}

func (s *LinearitySuite) TestLinearVarCapturedAcrossNestedBinderStillCountsOnce() {
	// \x. (\y. (pair x y)) -- x is captured from the outer binder and
	// used exactly once inside the inner one, alongside y used once.
	term := Abs{Param: "x", Body: Abs{Param: "y", Body: pair(Var{Name: "x"}, Var{Name: "y"})}}
	require.NoError(s.T(), checkLinearity(term))
}
