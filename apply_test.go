package qlam

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ApplySuite exercises the application relation (spec §4.7) directly,
// beneath the evaluator's recursive-descent driver.
type ApplySuite struct {
	suite.Suite
	rng *rand.Rand
}

func TestApplySuite(t *testing.T) {
	suite.Run(t, new(ApplySuite))
}

func (s *ApplySuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(3))
}

func (s *ApplySuite) TestMeasurementOverSuperposition() {
	sup := SuperposValue{Superposition: Superposition{{Term: KetZero, Amp: complex(1, 0)}}}
	val, err := apply(TermValue{Term: Meas{}}, sup, s.rng)
	require.NoError(s.T(), err)
	tv, ok := val.(TermValue)
	require.True(s.T(), ok)
	require.Equal(s.T(), "|0>", tv.Term.String())
}

func (s *ApplySuite) TestMeasurementOfNonSuperpositionIsBadApplication() {
	_, err := apply(TermValue{Term: Meas{}}, TermValue{Term: KetZero}, s.rng)
	require.Error(s.T(), err)
	var berr *BadApplicationError
	require.ErrorAs(s.T(), err, &berr)
}

func (s *ApplySuite) TestGateDispatchProducesSuperposition() {
	val, err := apply(TermValue{Term: Gate{Symbol: "H"}}, TermValue{Term: KetZero}, s.rng)
	require.NoError(s.T(), err)
	sup, ok := val.(SuperposValue)
	require.True(s.T(), ok)
	require.Len(s.T(), sup.Superposition, 2)
}

func (s *ApplySuite) TestApplyingASuperposedFunctionDistributes() {
	funcs := SuperposValue{Superposition: Superposition{
		{Term: Abs{Param: "x", Body: Var{Name: "x"}}, Amp: complex(sqrtHalf, 0)},
		{Term: Gate{Symbol: "T"}, Amp: complex(sqrtHalf, 0)},
	}}
	val, err := apply(funcs, TermValue{Term: KetZero}, s.rng)
	require.NoError(s.T(), err)
	sup, ok := val.(SuperposValue)
	require.True(s.T(), ok)
	// first branch reduces directly to |0>, second branch (T |0>) itself
	// yields a trivial one-term superposition that gets flattened in.
	require.Len(s.T(), sup.Superposition, 2)
}

func (s *ApplySuite) TestBareLHSThatIsNotCallableIsBadApplication() {
	_, err := apply(TermValue{Term: KetZero}, TermValue{Term: KetOne}, s.rng)
	require.Error(s.T(), err)
}
