package qlam

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ParserSuite exercises the recursive-descent parser against spec
// §6.1's surface syntax.
type ParserSuite struct {
	suite.Suite
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserSuite))
}

func (s *ParserSuite) TestParsesVariable() {
	term, err := Parse("x")
	require.NoError(s.T(), err)
	require.Equal(s.T(), Var{Name: "x"}, term)
}

func (s *ParserSuite) TestParsesKets() {
	zero, err := Parse("|0>")
	require.NoError(s.T(), err)
	require.Equal(s.T(), KetZero, zero)

	one, err := Parse("|1>")
	require.NoError(s.T(), err)
	require.Equal(s.T(), KetOne, one)
}

func (s *ParserSuite) TestParsesGatesAndMeasurement() {
	for _, sym := range []string{"H", "C", "T"} {
		term, err := Parse(sym)
		require.NoError(s.T(), err)
		require.Equal(s.T(), Gate{Symbol: sym}, term)
	}
	term, err := Parse("M")
	require.NoError(s.T(), err)
	require.Equal(s.T(), Meas{}, term)
}

func (s *ParserSuite) TestParsesBackslashAbstraction() {
	term, err := Parse(`\x.x`)
	require.NoError(s.T(), err)
	require.Equal(s.T(), Abs{Param: "x", Body: Var{Name: "x"}}, term)
}

func (s *ParserSuite) TestParsesLambdaAbstraction() {
	term, err := Parse("λx.x")
	require.NoError(s.T(), err)
	require.Equal(s.T(), Abs{Param: "x", Body: Var{Name: "x"}}, term)
}

func (s *ParserSuite) TestParsesNonlinearAbstraction() {
	term, err := Parse("#x.x")
	require.NoError(s.T(), err)
	require.Equal(s.T(), NonlinearAbs{Param: "x", Body: Var{Name: "x"}}, term)
}

func (s *ParserSuite) TestParsesBangSuspendedArgumentInApplication() {
	term, err := Parse("f !x")
	require.NoError(s.T(), err)
	require.Equal(s.T(), App{Func: Var{Name: "f"}, Arg: Bang{Inner: Var{Name: "x"}}}, term)
}

func (s *ParserSuite) TestApplicationIsLeftAssociative() {
	term, err := Parse("f x y")
	require.NoError(s.T(), err)
	require.Equal(s.T(),
		App{Func: App{Func: Var{Name: "f"}, Arg: Var{Name: "x"}}, Arg: Var{Name: "y"}},
		term)
}

func (s *ParserSuite) TestParenthesesOverrideAssociativity() {
	term, err := Parse("f (x y)")
	require.NoError(s.T(), err)
	require.Equal(s.T(),
		App{Func: Var{Name: "f"}, Arg: App{Func: Var{Name: "x"}, Arg: Var{Name: "y"}}},
		term)
}

func (s *ParserSuite) TestRejectsReservedParamName() {
	_, err := Parse(`\H.H`)
	require.Error(s.T(), err)
	var perr *ParseError
	require.ErrorAs(s.T(), err, &perr)
}

func (s *ParserSuite) TestRejectsUnclosedParen() {
	_, err := Parse("(x")
	require.Error(s.T(), err)
}

func (s *ParserSuite) TestRejectsStrayKet() {
	_, err := Parse("|2>")
	require.Error(s.T(), err)
}

func (s *ParserSuite) TestRejectsEmptyInput() {
	_, err := Parse("")
	require.Error(s.T(), err)
}

func (s *ParserSuite) TestRejectsTrailingGarbage() {
	_, err := Parse("x )")
	require.Error(s.T(), err)
}
