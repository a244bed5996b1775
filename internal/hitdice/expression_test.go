package hitdice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/hitdice"
)

type ParseTestSuite struct {
	suite.Suite
}

func TestParseTestSuite(t *testing.T) {
	suite.Run(t, new(ParseTestSuite))
}

func (s *ParseTestSuite) TestValidExpressions() {
	testCases := []struct {
		name  string
		input string
		want  hitdice.Expression
	}{
		{
			name:  "pool with modifier",
			input: "2d8+3",
			want:  hitdice.Expression{Pools: []hitdice.Pool{{Count: 2, Faces: 8}}, Modifier: 3},
		},
		{
			name:  "uppercase separator",
			input: "2D6",
			want:  hitdice.Expression{Pools: []hitdice.Pool{{Count: 2, Faces: 6}}},
		},
		{
			name:  "whitespace ignored",
			input: " 3 d 6 - 1 ",
			want:  hitdice.Expression{Pools: []hitdice.Pool{{Count: 3, Faces: 6}}, Modifier: -1},
		},
		{
			name:  "multiple pools keep order",
			input: "1d10+2d4",
			want: hitdice.Expression{Pools: []hitdice.Pool{
				{Count: 1, Faces: 10},
				{Count: 2, Faces: 4},
			}},
		},
		{
			name:  "modifiers accumulate",
			input: "1d4+2-5+1",
			want:  hitdice.Expression{Pools: []hitdice.Pool{{Count: 1, Faces: 4}}, Modifier: -2},
		},
		{
			name:  "modifier only",
			input: "7",
			want:  hitdice.Expression{Modifier: 7},
		},
		{
			name:  "explicit plus on pool",
			input: "+1d12",
			want:  hitdice.Expression{Pools: []hitdice.Pool{{Count: 1, Faces: 12}}},
		},
		{
			name:  "stray characters skipped",
			input: "2d8x3",
			want:  hitdice.Expression{Pools: []hitdice.Pool{{Count: 2, Faces: 8}}, Modifier: 3},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := hitdice.Parse(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *ParseTestSuite) TestInvalidExpressions() {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "only whitespace", input: "   "},
		{name: "no terms", input: "abc"},
		{name: "negative pool", input: "-2d6"},
		{name: "negative pool after modifier", input: "3-1d4"},
		{name: "zero count", input: "0d6"},
		{name: "zero faces", input: "2d0"},
		{name: "count overflow", input: "99999999999999999999d6"},
		{name: "modifier overflow", input: "1d6+99999999999999999999"},
		{name: "count above cap", input: "1001d6"},
		{name: "huge count", input: "100000000000000d6"},
		{name: "faces above cap", input: "1d1001"},
		{name: "dice across pools above cap", input: "600d6+401d4"},
		{name: "modifier above cap", input: "1d6+1000001"},
		{name: "modifier sum above cap", input: "1d4+600000+600000"},
		{name: "negative modifier sum above cap", input: "-600000-600000"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := hitdice.Parse(tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(tc.input, errors.GetMeta(err)["expression"])
		})
	}
}

func (s *ParseTestSuite) TestStringRoundTrip() {
	for _, notation := range []string{"2d8+3", "1d10+2d4-1", "3d6", "0", "-3", "1d1", "12d12+40"} {
		s.Run(notation, func() {
			expr, err := hitdice.Parse(notation)
			s.Require().NoError(err)
			s.Equal(notation, expr.String())

			again, err := hitdice.Parse(expr.String())
			s.Require().NoError(err)
			s.Equal(expr, again)
		})
	}
}

func (s *ParseTestSuite) TestStringCanonicalizes() {
	expr, err := hitdice.Parse("2D8 + 1 + 2")
	s.Require().NoError(err)
	s.Equal("2d8+3", expr.String())
}

func TestExpression_Bounds(t *testing.T) {
	expr := hitdice.MustParse("2d8+1d4-2")
	assert.Equal(t, 3, expr.DiceCount())
	assert.Equal(t, 1, expr.Min())
	assert.Equal(t, 18, expr.Max())
}

func TestMustParse_Panics(t *testing.T) {
	require.Panics(t, func() { hitdice.MustParse("-1d6") })
}

func TestParse_AcceptsLimits(t *testing.T) {
	expr, err := hitdice.Parse("500d1000+500d2-1000000")
	require.NoError(t, err)
	assert.Equal(t, hitdice.MaxDiceCount, expr.DiceCount())
	assert.Equal(t, 500*hitdice.MaxFaces+1000-hitdice.MaxModifier, expr.Max())
}
