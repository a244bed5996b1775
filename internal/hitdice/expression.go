package hitdice

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

var termPattern = regexp.MustCompile(`(?i)([+-]?\d+d\d+|[+-]?\d+)`)

// Limits on a single expression. They keep every roll bounded in memory and
// keep Min, Max and the running modifier far from integer overflow.
const (
	// MaxDiceCount caps the number of dice across all pools
	MaxDiceCount = 1000
	// MaxFaces caps the faces of any one die
	MaxFaces = 1000
	// MaxModifier caps the absolute value of the accumulated modifier
	MaxModifier = 1_000_000
)

// Pool is a group of identical dice, e.g. the "2d8" in "2d8+3"
type Pool struct {
	Count int
	Faces int
}

// String renders the pool as "NdM"
func (p Pool) String() string {
	return strconv.Itoa(p.Count) + "d" + strconv.Itoa(p.Faces)
}

// Expression is a parsed hit-dice expression: dice pools in the order they
// appeared plus a signed flat modifier
type Expression struct {
	Pools    []Pool
	Modifier int
}

// String returns canonical notation. Parse(e.String()) yields an equal
// expression.
func (e Expression) String() string {
	if len(e.Pools) == 0 {
		return strconv.Itoa(e.Modifier)
	}

	parts := make([]string, 0, len(e.Pools))
	for _, p := range e.Pools {
		parts = append(parts, p.String())
	}
	out := strings.Join(parts, "+")

	switch {
	case e.Modifier > 0:
		out += "+" + strconv.Itoa(e.Modifier)
	case e.Modifier < 0:
		out += strconv.Itoa(e.Modifier)
	}
	return out
}

// DiceCount returns the total number of dice across all pools
func (e Expression) DiceCount() int {
	n := 0
	for _, p := range e.Pools {
		n += p.Count
	}
	return n
}

// Min returns the smallest value the expression can roll before clamping
func (e Expression) Min() int {
	return e.DiceCount() + e.Modifier
}

// Max returns the largest value the expression can roll
func (e Expression) Max() int {
	total := e.Modifier
	for _, p := range e.Pools {
		total += p.Count * p.Faces
	}
	return total
}

// Parse converts dice notation into an Expression. Any failure is an
// InvalidArgument error carrying the offending expression as metadata.
func Parse(expression string) (Expression, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expression)

	if compact == "" {
		return Expression{}, errors.InvalidExpression(expression, "expression is empty")
	}

	terms := termPattern.FindAllString(compact, -1)
	if len(terms) == 0 {
		return Expression{}, errors.InvalidExpression(expression, "no dice or modifier terms found")
	}

	var expr Expression
	dice := 0
	for _, term := range terms {
		idx := strings.IndexAny(term, "dD")
		if idx < 0 {
			n, err := strconv.Atoi(term)
			if err != nil || n > MaxModifier || n < -MaxModifier {
				return Expression{}, errors.InvalidExpression(expression, "modifier "+term+" is out of range")
			}
			expr.Modifier += n
			if expr.Modifier > MaxModifier || expr.Modifier < -MaxModifier {
				return Expression{}, errors.InvalidExpression(expression,
					"modifier total exceeds "+strconv.Itoa(MaxModifier))
			}
			continue
		}

		if strings.HasPrefix(term, "-") {
			return Expression{}, errors.InvalidExpression(expression, "negative dice pool "+term)
		}

		pool, err := parsePool(strings.TrimPrefix(term[:idx], "+"), term[idx+1:])
		if err != nil {
			return Expression{}, errors.InvalidExpression(expression, errors.GetMessage(err))
		}
		dice += pool.Count
		if dice > MaxDiceCount {
			return Expression{}, errors.InvalidExpression(expression,
				"more than "+strconv.Itoa(MaxDiceCount)+" dice")
		}
		expr.Pools = append(expr.Pools, pool)
	}

	return expr, nil
}

func parsePool(countText, facesText string) (Pool, error) {
	count, err := strconv.Atoi(countText)
	if err != nil {
		return Pool{}, errors.InvalidArgumentf("dice count %s is out of range", countText)
	}
	faces, err := strconv.Atoi(facesText)
	if err != nil {
		return Pool{}, errors.InvalidArgumentf("die faces %s is out of range", facesText)
	}
	if count < 1 {
		return Pool{}, errors.InvalidArgumentf("dice count must be at least 1, got %d", count)
	}
	if faces < 1 {
		return Pool{}, errors.InvalidArgumentf("die faces must be at least 1, got %d", faces)
	}
	if count > MaxDiceCount {
		return Pool{}, errors.InvalidArgumentf("dice count must be at most %d, got %d", MaxDiceCount, count)
	}
	if faces > MaxFaces {
		return Pool{}, errors.InvalidArgumentf("die faces must be at most %d, got %d", MaxFaces, faces)
	}
	return Pool{Count: count, Faces: faces}, nil
}

// MustParse is Parse for compile-time constant notation; it panics on error
func MustParse(expression string) Expression {
	expr, err := Parse(expression)
	if err != nil {
		panic(err)
	}
	return expr
}
