package hitdice

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

// MinimumTotal is the floor applied to clamped results
const MinimumTotal = 1

// EvaluatorConfig holds the dependencies for an Evaluator
type EvaluatorConfig struct {
	Roller dice.Roller
	// Unclamped disables the floor of MinimumTotal. Hit points are always
	// clamped; general purpose rolls are not.
	Unclamped bool
}

// Validate ensures all required dependencies are provided
func (c *EvaluatorConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// Evaluator rolls parsed expressions
type Evaluator struct {
	roller    dice.Roller
	unclamped bool
}

// NewEvaluator creates an Evaluator
func NewEvaluator(cfg *EvaluatorConfig) (*Evaluator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid evaluator config")
	}
	return &Evaluator{
		roller:    cfg.Roller,
		unclamped: cfg.Unclamped,
	}, nil
}

// PoolResult is the outcome of rolling one pool
type PoolResult struct {
	Pool  Pool
	Rolls []int
	Sum   int
}

// Result is a fully itemized roll
type Result struct {
	Expression Expression
	Pools      []PoolResult
	Modifier   int
	// Raw is the sum of every die plus the modifier
	Raw int
	// Total is Raw after the floor is applied (equal to Raw when unclamped)
	Total int
}

// Roll rolls every pool of expr and returns the itemized result
func (e *Evaluator) Roll(expr Expression) (*Result, error) {
	result := &Result{
		Expression: expr,
		Pools:      make([]PoolResult, 0, len(expr.Pools)),
		Modifier:   expr.Modifier,
		Raw:        expr.Modifier,
	}

	for _, pool := range expr.Pools {
		rolls, err := e.roller.RollN(pool.Count, pool.Faces)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", pool)
		}
		sum := 0
		for _, r := range rolls {
			sum += r
		}
		result.Pools = append(result.Pools, PoolResult{Pool: pool, Rolls: rolls, Sum: sum})
		result.Raw += sum
	}

	result.Total = result.Raw
	if !e.unclamped && result.Total < MinimumTotal {
		result.Total = MinimumTotal
	}
	return result, nil
}

// Evaluate rolls expr and returns only the total
func (e *Evaluator) Evaluate(expr Expression) (int, error) {
	result, err := e.Roll(expr)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}
