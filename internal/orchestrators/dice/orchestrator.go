// Package dice implements the dice orchestrator for ad hoc rolls
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-encounters/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/hitdice"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/idgen"
)

// Service defines the interface for dice operations
type Service interface {
	// RollDice rolls any dice notation the hit dice grammar accepts. Totals
	// are not clamped, so "1d4-5" can come out negative.
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	evaluator *hitdice.Evaluator
	idGen     idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	evaluator, err := hitdice.NewEvaluator(&hitdice.EvaluatorConfig{
		Roller:    cfg.Roller,
		Unclamped: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create evaluator")
	}

	return &orchestrator{
		evaluator: evaluator,
		idGen:     cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil || strings.TrimSpace(input.Notation) == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	expr, err := hitdice.Parse(input.Notation)
	if err != nil {
		return nil, err
	}

	result, err := o.evaluator.Roll(expr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	roll := &DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    expr.String(),
		Pools:       make([]PoolRoll, 0, len(result.Pools)),
		Modifier:    result.Modifier,
		Total:       result.Total,
		Description: input.Description,
	}
	for _, p := range result.Pools {
		roll.Pools = append(roll.Pools, PoolRoll{
			Notation: p.Pool.String(),
			Dice:     p.Rolls,
			Total:    p.Sum,
		})
	}

	slog.InfoContext(ctx, "Dice rolled successfully",
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{Roll: roll}, nil
}
