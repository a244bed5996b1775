// Package encounter implements the encounter orchestrator: roster expansion,
// initiative and hit point rolls, XP math and difficulty classification
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/hitdice"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-encounters/internal/repositories/monsters"
)

const (
	tracerName = "github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter"

	// InitiativeDie is the die rolled for each combatant's initiative
	InitiativeDie = 20

	// MaxRosterSize caps the total number of monsters in one request
	MaxRosterSize = 1000
)

// Service defines the interface for encounter operations
type Service interface {
	// Generate builds a rolled encounter for a party from a monster roster.
	// Returns errors.InvalidArgument for bad input or malformed hit dice
	// Returns errors.NotFound if any requested monster is not in the catalog
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	MonsterRepo monsters.Repository
	Roller      dice.Roller
	IDGenerator idgen.Generator
	// Tracer defaults to the global provider's tracer
	Tracer trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	monsterRepo monsters.Repository
	roller      dice.Roller
	hpEvaluator *hitdice.Evaluator
	idGen       idgen.Generator
	tracer      trace.Tracer
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	evaluator, err := hitdice.NewEvaluator(&hitdice.EvaluatorConfig{Roller: cfg.Roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create hit point evaluator")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &orchestrator{
		monsterRepo: cfg.MonsterRepo,
		roller:      cfg.Roller,
		hpEvaluator: evaluator,
		idGen:       cfg.IDGenerator,
		tracer:      tracer,
	}, nil
}

// template is a resolved catalog entry with its hit dice already parsed
type template struct {
	monster *dnd5e.Monster
	hitDice hitdice.Expression
}

func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	ctx, span := o.tracer.Start(ctx, "encounter.Generate")
	defer span.End()

	output, err := o.generate(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errors.GetMessage(err))
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("encounter.party_size", len(input.CharacterLevels)),
		attribute.Int("encounter.monster_count", len(output.Monsters)),
		attribute.Int("encounter.total_xp", output.TotalXP),
		attribute.Int("encounter.adjusted_xp", output.AdjustedXP),
		attribute.String("encounter.difficulty", output.Difficulty.String()),
	)
	return output, nil
}

func (o *orchestrator) generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if err := validateGenerateInput(input); err != nil {
		return nil, err
	}

	roster := expandRoster(input.Monsters)

	// Resolve everything before rolling anything, so a bad name or a
	// malformed catalog entry fails without consuming randomness.
	templates := make(map[string]*template, len(input.Monsters))
	for _, name := range roster {
		if _, ok := templates[name]; ok {
			continue
		}
		tmpl, err := o.resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		templates[name] = tmpl
	}

	totalXP := 0
	for _, name := range roster {
		totalXP += templates[name].monster.Challenge.XP
	}

	combatants := make([]*dnd5e.EncounterMonster, 0, len(roster))
	for _, name := range roster {
		initiative, err := o.roller.Roll(InitiativeDie)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll initiative for %s", name)
		}
		hp, err := o.hpEvaluator.Evaluate(templates[name].hitDice)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll hit points for %s", name)
		}
		combatants = append(combatants, &dnd5e.EncounterMonster{
			ID:         o.idGen.Generate(),
			Name:       name,
			Initiative: initiative,
			HP:         hp,
		})
	}

	adjustedXP := AdjustedXP(totalXP, len(roster))
	thresholds := PartyThresholds(input.CharacterLevels)
	difficulty := Classify(adjustedXP, thresholds)

	slog.InfoContext(ctx, "Encounter generated",
		"party_size", len(input.CharacterLevels),
		"monsters", len(combatants),
		"total_xp", totalXP,
		"adjusted_xp", adjustedXP,
		"difficulty", difficulty.String(),
		"requested_difficulty", input.Difficulty)

	return &GenerateOutput{
		Monsters:        combatants,
		TotalXP:         totalXP,
		AdjustedXP:      adjustedXP,
		Difficulty:      difficulty,
		PartyThresholds: thresholds,
	}, nil
}

func (o *orchestrator) resolve(ctx context.Context, name string) (*template, error) {
	got, err := o.monsterRepo.Get(ctx, &monsters.GetInput{Name: name})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.MonsterNotFound(name)
		}
		return nil, errors.Wrapf(err, "failed to load monster %s", name)
	}

	expr, err := hitdice.Parse(got.Monster.HP.HitDice)
	if err != nil {
		return nil, errors.Wrapf(err, "monster %s has invalid hit dice", name).
			WithMeta("monster_name", name)
	}
	return &template{monster: got.Monster, hitDice: expr}, nil
}

func validateGenerateInput(input *GenerateInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if len(input.CharacterLevels) == 0 {
		vb.Field("character_levels", "must contain at least one level")
	}
	total := 0
	for name, count := range input.Monsters {
		if name == "" {
			vb.Field("monsters", "monster name cannot be empty")
		}
		if count < 0 {
			vb.Fieldf("monsters", "count for %s must not be negative", name)
			continue
		}
		// compared before adding so the sum cannot overflow
		if total <= MaxRosterSize && count > MaxRosterSize-total {
			vb.Fieldf("monsters", "roster must not exceed %d monsters", MaxRosterSize)
		}
		total += min(count, MaxRosterSize+1)
	}
	if input.Difficulty != "" {
		if _, ok := dnd5e.ParseDifficulty(input.Difficulty); !ok {
			vb.Fieldf("difficulty", "unknown difficulty %q", input.Difficulty)
		}
	}
	return vb.Build()
}

// expandRoster lists one name per requested instance, names in ascending
// order, each repeated count times
func expandRoster(requested map[string]int) []string {
	names := make([]string, 0, len(requested))
	total := 0
	for name, count := range requested {
		names = append(names, name)
		total += count
	}
	sort.Strings(names)

	roster := make([]string, 0, total)
	for _, name := range names {
		for i := 0; i < requested[name]; i++ {
			roster = append(roster, name)
		}
	}
	return roster
}
