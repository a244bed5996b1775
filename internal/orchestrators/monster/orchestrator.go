// Package monster implements validated CRUD over the monster catalog
package monster

//go:generate mockgen -destination=mock/mock_service.go -package=monstermock github.com/KirkDiggler/rpg-encounters/internal/orchestrators/monster Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/hitdice"
	"github.com/KirkDiggler/rpg-encounters/internal/repositories/monsters"
)

// Service defines the interface for monster operations
type Service interface {
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)
	CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error)
	UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error)
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)

	// ImportMonsters creates every monster in order, skipping names that
	// already exist. Validation runs over the whole batch before anything
	// is written.
	ImportMonsters(ctx context.Context, input *ImportMonstersInput) (*ImportMonstersOutput, error)
}

// Config holds the dependencies for the monster orchestrator
type Config struct {
	MonsterRepo monsters.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	monsterRepo monsters.Repository
}

// NewOrchestrator creates a new monster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{monsterRepo: cfg.MonsterRepo}, nil
}

func (o *orchestrator) ListMonsters(ctx context.Context, _ *ListMonstersInput) (*ListMonstersOutput, error) {
	out, err := o.monsterRepo.List(ctx, &monsters.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}
	return &ListMonstersOutput{Monsters: out.Monsters}, nil
}

func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	out, err := o.monsterRepo.Get(ctx, &monsters.GetInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %s", input.Name)
	}
	return &GetMonsterOutput{Monster: out.Monster}, nil
}

func (o *orchestrator) CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := normalizeMonster(input.Monster); err != nil {
		return nil, err
	}

	out, err := o.monsterRepo.Create(ctx, &monsters.CreateInput{Monster: input.Monster})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create monster %s", input.Monster.Name)
	}

	if out.Created {
		slog.InfoContext(ctx, "Monster created",
			"name", input.Monster.Name,
			"xp", input.Monster.Challenge.XP)
	}
	return &CreateMonsterOutput{Created: out.Created, Monster: input.Monster}, nil
}

func (o *orchestrator) UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}
	if err := normalizeMonster(input.Monster); err != nil {
		return nil, err
	}

	out, err := o.monsterRepo.Update(ctx, &monsters.UpdateInput{
		Name:    input.Name,
		Monster: input.Monster,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update monster %s", input.Name)
	}

	if out.Updated {
		slog.InfoContext(ctx, "Monster updated",
			"name", input.Name,
			"new_name", input.Monster.Name)
	}
	return &UpdateMonsterOutput{Updated: out.Updated}, nil
}

func (o *orchestrator) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	out, err := o.monsterRepo.Delete(ctx, &monsters.DeleteInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster %s", input.Name)
	}

	if out.Deleted {
		slog.InfoContext(ctx, "Monster deleted", "name", input.Name)
	}
	return &DeleteMonsterOutput{Deleted: out.Deleted}, nil
}

func (o *orchestrator) ImportMonsters(ctx context.Context, input *ImportMonstersInput) (*ImportMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	for i, m := range input.Monsters {
		if err := normalizeMonster(m); err != nil {
			return nil, errors.Wrapf(err, "monster %d is invalid", i).WithMeta("index", i)
		}
	}

	out := &ImportMonstersOutput{}
	for _, m := range input.Monsters {
		created, err := o.monsterRepo.Create(ctx, &monsters.CreateInput{Monster: m})
		if err != nil {
			return out, errors.Wrapf(err, "failed to import monster %s", m.Name)
		}
		if !created.Created {
			slog.WarnContext(ctx, "Skipping monster that already exists", "name", m.Name)
			out.Skipped = append(out.Skipped, m.Name)
			continue
		}
		out.Created = append(out.Created, m.Name)
	}

	slog.InfoContext(ctx, "Monsters imported",
		"created", len(out.Created),
		"skipped", len(out.Skipped))
	return out, nil
}

// normalizeMonster validates the fields the encounter engine depends on and
// rewrites size and alignment into their canonical spelling
func normalizeMonster(m *dnd5e.Monster) error {
	if m == nil {
		return errors.InvalidArgument("monster is required")
	}

	m.Name = strings.TrimSpace(m.Name)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", m.Name, vb)
	errors.ValidateNonNegative("challenge.xp", m.Challenge.XP, vb)

	if m.HP.HitDice == "" {
		vb.RequiredField("hp.hit_dice")
	} else if expr, err := hitdice.Parse(m.HP.HitDice); err != nil {
		vb.InvalidField("hp.hit_dice", errors.GetMessage(err))
	} else {
		m.HP.HitDice = expr.String()
	}

	if m.Size != "" {
		if size, ok := dnd5e.ParseSize(m.Size); ok {
			m.Size = size
		} else {
			errors.ValidateEnum("size", m.Size, dnd5e.Sizes, vb)
		}
	}
	if m.Alignment != "" {
		if alignment, ok := dnd5e.ParseAlignment(m.Alignment); ok {
			m.Alignment = alignment
		} else {
			errors.ValidateEnum("alignment", m.Alignment, dnd5e.Alignments, vb)
		}
	}

	return vb.Build()
}
