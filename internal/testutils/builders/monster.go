// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
)

// MonsterBuilder provides a fluent interface for building test Monster instances
type MonsterBuilder struct {
	monster *dnd5e.Monster
}

// NewMonsterBuilder creates a new builder with minimal defaults
func NewMonsterBuilder() *MonsterBuilder {
	return &MonsterBuilder{
		monster: &dnd5e.Monster{
			Name: "Test Monster",
			HP: dnd5e.HitPoints{
				Average: 4,
				HitDice: "1d8",
			},
			Challenge: dnd5e.Challenge{
				Rating: 0.125,
				XP:     25,
			},
		},
	}
}

// WithName sets the monster name
func (b *MonsterBuilder) WithName(name string) *MonsterBuilder {
	b.monster.Name = name
	return b
}

// WithSize sets the size category
func (b *MonsterBuilder) WithSize(size string) *MonsterBuilder {
	b.monster.Size = size
	return b
}

// WithType sets the creature type
func (b *MonsterBuilder) WithType(creatureType string) *MonsterBuilder {
	b.monster.Type = creatureType
	return b
}

// WithAlignment sets the alignment
func (b *MonsterBuilder) WithAlignment(alignment string) *MonsterBuilder {
	b.monster.Alignment = alignment
	return b
}

// WithHitDice sets the hit dice and average hit points
func (b *MonsterBuilder) WithHitDice(hitDice string, average int) *MonsterBuilder {
	b.monster.HP = dnd5e.HitPoints{Average: average, HitDice: hitDice}
	return b
}

// WithChallenge sets the challenge rating and XP value
func (b *MonsterBuilder) WithChallenge(rating float64, xp int) *MonsterBuilder {
	b.monster.Challenge = dnd5e.Challenge{Rating: rating, XP: xp}
	return b
}

// WithArmorClass sets the armor class
func (b *MonsterBuilder) WithArmorClass(value int, armor string) *MonsterBuilder {
	b.monster.ArmorClass = &dnd5e.ArmorClass{Value: value, Armor: armor}
	return b
}

// WithAbilityScores sets all six ability scores
func (b *MonsterBuilder) WithAbilityScores(str, dex, con, intel, wis, cha int) *MonsterBuilder {
	b.monster.AbilityScores = &dnd5e.AbilityScores{
		Strength:     str,
		Dexterity:    dex,
		Constitution: con,
		Intelligence: intel,
		Wisdom:       wis,
		Charisma:     cha,
	}
	return b
}

// WithAction appends an action
func (b *MonsterBuilder) WithAction(name, description string) *MonsterBuilder {
	b.monster.Actions = append(b.monster.Actions, dnd5e.StatBlockText{Name: name, Description: description})
	return b
}

// Build returns the built monster
func (b *MonsterBuilder) Build() *dnd5e.Monster {
	return b.monster
}
