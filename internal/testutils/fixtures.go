package testutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/testutils/builders"
)

// Names of the standard test monsters
const (
	MonsterGoblin  = "Goblin"
	MonsterOrc     = "Orc"
	MonsterBugbear = "Bugbear"
	MonsterOgre    = "Ogre"
)

// Goblin is a CR 1/4 monster worth 50 XP
func Goblin() *dnd5e.Monster {
	return builders.NewMonsterBuilder().
		WithName(MonsterGoblin).
		WithSize(dnd5e.SizeSmall).
		WithType("humanoid").
		WithAlignment(dnd5e.AlignmentNeutralEvil).
		WithHitDice("2d6", 7).
		WithChallenge(0.25, 50).
		Build()
}

// Orc is a CR 1/2 monster worth 100 XP
func Orc() *dnd5e.Monster {
	return builders.NewMonsterBuilder().
		WithName(MonsterOrc).
		WithSize(dnd5e.SizeMedium).
		WithType("humanoid").
		WithAlignment(dnd5e.AlignmentChaoticEvil).
		WithHitDice("2d8+6", 15).
		WithChallenge(0.5, 100).
		Build()
}

// Bugbear is a CR 1 monster worth 200 XP
func Bugbear() *dnd5e.Monster {
	return builders.NewMonsterBuilder().
		WithName(MonsterBugbear).
		WithSize(dnd5e.SizeMedium).
		WithType("humanoid").
		WithAlignment(dnd5e.AlignmentChaoticEvil).
		WithHitDice("5d8+5", 27).
		WithChallenge(1, 200).
		Build()
}

// Ogre is a CR 2 monster worth 450 XP
func Ogre() *dnd5e.Monster {
	return builders.NewMonsterBuilder().
		WithName(MonsterOgre).
		WithSize(dnd5e.SizeLarge).
		WithType("giant").
		WithAlignment(dnd5e.AlignmentChaoticEvil).
		WithHitDice("7d10+21", 59).
		WithChallenge(2, 450).
		Build()
}

// StandardMonsters returns fresh copies of every standard test monster
func StandardMonsters() []*dnd5e.Monster {
	return []*dnd5e.Monster{Goblin(), Orc(), Bugbear(), Ogre()}
}

// CatalogJSON encodes monsters the way the catalog persists them
func CatalogJSON(t *testing.T, monsters ...*dnd5e.Monster) []byte {
	if monsters == nil {
		monsters = []*dnd5e.Monster{}
	}
	data, err := json.MarshalIndent(monsters, "", "  ")
	require.NoError(t, err, "failed to encode catalog")
	return data
}
