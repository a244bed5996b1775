package encounter

import (
	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
)

// GenerateInput defines the request for generating an encounter
type GenerateInput struct {
	// CharacterLevels holds one entry per party member
	CharacterLevels []int
	// Difficulty is the tier the caller is aiming for. It is validated but
	// does not influence generation.
	Difficulty string
	// Monsters maps catalog names to how many of each to field
	Monsters map[string]int
}

// GenerateOutput defines the response for generating an encounter
type GenerateOutput struct {
	Monsters        []*dnd5e.EncounterMonster
	TotalXP         int
	AdjustedXP      int
	Difficulty      dnd5e.Difficulty
	PartyThresholds dnd5e.Thresholds
}
