package v1alpha1

import (
	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
)

// GenerateEncounterRequest is the body of POST /encounters
type GenerateEncounterRequest struct {
	CharacterLevels []int          `json:"character_levels"`
	Difficulty      string         `json:"difficulty,omitempty"`
	Monsters        map[string]int `json:"monsters"`
}

// GenerateEncounterResponse is the body returned by POST /encounters
type GenerateEncounterResponse struct {
	Monsters        []*dnd5e.EncounterMonster `json:"monsters"`
	TotalXP         int                       `json:"total_xp"`
	AdjustedXP      int                       `json:"adjusted_xp"`
	Difficulty      dnd5e.Difficulty          `json:"difficulty"`
	PartyThresholds dnd5e.Thresholds          `json:"party_thresholds"`
}

// RollDiceRequest is the body of POST /dice/roll
type RollDiceRequest struct {
	Notation    string `json:"notation"`
	Description string `json:"description,omitempty"`
}

// PoolRoll is one pool within a RollDiceResponse
type PoolRoll struct {
	Notation string `json:"notation"`
	Dice     []int  `json:"dice"`
	Total    int    `json:"total"`
}

// RollDiceResponse is the body returned by POST /dice/roll
type RollDiceResponse struct {
	RollID      string     `json:"roll_id"`
	Notation    string     `json:"notation"`
	Pools       []PoolRoll `json:"pools"`
	Modifier    int        `json:"modifier"`
	Total       int        `json:"total"`
	Description string     `json:"description,omitempty"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}
