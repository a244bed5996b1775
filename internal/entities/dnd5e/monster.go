package dnd5e

import (
	"encoding/json"
	"fmt"
	"math"
)

// Monster is a creature template held by the monster catalog. Only Name,
// HP.HitDice and Challenge.XP are interpreted by the encounter engine; the
// remaining stat block is carried through untouched.
type Monster struct {
	Name                string          `json:"name"`
	Size                string          `json:"size,omitempty"`
	Type                string          `json:"type,omitempty"`
	Alignment           string          `json:"alignment,omitempty"`
	ArmorClass          *ArmorClass     `json:"armor_class,omitempty"`
	HP                  HitPoints       `json:"hp"`
	Speed               map[string]int  `json:"speed,omitempty"`
	AbilityScores       *AbilityScores  `json:"ability_scores,omitempty"`
	SavingThrows        map[string]int  `json:"saving_throws,omitempty"`
	Skills              map[string]int  `json:"skills,omitempty"`
	DamageResistances   []string        `json:"damage_resistances,omitempty"`
	DamageImmunities    []string        `json:"damage_immunities,omitempty"`
	ConditionImmunities []string        `json:"condition_immunities,omitempty"`
	Senses              map[string]int  `json:"senses,omitempty"`
	Languages           []string        `json:"languages,omitempty"`
	Challenge           Challenge       `json:"challenge"`
	Actions             []StatBlockText `json:"actions,omitempty"`
	SpecialAbilities    []StatBlockText `json:"special_abilities,omitempty"`
	Description         string          `json:"description,omitempty"`
}

// HitPoints describes how a monster's hit points are determined
type HitPoints struct {
	Average int    `json:"average"`
	HitDice string `json:"hit_dice"` // e.g. "2d8+2"
}

// Challenge is the monster's challenge rating and the XP it is worth
type Challenge struct {
	Rating float64 `json:"rating"`
	XP     int     `json:"xp"`
}

// maxXP keeps decoded XP exactly representable in a float64
const maxXP = 1 << 53

// UnmarshalJSON accepts xp written either as an integer or as a whole-number
// float ("xp": 50.0), which is how catalogs written by float-typed tooling
// store it
func (c *Challenge) UnmarshalJSON(data []byte) error {
	var raw struct {
		Rating float64 `json:"rating"`
		XP     float64 `json:"xp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.XP != math.Trunc(raw.XP) {
		return fmt.Errorf("challenge xp %v is not a whole number", raw.XP)
	}
	if math.Abs(raw.XP) > maxXP {
		return fmt.Errorf("challenge xp %v is out of range", raw.XP)
	}

	c.Rating = raw.Rating
	c.XP = int(raw.XP)
	return nil
}

// ArmorClass is the monster's AC and where it comes from
type ArmorClass struct {
	Value int    `json:"value"`
	Armor string `json:"armor,omitempty"`
}

// AbilityScores holds the six ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// StatBlockText is a named block of rules text (an action, a trait)
type StatBlockText struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
