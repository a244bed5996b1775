package dnd5e

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeMonster is the rpg-toolkit entity type reported by combatants
const EntityTypeMonster = "monster"

// EncounterMonster is one rolled combatant. It lives for a single generation
// request and is never persisted.
type EncounterMonster struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Initiative int    `json:"initiative"`
	HP         int    `json:"hp"`
}

// GetID implements core.Entity
func (m *EncounterMonster) GetID() string {
	return m.ID
}

// GetType implements core.Entity
func (m *EncounterMonster) GetType() string {
	return EntityTypeMonster
}

var _ core.Entity = (*EncounterMonster)(nil)

// Thresholds are the XP values at which an encounter becomes Easy, Medium,
// Hard and Deadly
type Thresholds struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
	Deadly int `json:"deadly"`
}

// Add returns the element-wise sum of two threshold rows
func (t Thresholds) Add(other Thresholds) Thresholds {
	return Thresholds{
		Easy:   t.Easy + other.Easy,
		Medium: t.Medium + other.Medium,
		Hard:   t.Hard + other.Hard,
		Deadly: t.Deadly + other.Deadly,
	}
}
