package monster

import (
	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
)

// ListMonstersInput defines the request for listing monsters
type ListMonstersInput struct{}

// ListMonstersOutput defines the response for listing monsters
type ListMonstersOutput struct {
	Monsters []*dnd5e.Monster
}

// GetMonsterInput defines the request for getting a monster
type GetMonsterInput struct {
	Name string
}

// GetMonsterOutput defines the response for getting a monster
type GetMonsterOutput struct {
	Monster *dnd5e.Monster
}

// CreateMonsterInput defines the request for creating a monster
type CreateMonsterInput struct {
	Monster *dnd5e.Monster
}

// CreateMonsterOutput defines the response for creating a monster
type CreateMonsterOutput struct {
	// Created is false when a monster with the same name already exists
	Created bool
	Monster *dnd5e.Monster
}

// UpdateMonsterInput defines the request for replacing a monster
type UpdateMonsterInput struct {
	Name    string
	Monster *dnd5e.Monster
}

// UpdateMonsterOutput defines the response for replacing a monster
type UpdateMonsterOutput struct {
	// Updated is false when no monster has the given name
	Updated bool
}

// DeleteMonsterInput defines the request for deleting a monster
type DeleteMonsterInput struct {
	Name string
}

// DeleteMonsterOutput defines the response for deleting a monster
type DeleteMonsterOutput struct {
	// Deleted is false when no monster has the given name
	Deleted bool
}

// ImportMonstersInput defines the request for bulk loading monsters
type ImportMonstersInput struct {
	Monsters []*dnd5e.Monster
}

// ImportMonstersOutput defines the response for bulk loading monsters
type ImportMonstersOutput struct {
	Created []string
	Skipped []string
}
