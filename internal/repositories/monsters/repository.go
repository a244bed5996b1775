// Package monsters defines the monster catalog: persistence of monster
// templates behind a content-hash-checked cache
package monsters

//go:generate mockgen -destination=mock/mock_repository.go -package=monstersmock github.com/KirkDiggler/rpg-encounters/internal/repositories/monsters Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
)

// Repository defines the interface for monster catalog persistence.
// Names are matched exactly. Every operation re-reads the backing document,
// so changes made outside this process are observed on the next call.
type Repository interface {
	// List returns every monster in document order
	// Returns errors.Internal or errors.DataLoss for storage failures
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Get returns the first monster with the given name
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if no monster has that name
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Create appends a monster. Created is false if the name is taken.
	// Returns errors.InvalidArgument for a nil monster or empty name
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Update replaces the first monster with the given name. Updated is
	// false if no monster has that name.
	// Returns errors.AlreadyExists if the replacement is renamed onto
	// another existing monster
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes every monster with the given name. Deleted is false if
	// none matched.
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the input for listing monsters
type ListInput struct{}

// ListOutput defines the output for listing monsters
type ListOutput struct {
	Monsters []*dnd5e.Monster
}

// GetInput defines the input for getting a monster
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a monster
type GetOutput struct {
	Monster *dnd5e.Monster
}

// CreateInput defines the input for creating a monster
type CreateInput struct {
	Monster *dnd5e.Monster
}

// CreateOutput defines the output for creating a monster
type CreateOutput struct {
	Created bool
}

// UpdateInput defines the input for updating a monster
type UpdateInput struct {
	Name    string
	Monster *dnd5e.Monster
}

// UpdateOutput defines the output for updating a monster
type UpdateOutput struct {
	Updated bool
}

// DeleteInput defines the input for deleting a monster
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a monster
type DeleteOutput struct {
	Deleted bool
}
