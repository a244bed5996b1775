package monsters

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/storage"
)

const (
	errMonsterNil   = "monster cannot be nil"
	errNameEmpty    = "monster name cannot be empty"
	storageOpRead   = "read"
	storageOpDecode = "decode"
	storageOpEncode = "encode"
	storageOpWrite  = "write"
)

// Config holds the dependencies for the monster catalog
type Config struct {
	Store storage.Store
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	return vb.Build()
}

type catalog struct {
	store storage.Store

	// mu serializes every operation end to end, so a read-modify-write never
	// interleaves with another operation on the same catalog
	mu    sync.Mutex
	cache documentCache
}

// NewCatalog creates a monster catalog over cfg.Store
func NewCatalog(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid monster catalog config")
	}
	return &catalog{store: cfg.Store}, nil
}

// load returns the current monsters, decoding only if the document changed.
// Callers must hold mu.
func (c *catalog) load(ctx context.Context) ([]*dnd5e.Monster, error) {
	raw, err := c.store.Read(ctx)
	if err != nil {
		return nil, errors.Storage(err, storageOpRead)
	}

	reloaded, err := c.cache.refreshIfStale(raw)
	if err != nil {
		return nil, errors.Storage(err, storageOpDecode)
	}
	if reloaded {
		slog.DebugContext(ctx, "Monster catalog reloaded",
			"count", len(c.cache.monsters),
			"bytes", len(raw))
	}
	return c.cache.monsters, nil
}

// save persists monsters. The cache is invalidated first so that a failed
// write can never leave it describing bytes that were not stored. Callers
// must hold mu.
func (c *catalog) save(ctx context.Context, monsters []*dnd5e.Monster) error {
	c.cache.invalidate()

	data, err := encodeDocument(monsters)
	if err != nil {
		return errors.Storage(err, storageOpEncode)
	}
	if err := c.store.Write(ctx, data); err != nil {
		return errors.Storage(err, storageOpWrite)
	}
	return nil
}

func (c *catalog) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	monsters, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Monsters: monsters}, nil
}

func (c *catalog) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	monsters, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	if i := indexOf(monsters, input.Name); i >= 0 {
		return &GetOutput{Monster: monsters[i]}, nil
	}
	return nil, errors.MonsterNotFound(input.Name)
}

func (c *catalog) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	monsters, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	if indexOf(monsters, input.Monster.Name) >= 0 {
		slog.InfoContext(ctx, "Monster already exists", "name", input.Monster.Name)
		return &CreateOutput{Created: false}, nil
	}

	next := make([]*dnd5e.Monster, 0, len(monsters)+1)
	next = append(next, monsters...)
	next = append(next, input.Monster)

	if err := c.save(ctx, next); err != nil {
		return nil, err
	}
	return &CreateOutput{Created: true}, nil
}

func (c *catalog) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	monsters, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	target := indexOf(monsters, input.Name)
	if target < 0 {
		return &UpdateOutput{Updated: false}, nil
	}

	if input.Monster.Name != input.Name {
		for i, m := range monsters {
			if i != target && m.Name == input.Monster.Name {
				return nil, errors.AlreadyExistsf("monster %q already exists", input.Monster.Name).
					WithMeta("monster_name", input.Monster.Name)
			}
		}
	}

	next := make([]*dnd5e.Monster, len(monsters))
	copy(next, monsters)
	next[target] = input.Monster

	if err := c.save(ctx, next); err != nil {
		return nil, err
	}
	return &UpdateOutput{Updated: true}, nil
}

func (c *catalog) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	monsters, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	next := make([]*dnd5e.Monster, 0, len(monsters))
	for _, m := range monsters {
		if m.Name != input.Name {
			next = append(next, m)
		}
	}
	if len(next) == len(monsters) {
		return &DeleteOutput{Deleted: false}, nil
	}

	if err := c.save(ctx, next); err != nil {
		return nil, err
	}
	return &DeleteOutput{Deleted: true}, nil
}

func indexOf(monsters []*dnd5e.Monster, name string) int {
	for i, m := range monsters {
		if m.Name == name {
			return i
		}
	}
	return -1
}
