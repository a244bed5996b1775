package hitdice

import (
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

// SeededRoller is a deterministic dice.Roller. Two rollers built from the
// same seed produce the same sequence. Safe for concurrent use.
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ dice.Roller = (*SeededRoller)(nil)

// NewSeededRoller creates a roller seeded with seed
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewSource(seed))} // nolint:gosec // reproducible rolls, not secrets
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be at least 1, got %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(size) + 1, nil
}

// RollN returns count values in [1, size]
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	if size < 1 {
		return nil, errors.InvalidArgumentf("die size must be at least 1, got %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = r.rng.Intn(size) + 1
	}
	return rolls, nil
}
