package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-encounters/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("monster")

	assert.Equal(t, "monster_1", gen.Generate())
	assert.Equal(t, "monster_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequentialGenerator_Concurrent(t *testing.T) {
	gen := idgen.NewSequential("c")

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
		wg   sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.Generate()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("monster").Generate()
	require.True(t, strings.HasPrefix(id, "monster_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "monster_"))
	assert.NoError(t, err)

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)
}
