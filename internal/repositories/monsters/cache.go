package monsters

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

// documentCache holds the last decoded document and the hash of the bytes it
// was decoded from. An empty hash means nothing valid is cached.
type documentCache struct {
	hash     string
	monsters []*dnd5e.Monster
}

// refreshIfStale decodes raw only when its hash differs from the cached
// one. It reports whether a decode happened.
func (c *documentCache) refreshIfStale(raw []byte) (bool, error) {
	sum := sha256.Sum256(raw)
	hash := hex.EncodeToString(sum[:])
	if c.hash != "" && c.hash == hash {
		return false, nil
	}

	monsters, err := decodeDocument(raw)
	if err != nil {
		c.invalidate()
		return false, err
	}

	c.hash = hash
	c.monsters = monsters
	return true, nil
}

// invalidate forces the next refresh to decode
func (c *documentCache) invalidate() {
	c.hash = ""
	c.monsters = nil
}

func decodeDocument(raw []byte) ([]*dnd5e.Monster, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []*dnd5e.Monster{}, nil
	}

	var monsters []*dnd5e.Monster
	if err := json.Unmarshal(raw, &monsters); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "monster catalog is not a valid JSON array of monsters")
	}
	if monsters == nil {
		monsters = []*dnd5e.Monster{}
	}
	for i, m := range monsters {
		if m == nil {
			return nil, errors.DataLossf("monster catalog entry %d is null", i)
		}
	}
	return monsters, nil
}

func encodeDocument(monsters []*dnd5e.Monster) ([]byte, error) {
	if monsters == nil {
		monsters = []*dnd5e.Monster{}
	}
	data, err := json.MarshalIndent(monsters, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode monster catalog")
	}
	return append(data, '\n'), nil
}
