package monsters

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/hitdice"
)

// Problem describes one catalog entry that cannot be used
type Problem struct {
	Index  int
	Name   string
	Reason string
}

// AuditReport is the result of checking a raw catalog document entry by entry
type AuditReport struct {
	// Usable holds every entry that decodes and has a parseable hit dice
	// expression, in document order, first occurrence of each name only
	Usable   []*dnd5e.Monster
	Problems []Problem
}

// Healthy reports whether the document needs no repair
func (r *AuditReport) Healthy() bool {
	return len(r.Problems) == 0
}

// Audit checks a raw catalog document. Unlike a normal load, which rejects
// the whole document on the first bad entry, Audit keeps going so every
// problem is reported. Only a document that is not a JSON array at all is
// an error.
func Audit(raw []byte) (*AuditReport, error) {
	report := &AuditReport{Usable: []*dnd5e.Monster{}}
	if len(bytes.TrimSpace(raw)) == 0 {
		return report, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "monster catalog is not a JSON array")
	}

	seen := make(map[string]bool, len(entries))
	for i, entry := range entries {
		var m *dnd5e.Monster
		if err := json.Unmarshal(entry, &m); err != nil {
			report.Problems = append(report.Problems, Problem{Index: i, Reason: "entry is not a monster object"})
			continue
		}
		if m == nil {
			report.Problems = append(report.Problems, Problem{Index: i, Reason: "entry is null"})
			continue
		}

		name := strings.TrimSpace(m.Name)
		switch {
		case name == "":
			report.Problems = append(report.Problems, Problem{Index: i, Reason: "name is empty"})
			continue
		case seen[m.Name]:
			report.Problems = append(report.Problems, Problem{Index: i, Name: m.Name, Reason: "duplicate name"})
			continue
		}

		if _, err := hitdice.Parse(m.HP.HitDice); err != nil {
			report.Problems = append(report.Problems, Problem{
				Index:  i,
				Name:   m.Name,
				Reason: errors.GetMessage(err),
			})
			continue
		}

		seen[m.Name] = true
		report.Usable = append(report.Usable, m)
	}

	return report, nil
}

// EncodeDocument renders monsters in the catalog's on-disk format
func EncodeDocument(monsters []*dnd5e.Monster) ([]byte, error) {
	return encodeDocument(monsters)
}
