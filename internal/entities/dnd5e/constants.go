package dnd5e

import (
	"strings"

	"golang.org/x/text/cases"
)

// Difficulty is an encounter difficulty tier. Tiers are totally ordered:
// Easy < Medium < Hard < Deadly.
type Difficulty int

// Difficulty tiers
const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyDeadly
)

var difficultyNames = map[Difficulty]string{
	DifficultyEasy:   "Easy",
	DifficultyMedium: "Medium",
	DifficultyHard:   "Hard",
	DifficultyDeadly: "Deadly",
}

// String returns the display name of the tier
func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText renders the tier by name so JSON carries "Hard", not 2
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts any spelling ParseDifficulty accepts
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, ok := ParseDifficulty(string(text))
	if !ok {
		return &UnknownValueError{Kind: "difficulty", Value: string(text)}
	}
	*d = parsed
	return nil
}

// ParseDifficulty matches a tier name case-insensitively, treating '_' and
// '-' as spaces. "DEADLY" and " hard " match; "very_hard" normalizes to
// "very hard" and does not.
func ParseDifficulty(s string) (Difficulty, bool) {
	key := NormalizeEnum(s)
	for d, name := range difficultyNames {
		if NormalizeEnum(name) == key {
			return d, true
		}
	}
	return DifficultyEasy, false
}

// Creature sizes
const (
	SizeTiny       = "Tiny"
	SizeSmall      = "Small"
	SizeMedium     = "Medium"
	SizeLarge      = "Large"
	SizeHuge       = "Huge"
	SizeGargantuan = "Gargantuan"
)

// Sizes lists every creature size in ascending order
var Sizes = []string{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan}

// Alignments
const (
	AlignmentLawfulGood     = "Lawful Good"
	AlignmentNeutralGood    = "Neutral Good"
	AlignmentChaoticGood    = "Chaotic Good"
	AlignmentLawfulNeutral  = "Lawful Neutral"
	AlignmentNeutral        = "Neutral"
	AlignmentChaoticNeutral = "Chaotic Neutral"
	AlignmentLawfulEvil     = "Lawful Evil"
	AlignmentNeutralEvil    = "Neutral Evil"
	AlignmentChaoticEvil    = "Chaotic Evil"
	AlignmentUnaligned      = "Unaligned"
)

// Alignments lists every alignment
var Alignments = []string{
	AlignmentLawfulGood, AlignmentNeutralGood, AlignmentChaoticGood,
	AlignmentLawfulNeutral, AlignmentNeutral, AlignmentChaoticNeutral,
	AlignmentLawfulEvil, AlignmentNeutralEvil, AlignmentChaoticEvil,
	AlignmentUnaligned,
}

// ParseSize returns the canonical spelling of a creature size
func ParseSize(s string) (string, bool) {
	return matchEnum(s, Sizes)
}

// ParseAlignment returns the canonical spelling of an alignment
func ParseAlignment(s string) (string, bool) {
	return matchEnum(s, Alignments)
}

// NormalizeEnum folds case, maps '_' and '-' to spaces and collapses runs of
// whitespace so free-text input can be compared against enumerations.
func NormalizeEnum(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	// Casers keep internal state; one per call.
	return cases.Fold().String(s)
}

func matchEnum(s string, allowed []string) (string, bool) {
	key := NormalizeEnum(s)
	for _, candidate := range allowed {
		if NormalizeEnum(candidate) == key {
			return candidate, true
		}
	}
	return "", false
}

// UnknownValueError reports a value outside an enumeration
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return "unknown " + e.Kind + ": " + e.Value
}
