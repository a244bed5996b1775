package encounter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter"
)

func TestMultiplier(t *testing.T) {
	testCases := []struct {
		count int
		want  float64
	}{
		{0, 1.0}, {1, 1.0},
		{2, 1.5},
		{3, 2.0}, {6, 2.0},
		{7, 2.5}, {10, 2.5},
		{11, 3.0}, {14, 3.0},
		{15, 4.0}, {40, 4.0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, encounter.Multiplier(tc.count), "count %d", tc.count)
	}
}

func TestAdjustedXP_Truncates(t *testing.T) {
	assert.Equal(t, 400, encounter.AdjustedXP(200, 4))
	assert.Equal(t, 37, encounter.AdjustedXP(25, 2))
	assert.Equal(t, 0, encounter.AdjustedXP(0, 15))
}

func TestLevelThresholds(t *testing.T) {
	assert.Equal(t, dnd5e.Thresholds{Easy: 25, Medium: 50, Hard: 75, Deadly: 100}, encounter.LevelThresholds(1))
	assert.Equal(t, dnd5e.Thresholds{Easy: 75, Medium: 150, Hard: 225, Deadly: 400}, encounter.LevelThresholds(3))
	assert.Equal(t, dnd5e.Thresholds{Easy: 2800, Medium: 5700, Hard: 8500, Deadly: 12700}, encounter.LevelThresholds(20))

	assert.Zero(t, encounter.LevelThresholds(0))
	assert.Zero(t, encounter.LevelThresholds(21))
	assert.Zero(t, encounter.LevelThresholds(-3))
}

func TestLevelThresholds_Ascending(t *testing.T) {
	for level := encounter.MinLevel; level <= encounter.MaxLevel; level++ {
		th := encounter.LevelThresholds(level)
		assert.Less(t, th.Easy, th.Medium, "level %d", level)
		assert.Less(t, th.Medium, th.Hard, "level %d", level)
		assert.Less(t, th.Hard, th.Deadly, "level %d", level)
	}
}

func TestPartyThresholds(t *testing.T) {
	assert.Equal(t,
		dnd5e.Thresholds{Easy: 300, Medium: 600, Hard: 900, Deadly: 1600},
		encounter.PartyThresholds([]int{3, 3, 3, 3}))

	assert.Equal(t,
		dnd5e.Thresholds{Easy: 25, Medium: 50, Hard: 75, Deadly: 100},
		encounter.PartyThresholds([]int{1, 0, 25}))

	assert.Zero(t, encounter.PartyThresholds(nil))
}

func TestClassify(t *testing.T) {
	party := dnd5e.Thresholds{Easy: 300, Medium: 600, Hard: 900, Deadly: 1600}

	testCases := []struct {
		xp   int
		want dnd5e.Difficulty
	}{
		{0, dnd5e.DifficultyEasy},
		{299, dnd5e.DifficultyEasy},
		{300, dnd5e.DifficultyEasy},
		{400, dnd5e.DifficultyEasy},
		{599, dnd5e.DifficultyEasy},
		{600, dnd5e.DifficultyMedium},
		{899, dnd5e.DifficultyMedium},
		{900, dnd5e.DifficultyHard},
		{1599, dnd5e.DifficultyHard},
		{1600, dnd5e.DifficultyDeadly},
		{100000, dnd5e.DifficultyDeadly},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, encounter.Classify(tc.xp, party), "xp %d", tc.xp)
	}
}

func TestClassify_ZeroThresholds(t *testing.T) {
	assert.Equal(t, dnd5e.DifficultyDeadly, encounter.Classify(0, dnd5e.Thresholds{}))
}
