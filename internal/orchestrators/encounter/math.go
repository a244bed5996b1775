package encounter

import (
	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
)

// MinLevel and MaxLevel bound the threshold table. Levels outside the range
// contribute nothing to party thresholds.
const (
	MinLevel = 1
	MaxLevel = 20
)

var thresholdTable = [MaxLevel + 1]dnd5e.Thresholds{
	1:  {Easy: 25, Medium: 50, Hard: 75, Deadly: 100},
	2:  {Easy: 50, Medium: 100, Hard: 150, Deadly: 200},
	3:  {Easy: 75, Medium: 150, Hard: 225, Deadly: 400},
	4:  {Easy: 125, Medium: 250, Hard: 375, Deadly: 500},
	5:  {Easy: 250, Medium: 500, Hard: 750, Deadly: 1100},
	6:  {Easy: 300, Medium: 600, Hard: 900, Deadly: 1400},
	7:  {Easy: 350, Medium: 750, Hard: 1100, Deadly: 1700},
	8:  {Easy: 450, Medium: 900, Hard: 1400, Deadly: 2100},
	9:  {Easy: 550, Medium: 1100, Hard: 1600, Deadly: 2400},
	10: {Easy: 600, Medium: 1200, Hard: 1900, Deadly: 2800},
	11: {Easy: 800, Medium: 1600, Hard: 2400, Deadly: 3600},
	12: {Easy: 1000, Medium: 2000, Hard: 3000, Deadly: 4500},
	13: {Easy: 1100, Medium: 2200, Hard: 3400, Deadly: 5100},
	14: {Easy: 1250, Medium: 2500, Hard: 3800, Deadly: 5700},
	15: {Easy: 1400, Medium: 2800, Hard: 4300, Deadly: 6400},
	16: {Easy: 1600, Medium: 3200, Hard: 4800, Deadly: 7200},
	17: {Easy: 2000, Medium: 3900, Hard: 5900, Deadly: 8800},
	18: {Easy: 2100, Medium: 4200, Hard: 6300, Deadly: 9500},
	19: {Easy: 2400, Medium: 4900, Hard: 7300, Deadly: 10900},
	20: {Easy: 2800, Medium: 5700, Hard: 8500, Deadly: 12700},
}

// LevelThresholds returns the XP thresholds for one character of the given
// level, or all zeros for a level outside 1-20
func LevelThresholds(level int) dnd5e.Thresholds {
	if level < MinLevel || level > MaxLevel {
		return dnd5e.Thresholds{}
	}
	return thresholdTable[level]
}

// PartyThresholds sums LevelThresholds over every character
func PartyThresholds(levels []int) dnd5e.Thresholds {
	var total dnd5e.Thresholds
	for _, level := range levels {
		total = total.Add(LevelThresholds(level))
	}
	return total
}

// Multiplier scales total XP for the number of monsters faced at once
func Multiplier(count int) float64 {
	switch {
	case count <= 1:
		return 1.0
	case count == 2:
		return 1.5
	case count <= 6:
		return 2.0
	case count <= 10:
		return 2.5
	case count <= 14:
		return 3.0
	default:
		return 4.0
	}
}

// AdjustedXP applies Multiplier(count) to totalXP, truncating toward zero
func AdjustedXP(totalXP, count int) int {
	return int(float64(totalXP) * Multiplier(count))
}

// Classify returns the highest tier whose threshold adjustedXP meets.
// Anything below the Easy threshold is still Easy.
func Classify(adjustedXP int, thresholds dnd5e.Thresholds) dnd5e.Difficulty {
	switch {
	case adjustedXP >= thresholds.Deadly:
		return dnd5e.DifficultyDeadly
	case adjustedXP >= thresholds.Hard:
		return dnd5e.DifficultyHard
	case adjustedXP >= thresholds.Medium:
		return dnd5e.DifficultyMedium
	default:
		return dnd5e.DifficultyEasy
	}
}
