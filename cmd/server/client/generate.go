package client

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/internal/handlers/rest/v1alpha1"
)

var (
	levels          []int
	monsterFlags    []string
	difficultyLabel string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an encounter for a party",
	Long: `Generate builds an encounter from catalog monsters and prints the rolled roster. Examples:

  generate --level 3 --level 3 --level 4 --monster Goblin=4
  generate --level 5 --monster Orc=2 --monster Ogre=1 --difficulty hard`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntSliceVar(&levels, "level", nil, "Character level, repeat once per party member (required)")
	generateCmd.Flags().StringArrayVar(&monsterFlags, "monster", nil, "Monster as Name=Count, repeatable (required)")
	generateCmd.Flags().StringVar(&difficultyLabel, "difficulty", "", "Target difficulty (easy, medium, hard, deadly)")
	_ = generateCmd.MarkFlagRequired("level")   // nolint:errcheck // safe to ignore in init
	_ = generateCmd.MarkFlagRequired("monster") // nolint:errcheck // safe to ignore in init
}

// parseRoster turns Name=Count pairs into a roster map. A bare name counts once.
func parseRoster(pairs []string) (map[string]int, error) {
	roster := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		name, countText, hasCount := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("monster %q has no name", pair)
		}

		count := 1
		if hasCount {
			n, err := strconv.Atoi(strings.TrimSpace(countText))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("monster %q has an invalid count", pair)
			}
			count = n
		}
		roster[name] += count
	}
	return roster, nil
}

func runGenerate(_ *cobra.Command, _ []string) error {
	roster, err := parseRoster(monsterFlags)
	if err != nil {
		return err
	}

	req := &v1alpha1.GenerateEncounterRequest{
		CharacterLevels: levels,
		Difficulty:      difficultyLabel,
		Monsters:        roster,
	}

	var resp v1alpha1.GenerateEncounterResponse
	if err := call(http.MethodPost, "/encounters", req, &resp); err != nil {
		return fmt.Errorf("failed to generate encounter: %w", err)
	}

	fmt.Printf("Encounter for party %v\n", levels)
	fmt.Printf("===================\n")
	for _, m := range resp.Monsters {
		fmt.Printf("  %-24s initiative %2d  hp %3d  (%s)\n", m.Name, m.Initiative, m.HP, m.ID)
	}
	fmt.Printf("\nTotal XP: %d\n", resp.TotalXP)
	fmt.Printf("Adjusted XP: %d\n", resp.AdjustedXP)
	fmt.Printf("Thresholds: easy %d, medium %d, hard %d, deadly %d\n",
		resp.PartyThresholds.Easy, resp.PartyThresholds.Medium,
		resp.PartyThresholds.Hard, resp.PartyThresholds.Deadly)
	fmt.Printf("Difficulty: %s\n", resp.Difficulty)

	return nil
}
