package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
)

var listMonstersCmd = &cobra.Command{
	Use:   "list-monsters",
	Short: "List every monster in the catalog",
	RunE:  runListMonsters,
}

var getMonsterCmd = &cobra.Command{
	Use:   "get-monster [name]",
	Short: "Print a monster stat block as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetMonster,
}

func runListMonsters(_ *cobra.Command, _ []string) error {
	var list []*dnd5e.Monster
	if err := call(http.MethodGet, "/monsters", nil, &list); err != nil {
		return fmt.Errorf("failed to list monsters: %w", err)
	}

	fmt.Printf("Found %d monsters:\n", len(list))
	for _, m := range list {
		fmt.Printf("  %-24s CR %-5g %5d XP  %s\n", m.Name, m.Challenge.Rating, m.Challenge.XP, m.HP.HitDice)
	}
	return nil
}

func runGetMonster(_ *cobra.Command, args []string) error {
	var m dnd5e.Monster
	if err := call(http.MethodGet, "/monsters/"+url.PathEscape(args[0]), nil, &m); err != nil {
		return fmt.Errorf("failed to get monster: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(&m)
}
