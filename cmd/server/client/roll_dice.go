package client

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/internal/handlers/rest/v1alpha1"
)

var rollDiceCmd = &cobra.Command{
	Use:   "roll-dice [notation] [description]",
	Short: "Roll dice using dice notation",
	Long: `Roll dice and see individual results. Examples:

  roll-dice 1d20
  roll-dice 2d8+3 "orc greataxe"
  roll-dice "1d6 + 1d4 - 1"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: rollDice,
}

func rollDice(_ *cobra.Command, args []string) error {
	req := &v1alpha1.RollDiceRequest{Notation: args[0]}
	if len(args) == 2 {
		req.Description = args[1]
	}

	var resp v1alpha1.RollDiceResponse
	if err := call(http.MethodPost, "/dice/roll", req, &resp); err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	fmt.Printf("Roll %s (%s)\n", resp.RollID, resp.Notation)
	for _, pool := range resp.Pools {
		fmt.Printf("  %-8s %v = %d\n", pool.Notation, pool.Dice, pool.Total)
	}
	if resp.Modifier != 0 {
		fmt.Printf("  modifier %+d\n", resp.Modifier)
	}
	if resp.Description != "" {
		fmt.Printf("  %s\n", resp.Description)
	}
	fmt.Printf("Total: %d\n", resp.Total)
	return nil
}
