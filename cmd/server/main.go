// Package main is the entry point for the encounter service
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-encounters",
	Short: "D&D 5e encounter balancing service",
	Long: `rpg-encounters builds balanced D&D 5e encounters from a persistent monster catalog,
rolling initiative and hit points for every monster it fields.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
