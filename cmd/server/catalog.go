package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/monster"
	"github.com/KirkDiggler/rpg-encounters/internal/platform/config"
	"github.com/KirkDiggler/rpg-encounters/internal/repositories/monsters"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the monster catalog directly",
	Long:  `Catalog commands operate on the configured catalog backend without a running server.`,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import monsters from a JSON array",
	Long: `Import reads a JSON array of monster stat blocks and adds each one to the catalog.
Monsters whose name already exists are skipped. Nothing is written if any entry is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the catalog as JSON",
	RunE:  runExport,
}

func init() {
	catalogCmd.AddCommand(importCmd)
	catalogCmd.AddCommand(exportCmd)
}

func withMonsterService(ctx context.Context, fn func(monster.Service) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer func() {
		_ = closeStore() // nolint:errcheck // nothing left to flush
	}()

	repo, err := monsters.NewCatalog(&monsters.Config{Store: store})
	if err != nil {
		return err
	}

	svc, err := monster.NewOrchestrator(&monster.Config{MonsterRepo: repo})
	if err != nil {
		return err
	}

	return fn(svc)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var batch []*dnd5e.Monster
	if err := json.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}

	return withMonsterService(cmd.Context(), func(svc monster.Service) error {
		out, err := svc.ImportMonsters(cmd.Context(), &monster.ImportMonstersInput{Monsters: batch})
		if err != nil {
			return fmt.Errorf("failed to import monsters: %w", err)
		}

		fmt.Printf("Imported %d monsters, skipped %d\n", len(out.Created), len(out.Skipped))
		for _, name := range out.Skipped {
			fmt.Printf("  skipped: %s (already in catalog)\n", name)
		}
		return nil
	})
}

func runExport(cmd *cobra.Command, _ []string) error {
	return withMonsterService(cmd.Context(), func(svc monster.Service) error {
		out, err := svc.ListMonsters(cmd.Context(), &monster.ListMonstersInput{})
		if err != nil {
			return fmt.Errorf("failed to list monsters: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Monsters)
	})
}

var repair bool

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the stored catalog for corrupted entries",
	Long: `Verify reads the raw catalog document and reports every entry that cannot be loaded:
null entries, missing or duplicate names, and unparseable hit dice.
With --repair the unusable entries are dropped and the document is rewritten.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&repair, "repair", false, "Drop unusable entries and rewrite the catalog")
	catalogCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer func() {
		_ = closeStore() // nolint:errcheck // nothing left to flush
	}()

	raw, err := store.Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	report, err := monsters.Audit(raw)
	if err != nil {
		return fmt.Errorf("catalog cannot be repaired automatically: %w", err)
	}

	fmt.Printf("Checked catalog (%s): %d usable, %d problems\n",
		cfg.CatalogBackend, len(report.Usable), len(report.Problems))
	for _, p := range report.Problems {
		fmt.Printf("  ✗ entry %d %q: %s\n", p.Index, p.Name, p.Reason)
	}

	if report.Healthy() || !repair {
		return nil
	}

	data, err := monsters.EncodeDocument(report.Usable)
	if err != nil {
		return err
	}
	if err := store.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to write repaired catalog: %w", err)
	}
	fmt.Printf("Repaired catalog, dropped %d entries\n", len(report.Problems))
	return nil
}
