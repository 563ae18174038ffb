package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/splitdue-dev/splitdue/internal/config"
)

func newInitCommand() *cobra.Command {
	var person string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new splitdue data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, person)
		},
	}

	cmd.Flags().StringVar(&person, "person", "", "default counterparty name (required)")
	_ = cmd.MarkFlagRequired("person")

	return cmd
}

func runInit(dir, person string) error {
	cfg := config.Default(person)

	for _, d := range []string{cfg.TransactionsDir, cfg.Export.OutDir} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, cfg.TransactionsDir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Printf("Initialized splitdue data directory at %s\n", dir)
	return nil
}
