package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/splitdue-dev/splitdue/internal/config"
	"github.com/splitdue-dev/splitdue/internal/ledger"
)

func newFilesCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "files",
		Short: "List transaction CSV files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runFiles(cmd, absDir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")

	return cmd
}

// loadConfig reads the data directory's splitdue.yaml, falling back to
// defaults when the file is absent.
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(""), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func runFiles(cmd *cobra.Command, dir string) error {
	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}

	files, err := ledger.Scan(filepath.Join(dir, cfg.TransactionsDir))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		cmd.Printf("No transaction files in %s\n", filepath.Join(dir, cfg.TransactionsDir))
		return nil
	}

	for i, f := range files {
		cmd.Printf("%3d. %s (%d bytes)\n", i+1, f.Name, f.Size)
	}
	return nil
}
