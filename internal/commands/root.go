package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/splitdue-dev/splitdue/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "splitdue",
		Short:   "Reconcile shared expenses from wallet CSV exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newFilesCommand())
	rootCmd.AddCommand(newSummaryCommand())

	return rootCmd
}
