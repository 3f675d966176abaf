package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/loom/internal/ports/primary"
	"github.com/example/loom/internal/wire"
)

// JournalCmd returns the journal command
func JournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "View and manage the weave journal",
		Long:  "Every recipe a run applies is journaled with its outcome. Dry runs are not journaled.",
	}

	cmd.AddCommand(journalListCmd())
	cmd.AddCommand(journalPruneCmd())

	return cmd
}

func journalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent journal entries",
		Long: `Show journal entries, newest first (default 50).

Examples:
  loom journal list
  loom journal list --outcome extension_point_not_found
  loom journal list --run 5d3c0a4e-...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			runID, _ := cmd.Flags().GetString("run")
			path, _ := cmd.Flags().GetString("path")
			outcome, _ := cmd.Flags().GetString("outcome")
			limit, _ := cmd.Flags().GetInt("limit")

			return wire.JournalAdapter().List(ctx, primary.ListJournalRequest{
				RunID:   runID,
				Path:    path,
				Outcome: outcome,
				Limit:   limit,
			})
		},
	}
	cmd.Flags().String("run", "", "Filter by run ID")
	cmd.Flags().String("path", "", "Filter by file path")
	cmd.Flags().String("outcome", "", "Filter by outcome")
	cmd.Flags().Int("limit", 50, "Maximum entries to show")
	return cmd
}

func journalPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old journal entries",
		Long:  "Delete journal entries older than the specified number of days (default 30)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			days, _ := cmd.Flags().GetInt("days")
			return wire.JournalAdapter().Prune(ctx, days)
		},
	}
	cmd.Flags().Int("days", 30, "Delete entries older than this many days")
	return cmd
}
