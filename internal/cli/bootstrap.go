// Package cli provides CLI commands for the loom application.
package cli

import (
	"bufio"
	gocontext "context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/loom/internal/config"
	"github.com/example/loom/internal/wire"
)

// stdin is where confirmation prompts read from.
var stdin io.Reader = os.Stdin

// NewContext creates the context CLI commands pass to services.
func NewContext() gocontext.Context {
	return gocontext.Background()
}

// ConfigureFromFlags reads the persistent flags and configures wiring.
// Should be called once at CLI startup in PersistentPreRun.
func ConfigureFromFlags(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	journal, _ := cmd.Flags().GetString("journal")
	if journal == "" {
		journal = configuredJournal(cmd)
	}

	wire.Configure(wire.Options{
		Verbose:     verbose,
		DryRun:      dryRun,
		JournalPath: journal,
	})
}

// configuredJournal returns the journal path from the project config, if
// one can be read.
func configuredJournal(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = "."
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return ""
	}
	return cfg.Journal
}

// AddPersistentFlags registers the flags every command understands.
func AddPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log every effect at debug level")
	cmd.PersistentFlags().Bool("dry-run", false, "Weave in memory and print a diff instead of writing")
	cmd.PersistentFlags().String("journal", "", "Journal database path (default ~/.loom/journal.db)")
}

// isDryRun reports whether the command runs in dry-run mode.
func isDryRun(cmd *cobra.Command) bool {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return dryRun
}

// printPreview prints the dry-run diff, if the run was a dry run.
func printPreview(ctx gocontext.Context, out io.Writer) error {
	preview := wire.PreviewAdapter(out)
	if preview == nil {
		return nil
	}
	fmt.Fprintln(out)
	_, err := preview.Print(ctx)
	return err
}

func confirmPrompt(out io.Writer, msg string) bool {
	fmt.Fprintf(out, "%s [y/N] ", msg)
	reader := bufio.NewReader(stdin)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
