package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/loom/internal/cli"
	"github.com/example/loom/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "loom",
		Short:   "loom - weave additions into generated source files",
		Version: version.String(),
		Long: `loom patches previously generated source files in place as entities,
relationships, permissions, value objects and bus wiring are added.

Every change is anchored on text already in the file, skipped when already
present and committed by replacing the file whole.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.ConfigureFromFlags(cmd)
		},
	}
	cli.AddPersistentFlags(rootCmd)

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.ScaffoldCmd())
	rootCmd.AddCommand(cli.JournalCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
