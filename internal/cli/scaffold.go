package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/loom/internal/ports/primary"
	"github.com/example/loom/internal/scaffold"
	"github.com/example/loom/internal/wire"
)

// ScaffoldCmd returns the scaffold command
func ScaffoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Weave entity sets into generated files",
	}

	cmd.AddCommand(scaffoldEntitiesCmd())

	return cmd
}

func scaffoldEntitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entities [template.yaml]",
		Short: "Weave relationships, permissions and value objects for an entity set",
		Long: `Weave an entity template into the files generated for its entities.

Phases run in order: permissions, relationships, string arrays, value objects.
Base entity files must already exist. Re-running the same template changes
nothing.

Examples:
  loom scaffold entities recipes.yaml
  loom scaffold entities recipes.yaml --dry-run
  loom scaffold entities recipes.yaml --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			yes, _ := cmd.Flags().GetBool("yes")

			def, err := scaffold.LoadTemplate(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadProjectConfig(cmd)
			if err != nil {
				return err
			}
			provider := cfg.DbProvider
			if provider == "" {
				provider = def.DbProvider
			}

			fmt.Printf("Weaving %d entities into %s (%s)\n", len(def.Entities), cfg.ProjectBaseName, cfg.SrcDirectory)
			for _, e := range def.Entities {
				fmt.Printf("  %s: %d properties, %d features\n", e.Name, len(e.Properties), len(e.Features))
			}
			fmt.Println()

			if !isDryRun(cmd) && !yes {
				if !confirmPrompt(os.Stdout, "Proceed?") {
					fmt.Println("Aborted.")
					return nil
				}
			}

			_, err = wire.WeaveAdapter().ScaffoldEntities(ctx, primary.ScaffoldEntitiesRequest{
				Project:    projectRef(cfg),
				DbProvider: provider,
				Entities:   def.Entities,
			})
			if err != nil {
				return err
			}
			return printPreview(ctx, os.Stdout)
		},
	}
	addProjectFlags(cmd)
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
