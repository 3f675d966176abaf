package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/loom/internal/config"
	"github.com/example/loom/internal/models"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create " + config.FileName + " for a scaffolded project",
		Long: `Create ` + config.FileName + ` in the current directory so other commands
know where the scaffolded project lives.

Examples:
  loom init --project RecipeManagement --src src
  loom init --project RecipeManagement --src src --db-provider postgres`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			force, _ := cmd.Flags().GetBool("force")
			if dir == "" {
				dir = "."
			}

			path := filepath.Join(dir, config.FileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			project, _ := cmd.Flags().GetString("project")
			src, _ := cmd.Flags().GetString("src")
			provider, _ := cmd.Flags().GetString("db-provider")

			if provider != "" && models.ParseDbProvider(provider) == models.DbProviderUnknown {
				return fmt.Errorf("unknown database provider %q (valid: postgres, sqlserver, mysql, sqlite)", provider)
			}

			cfg := &config.Config{
				ProjectBaseName: project,
				SrcDirectory:    src,
				DbProvider:      provider,
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}

			fmt.Printf("✓ Created %s\n", path)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  loom add permission CanReadRecipes --dry-run")
			fmt.Println("  loom scaffold entities recipes.yaml")
			return nil
		},
	}
	addProjectFlags(cmd)
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	return cmd
}
