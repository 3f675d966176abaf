package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/example/loom/internal/config"
	"github.com/example/loom/internal/ports/primary"
)

// projectFlagSet holds the flags that locate the project being woven.
func projectFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	fs.String("dir", "", "Directory holding "+config.FileName+" (default current directory)")
	fs.String("src", "", "Source directory of the scaffolded solution")
	fs.String("project", "", "Project base name, e.g. RecipeManagement")
	fs.String("db-provider", "", "Database provider: postgres, sqlserver, mysql, sqlite")
	return fs
}

// addProjectFlags attaches the project flag set to cmd.
func addProjectFlags(cmd *cobra.Command) {
	cmd.Flags().AddFlagSet(projectFlagSet())
}

// loadProjectConfig reads the config file, if any, and applies flag overrides.
func loadProjectConfig(cmd *cobra.Command) (config.Config, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	var cfg config.Config
	loaded, err := config.LoadConfig(dir)
	switch {
	case err == nil:
		cfg = *loaded
	case errors.Is(err, config.ErrConfigNotFound):
	default:
		return config.Config{}, err
	}

	src, _ := cmd.Flags().GetString("src")
	project, _ := cmd.Flags().GetString("project")
	provider, _ := cmd.Flags().GetString("db-provider")
	cfg = cfg.Merge(config.Config{
		SrcDirectory:    src,
		ProjectBaseName: project,
		DbProvider:      provider,
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w (set it in %s or pass --src/--project)", err, config.FileName)
	}
	return cfg, nil
}

func projectRef(cfg config.Config) primary.ProjectRef {
	return primary.ProjectRef{
		SrcDirectory:    cfg.SrcDirectory,
		ProjectBaseName: cfg.ProjectBaseName,
	}
}
