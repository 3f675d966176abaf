package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/loom/internal/ports/primary"
	"github.com/example/loom/internal/wire"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Weave a single addition into generated files",
		Long: `Weave a single addition into files generated earlier.

Every addition is idempotent: re-running it leaves the files unchanged.`,
	}

	cmd.AddCommand(addPermissionCmd())
	cmd.AddCommand(addConsumerCmd())
	cmd.AddCommand(addProducerCmd())
	cmd.AddCommand(addBusCmd())

	return cmd
}

func addPermissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permission [name]",
		Short: "Add a permission constant",
		Long: `Add a permission constant to Domain/Permissions.cs.

Examples:
  loom add permission CanReadRecipes
  loom add permission CanPublishRecipes --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			cfg, err := loadProjectConfig(cmd)
			if err != nil {
				return err
			}

			if _, err := wire.WeaveAdapter().AddPermission(ctx, projectRef(cfg), args[0]); err != nil {
				return err
			}
			return printPreview(ctx, os.Stdout)
		},
	}
	addProjectFlags(cmd)
	return cmd
}

func addConsumerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consumer [endpoint-registration-method]",
		Short: "Register a consumer endpoint with the bus",
		Long: `Register a consumer endpoint in MassTransitServiceExtension.cs.

The consumer registrations namespace is imported first when the file does
not import it yet.

Examples:
  loom add consumer RecipeAddedEndpoint`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			cfg, err := loadProjectConfig(cmd)
			if err != nil {
				return err
			}

			if _, err := wire.WeaveAdapter().AddConsumer(ctx, projectRef(cfg), args[0]); err != nil {
				return err
			}
			return printPreview(ctx, os.Stdout)
		},
	}
	addProjectFlags(cmd)
	return cmd
}

func addProducerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "producer [endpoint-registration-method]",
		Short: "Register a producer endpoint with the bus",
		Long: `Register a producer endpoint in MassTransitServiceExtension.cs.

Examples:
  loom add producer RecipeProducerEndpoint`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			cfg, err := loadProjectConfig(cmd)
			if err != nil {
				return err
			}

			if _, err := wire.WeaveAdapter().AddProducer(ctx, projectRef(cfg), args[0]); err != nil {
				return err
			}
			return printPreview(ctx, os.Stdout)
		},
	}
	addProjectFlags(cmd)
	return cmd
}

func addBusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bus",
		Short: "Register the message bus with the web host",
		Long: `Register bus services in Program.cs and add broker environment
variables to every launch profile.

Examples:
  loom add bus
  loom add bus --host rabbit.internal --username app --password secret`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			cfg, err := loadProjectConfig(cmd)
			if err != nil {
				return err
			}

			host, _ := cmd.Flags().GetString("host")
			vhost, _ := cmd.Flags().GetString("virtual-host")
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			_, err = wire.WeaveAdapter().RegisterBus(ctx, primary.RegisterBusRequest{
				Project:     projectRef(cfg),
				Host:        host,
				VirtualHost: vhost,
				Username:    username,
				Password:    password,
			})
			if err != nil {
				return err
			}
			return printPreview(ctx, os.Stdout)
		},
	}
	addProjectFlags(cmd)
	cmd.Flags().String("host", "localhost", "Broker host")
	cmd.Flags().String("virtual-host", "/", "Broker virtual host")
	cmd.Flags().String("username", "guest", "Broker username")
	cmd.Flags().String("password", "guest", "Broker password")
	return cmd
}
