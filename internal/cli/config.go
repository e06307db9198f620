package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/quickdate/internal/config"
)

var configForceFlag bool

// configCmd groups config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", configPath, data)
		return nil
	},
}

// configInitCmd writes the default configuration
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(configPath, configForceFlag); err != nil {
			return fmt.Errorf("failed to initialise config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote config to %s\n", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configForceFlag, "force", false, "Overwrite an existing config file")
}

// GetConfigCommand returns the config command
func GetConfigCommand() *cobra.Command {
	return configCmd
}
