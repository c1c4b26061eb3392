package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stardrift-dev/stardrift/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default universe configuration",
	Long: `Print the built-in universe configuration as YAML.

Redirect it to a file to use as a starting point for customization:

  stardrift config > ~/.stardrift/configs/universe.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = os.Stdout.Write(config.GetDefaultYAML())
	},
}
