// stardrift is a terminal space exploration game over a seeded,
// procedurally generated galaxy.
//
// Usage:
//
//	stardrift explore             - Fly through the galaxy interactively
//	stardrift inspect <x> <y>     - Print the star system at a coordinate
//	stardrift journal             - Show the discovery journal
//	stardrift serve               - Start SSH server for remote play
//	stardrift config              - Print the default universe configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Galaxy seed (empty = random)
//	--db <path>     - Set database path (default: ~/.stardrift/journal.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   string
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardrift",
	Short: "Stardrift - Explore a procedural galaxy in your terminal",
	Long: `Stardrift is a terminal space exploration game. Every galaxy is
derived from a seed string: the same seed always produces the same
nebulae, stars, systems and orbits.

Available commands:
  explore  - Fly the ship through the galaxy
  inspect  - Print a star system without launching the UI
  journal  - View your discovery journal
  serve    - Start SSH server for remote play
  config   - Print the default universe configuration

Examples:
  stardrift explore --seed andromeda
  stardrift inspect 12 -7 --seed andromeda
  stardrift journal --seed andromeda
  stardrift serve --ssh :2222 --seed andromeda`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Galaxy seed (empty = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stardrift/journal.db", "Path to journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom universe config YAML")

	// Add subcommands
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
