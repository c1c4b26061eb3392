package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stardrift-dev/stardrift/internal/core"
	"github.com/stardrift-dev/stardrift/internal/game"
	"github.com/stardrift-dev/stardrift/internal/platform/tui"
	"github.com/stardrift-dev/stardrift/internal/storage"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Fly through the galaxy",
	Long: `Start an interactive exploration session.

Controls:
  Arrows/WASD  - Move the ship
  Enter/Space  - Warp into the system under the ship
  Esc/B        - Leave the current system
  P            - Pause
  Q/Ctrl+C     - Quit

Every first visit to a system is written to the discovery journal.
Sessions with the same seed explore the same galaxy.

Examples:
  stardrift explore
  stardrift explore --seed andromeda
  stardrift explore --config ./my-universe.yaml`,
	Run: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) {
	opts, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size; fall back to a standard viewport
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     galaxySeed(),
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "stardrift",
	})

	// Open journal storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open journal database: %v\n", err)
		// Continue without storage - exploration still works
		store = nil
	}

	explorer := game.NewExplorer(opts, logger)
	runErr := tui.Run(explorer, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
