package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stardrift-dev/stardrift/internal/universe"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <x> <y>",
	Short: "Print the star system at a coordinate",
	Long: `Generate and print the star system at the given galaxy coordinates
without launching the UI. Useful for sharing finds and for scripting.

The --seed flag selects the galaxy; the same seed and coordinates always
print the same system.

Examples:
  stardrift inspect 12 -7 --seed andromeda
  stardrift inspect 0 0`,
	Args: cobra.ExactArgs(2),
	Run:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid x coordinate %q\n", args[0])
		os.Exit(1)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid y coordinate %q\n", args[1])
		os.Exit(1)
	}

	opts, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := galaxySeed()
	u := universe.New(seed, opts, nil)

	if !u.HasStar(x, y) {
		fmt.Printf("Galaxy %q has no star at (%d, %d).\n", seed, x, y)
		return
	}

	sys := u.SystemAt(x, y)

	fmt.Printf("%s\n", sys.Name)
	fmt.Printf("  Galaxy:   %q\n", seed)
	fmt.Printf("  Location: (%d, %d)\n", sys.X, sys.Y)
	fmt.Printf("  Class:    %s (%s)\n", sys.Class.Code, sys.Class.Name)
	fmt.Printf("  Edge:     %.2f AU\n", sys.EdgeRadius/universe.AU)
	if sys.Starbase != nil {
		fmt.Printf("  Starbase: %.2f AU\n", sys.Starbase.Distance/universe.AU)
	}
	fmt.Println()

	if sys.PlanetCount() == 0 {
		fmt.Println("No planets formed in this system.")
		return
	}

	fmt.Printf("  %-5s  %-10s  %s\n", "Slot", "Type", "Orbit")
	fmt.Printf("  %-5s  %-10s  %s\n", "----", "----", "-----")
	for _, p := range sys.Planets {
		if p == nil {
			continue
		}
		fmt.Printf("  %-5d  %-10s  %.2f AU\n", p.Slot+1, p.Type, p.Distance/universe.AU)
	}
}
