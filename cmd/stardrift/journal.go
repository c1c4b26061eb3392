package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stardrift-dev/stardrift/internal/platform/tui"
	"github.com/stardrift-dev/stardrift/internal/storage"
)

var flagBrowse bool

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the discovery journal",
	Long: `Display every system discovered in a galaxy, most recent first.

The journal is keyed by galaxy seed, so each seed has its own history.

Examples:
  stardrift journal --seed andromeda
  stardrift journal --seed andromeda --browse`,
	Run: runJournal,
}

func init() {
	journalCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the journal interactively")
}

func runJournal(cmd *cobra.Command, args []string) {
	if flagSeed == "" {
		fmt.Fprintln(os.Stderr, "Error: --seed is required; the journal is per galaxy")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunJournal(store, flagSeed, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running journal browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries, err := store.Discoveries(flagSeed, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving journal: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Discovery Journal - galaxy %q\n", flagSeed)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No systems visited yet.")
		fmt.Println()
		fmt.Printf("Run 'stardrift explore --seed %s' and warp into a star!\n", flagSeed)
		return
	}

	fmt.Printf("  %-16s  %-5s  %-12s  %-7s  %-4s  %s\n",
		"System", "Class", "Coords", "Planets", "Base", "Visited")
	fmt.Printf("  %-16s  %-5s  %-12s  %-7s  %-4s  %s\n",
		"------", "-----", "------", "-------", "----", "-------")

	for _, e := range entries {
		base := ""
		if e.Starbase {
			base = "yes"
		}
		fmt.Printf("  %-16s  %-5s  %-12s  %-7d  %-4s  %s\n",
			e.Name, e.Class, fmt.Sprintf("(%d, %d)", e.X, e.Y),
			e.Planets, base, e.VisitedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Total: %d systems\n", len(entries))
}
