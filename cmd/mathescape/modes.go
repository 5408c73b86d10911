package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-escape/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List question modes",
	Long:  `Shows every question mode and how the time limit shrinks at the chosen difficulty.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, m := range modes {
		marker := ""
		if m.ID == cfg.Gameplay.Mode {
			marker = "  (selected)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, m.ID, m.Title, marker)
	}

	g := cfg.Gameplay
	fmt.Println()
	fmt.Printf("Time limit starts at %s and drops by %.0f%% per correct answer,\n",
		g.StartTimeLimit, (1-g.TimeDecay)*100)
	if steps := g.Curve().Steps(g.StartTimeLimit); steps >= 0 {
		fmt.Printf("reaching the %s floor after %d answers.\n", g.MinTimeLimit, steps)
	} else {
		fmt.Printf("never reaching the %s floor.\n", g.MinTimeLimit)
	}
	fmt.Println()
	fmt.Println("Run 'mathescape --mode <id>' to play a mode.")
}
