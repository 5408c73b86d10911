package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/math-escape/internal/platform/tui"
	"github.com/vovakirdan/math-escape/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and recent sessions",
	Long: `Display the best score and the history of finished sessions.

In a terminal this opens an interactive scoreboard with one tab per mode.
With --plain (or when stdout is not a terminal) it prints tables instead.
Session history needs the sqlite store.

Examples:
  mathescape scores
  mathescape scores --plain --limit 20
  mathescape scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print tables instead of the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent sessions to print")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the session history (the best score is kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	backend, err := storage.OpenBackend(cfg.Storage, logger)
	if err != nil {
		fail("opening score storage: %v", err)
	}
	defer backend.Close()

	store := backend.Store
	if store == nil {
		// File and memory stores only keep the best score
		fmt.Printf("Best: %d\n", backend.Scores.Load())
		return
	}

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			backend.Close()
			fail("%v", err)
		}
		fmt.Println("Session history cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			backend.Close()
			fail("%v", err)
		}
		return
	}

	if err := printScores(store, flagLimit); err != nil {
		backend.Close()
		fail("%v", err)
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// printScores prints the best score, per-mode statistics and the most
// recent sessions.
func printScores(store *storage.Store, limit int) error {
	best, err := store.BestScore()
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("Best: %d", best)))
	fmt.Println()

	stats, err := store.AllModeStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mathescape' to play the first one!")
		return nil
	}

	modes := make([]string, 0, len(stats))
	for mode := range stats {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	byMode := newTable("Mode", "Sessions", "Best", "Average", "Max level", "Last played")
	for _, mode := range modes {
		s := stats[mode]
		byMode.Row(
			s.Mode,
			strconv.Itoa(s.Sessions),
			strconv.Itoa(s.HighScore),
			fmt.Sprintf("%.1f", s.AvgScore),
			strconv.Itoa(s.MaxLevel),
			s.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(byMode.String())
	fmt.Println()

	sessions, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}
	recent := newTable("#", "Score", "Level", "Mode", "Ended by", "Duration", "Date")
	for i, s := range sessions {
		recent.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			s.Mode,
			s.Reason,
			fmt.Sprintf("%ds", s.Duration),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(recent.String())
	return nil
}
