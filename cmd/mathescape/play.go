package main

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-escape/internal/platform/window"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open the game window. This is also what a bare 'mathescape' does.

Controls:
  0-9        - Type the answer
  Backspace  - Delete the last digit
  Enter      - Submit answer / press the highlighted button
  Esc        - Back to menu (quits from the menu)
  C          - Copy the result line on the game over screen
  Mouse      - Click buttons

Examples:
  mathescape play
  mathescape play --mode addition --difficulty easy
  mathescape play --store file --db ./highscore.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	backend := openBackend(cfg.Storage, logger)
	defer backend.Close()

	env := newEnv(cfg, backend, logger)
	if !clipboard.Unsupported {
		env.Copy = clipboard.WriteAll
	}

	if err := window.Run(env); err != nil {
		logger.Error("window exited", "err", err)
		backend.Close()
		os.Exit(1)
	}
}
