package main

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/math-escape/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play the same game in the terminal. The bottom row shows the key help.

Logs go to --log-file, or nowhere, so they do not break the screen.

Controls:
  0-9        - Type the answer
  Backspace  - Delete the last digit
  Enter      - Submit answer / press the highlighted button
  Esc        - Back to menu (quits from the menu)
  C          - Copy the result line on the game over screen
  Ctrl+S     - Save a text screenshot
  Ctrl+C     - Quit

Examples:
  mathescape tui
  mathescape tui --log-file ./mathescape.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func runTUI(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	backend := openBackend(cfg.Storage, logger)
	defer backend.Close()

	env := newEnv(cfg, backend, logger)

	// One row is reserved for the help line
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	env.Runtime.ScreenW = width
	env.Runtime.ScreenH = height - 1

	if !clipboard.Unsupported {
		env.Copy = clipboard.WriteAll
	}

	if err := tui.Run(env); err != nil {
		backend.Close()
		fail("%v", err)
	}
}
