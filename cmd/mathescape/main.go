// mathescape is a timed arithmetic quiz: answer before the clock runs out,
// and every correct answer shrinks the time you get for the next one.
//
// Usage:
//
//	mathescape               - Play in a window
//	mathescape play          - Same as above
//	mathescape tui           - Play in the terminal
//	mathescape serve         - Start SSH server for remote play
//	mathescape scores        - Show the best score and recent sessions
//	mathescape modes         - List question modes
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal or hard
//	--mode <id>          - addition, multiplication or mixed
//	--seed <value>       - Set RNG seed for reproducible questions
//	--store <kind>       - sqlite, file or memory
//	--db <path>          - Score storage path (default: ~/.mathescape/scores.db)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-escape/internal/config"
	"github.com/vovakirdan/math-escape/internal/core"
	"github.com/vovakirdan/math-escape/internal/registry"
	"github.com/vovakirdan/math-escape/internal/scene"
	"github.com/vovakirdan/math-escape/internal/storage"

	// Register question modes
	_ "github.com/vovakirdan/math-escape/internal/quiz"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagSeed       int64
	flagStore      string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathescape",
	Short: "Math Escape - a timed arithmetic quiz",
	Long: `Math Escape asks one arithmetic question at a time. Type the answer
and press Enter before the timer runs out. Every correct answer moves you
up a level and shortens the time limit; one wrong answer ends the run.

Available commands:
  play     - Play in a window (default)
  tui      - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - Show the best score and session history
  modes    - List question modes

Examples:
  mathescape
  mathescape --mode multiplication --difficulty hard
  mathescape tui
  mathescape serve --ssh :2222
  mathescape scores`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Question mode (see 'mathescape modes')")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Score storage: sqlite, file, memory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to score storage (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
}

// loadConfig resolves the config file and applies the command-line
// overrides on top of it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagMode != "" {
		cfg.Gameplay.Mode = flagMode
	}
	if !registry.Exists(cfg.Gameplay.Mode) {
		return cfg, fmt.Errorf("unknown mode %q (run 'mathescape modes')", cfg.Gameplay.Mode)
	}
	if flagStore != "" {
		cfg.Storage.Backend = flagStore
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}

	return cfg, cfg.Validate()
}

// newLogger builds the program logger. It writes to --log-file when set and
// to w otherwise. The returned func closes the log file.
func newLogger(w io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	closeFn := func() {}
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "mathescape",
	})
	return logger, closeFn, nil
}

// openBackend opens the configured score storage. A database that cannot be
// opened falls back to memory so the game still runs.
func openBackend(cfg config.StorageConfig, logger *log.Logger) *storage.Backend {
	backend, err := storage.OpenBackend(cfg, logger)
	if err != nil {
		logger.Warn("could not open score storage, scores will not be kept", "backend", cfg.Backend, "err", err)
		mem := storage.NewMemoryGateway(0)
		return &storage.Backend{Scores: mem, History: mem}
	}
	return backend
}

// newEnv assembles the scene environment for one local player.
func newEnv(cfg config.Config, backend *storage.Backend, logger *log.Logger) *scene.Env {
	return &scene.Env{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  cfg.Window.Width,
			ScreenH:  cfg.Window.Height,
			TickRate: cfg.Window.FPS,
			Seed:     flagSeed,
		},
		Scores:  backend.Scores,
		History: backend.History,
		Log:     logger,
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
