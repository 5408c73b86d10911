package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-escape/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Math Escape SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection gets its own menu and game. The best score and the
session history are shared by everyone on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mathescape/host_key

Examples:
  mathescape serve                           # Listen on :23234 with auto-generated key
  mathescape serve --ssh :2222               # Listen on port 2222
  mathescape serve --host-key ./my_host_key  # Use specific host key
  mathescape serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
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

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.Game = cfg
	srvCfg.Seed = flagSeed

	server, err := tui.NewSSHServer(srvCfg, backend, logger.WithPrefix("mathescape-ssh"))
	if err != nil {
		backend.Close()
		fail("creating server: %v", err)
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", srvCfg.Address)
	if err := server.ListenAndServe(); err != nil {
		backend.Close()
		fail("server: %v", err)
	}
}
