package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/slithergame/slither/internal/config"
	"github.com/slithergame/slither/internal/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server for remote play",
	Long: `Start an SSH server that lets users connect and play in their own
terminal. All connections share the same score database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.slither/host_key

Examples:
  slither serve                           # Listen on :23234
  slither serve --ssh :2222               # Listen on port 2222
  slither serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Files.DB = flagDBPath
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      cfg.Files.DB,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickPeriod:  cfg.TickPeriod(),
		Theme:       cfg.Theme,
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return fmt.Errorf("cannot start server: %w", err)
	}

	fmt.Printf("Starting slither SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
