package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridworm/gridworm/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagVariant     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gridworm SSH server",
	Long: `Start an SSH server that gives every connection its own simulation,
sized to the client's terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridworm/host_key

Examples:
  gridworm serve                           # Listen on :23235
  gridworm serve --ssh :2222               # Listen on port 2222
  gridworm serve --variant sprint          # Serve the sprint variant
  gridworm serve --host-key ./my_host_key  # Use specific host key

Clients connect with:
  ssh localhost -p 23235`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagVariant, "variant", "classic", "Variant each session runs")
}

func runServe(_ *cobra.Command, _ []string) error {
	v, err := resolveVariant([]string{flagVariant})
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		Variant:     v,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting gridworm SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
