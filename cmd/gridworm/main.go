// gridworm simulates a wrap-around grid worm in the terminal.
//
// Usage:
//
//	gridworm list              - List available variants
//	gridworm play [variant]    - Run a variant interactively
//	gridworm sim [variant]     - Run ticks headless and log the diffs
//	gridworm serve             - Start SSH server for remote sessions
//
// Global flags:
//
//	--config <path>  - Load a custom YAML configuration
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import presets to register the built-in variants
	_ "github.com/gridworm/gridworm/internal/presets"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridworm",
	Short: "Gridworm - a toroidal worm simulation for your terminal",
	Long: `Gridworm runs a fixed-length worm across a wrap-around playfield,
turning in response to direction commands.

Available commands:
  list     - Show all available variants
  play     - Run a variant interactively in the terminal
  sim      - Drive the engine headless and log occupancy diffs
  serve    - Start SSH server for remote sessions

Examples:
  gridworm list
  gridworm play classic
  gridworm play long --config ./my-field.yaml
  gridworm sim sprint --ticks 40 --turn 5:up --turn 12:left
  gridworm serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom configuration YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}
