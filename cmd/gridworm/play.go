package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridworm/gridworm/internal/config"
	"github.com/gridworm/gridworm/internal/platform/tui"
	"github.com/gridworm/gridworm/internal/registry"
)

var flagNoFit bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Run a variant interactively",
	Long: `Run the simulation in the terminal. Defaults to the classic variant.

Controls:
  Arrows/WASD/HJKL - Turn
  Space/P          - Start/stop
  Q/Ctrl+C         - Quit

By default the playfield is shrunk to fit the terminal; pass --no-fit to
keep the configured dimensions (a too-small window shows an overlay).

Examples:
  gridworm play
  gridworm play long
  gridworm play sprint --no-fit
  gridworm play classic --config ./my-field.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoFit, "no-fit", false, "Do not shrink the playfield to the terminal size")
}

// resolveVariant picks the variant from args, applying the --config
// override on top of it.
func resolveVariant(args []string) (registry.Variant, error) {
	id := "classic"
	if len(args) > 0 {
		id = args[0]
	}

	v, err := registry.Lookup(id)
	if err != nil {
		return registry.Variant{}, fmt.Errorf("%w (run 'gridworm list' to see available variants)", err)
	}

	if flagConfig != "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return registry.Variant{}, err
		}
		v.Config = cfg
		v.Title = v.Title + " (custom config)"
	}
	return v, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	v, err := resolveVariant(args)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults when not attached to a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if !flagNoFit {
		v = tui.FitVariant(v, width, height)
	}

	if err := tui.Run(v, width, height); err != nil {
		return fmt.Errorf("error running simulation: %w", err)
	}
	return nil
}
