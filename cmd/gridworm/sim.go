package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gridworm/gridworm/internal/core"
	"github.com/gridworm/gridworm/internal/engine"
	"github.com/gridworm/gridworm/internal/grid"
)

var (
	flagTicks int
	flagTurns []string
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run the engine headless and log occupancy diffs",
	Long: `Drive the simulation without a terminal UI. Each tick logs the head
position and the cells that entered and left occupancy.

Turns are scripted with --turn tick:direction and injected just before
the given tick runs.

Examples:
  gridworm sim
  gridworm sim sprint --ticks 40
  gridworm sim classic --ticks 30 --turn 5:up --turn 12:left`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 20, "Number of ticks to run")
	simCmd.Flags().StringArrayVar(&flagTurns, "turn", nil, "Scripted turn as tick:direction (repeatable)")
}

// parseTurnScript converts --turn flags into a per-tick direction list.
func parseTurnScript(entries []string) (map[int][]core.Direction, error) {
	script := make(map[int][]core.Direction, len(entries))
	for _, entry := range entries {
		tickStr, dirStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("malformed turn %q, expected tick:direction", entry)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("malformed turn %q: bad tick", entry)
		}
		dir, err := core.ParseDirection(dirStr)
		if err != nil {
			return nil, fmt.Errorf("malformed turn %q: %w", entry, err)
		}
		script[tick] = append(script[tick], dir)
	}
	return script, nil
}

func runSim(_ *cobra.Command, args []string) error {
	v, err := resolveVariant(args)
	if err != nil {
		return err
	}
	script, err := parseTurnScript(flagTurns)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridworm-sim",
	})

	cfg := v.Config
	g, err := grid.New(cfg.Playfield.Width, cfg.Playfield.Height, cfg.Cell.Size, cfg.Cell.Spacing)
	if err != nil {
		return err
	}
	dir, err := cfg.InitialDirection()
	if err != nil {
		return err
	}

	eng := engine.New(g, engine.Options{
		Segments:   cfg.Worm.Segments,
		InitialDir: dir,
		Start:      core.C(cfg.Worm.StartX, cfg.Worm.StartY),
	})

	logger.Info("starting simulation",
		"variant", v.ID,
		"playfield", fmt.Sprintf("%dx%d", cfg.Playfield.Width, cfg.Playfield.Height),
		"stride", cfg.Stride(),
		"segments", cfg.Worm.Segments,
		"ticks", flagTicks,
	)

	eng.Start()
	for i := 0; i < flagTicks; i++ {
		for _, d := range script[i] {
			if eng.Turn(d) {
				logger.Info("turn recorded", "tick", i, "direction", d)
			} else {
				logger.Warn("turn dropped", "tick", i, "direction", d)
			}
		}

		diff := eng.Tick()
		head, _ := eng.Head()
		logger.Info("tick",
			"n", i,
			"head", head,
			"added", cellList(diff.Added),
			"removed", cellList(diff.Removed),
		)
	}
	eng.Stop()

	snap := eng.Snapshot()
	logger.Info("done", "head", snap.Head, "queued_turns", len(snap.Turns))
	return nil
}

func cellList(cells []core.Cell) string {
	if len(cells) == 0 {
		return "-"
	}
	keys := make([]string, len(cells))
	for i, c := range cells {
		keys[i] = c.Key()
	}
	return strings.Join(keys, " ")
}
