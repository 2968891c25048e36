// Package presets registers the built-in simulation variants.
// Import it for side effects:
//
//	import _ "github.com/gridworm/gridworm/internal/presets"
package presets

import (
	"github.com/gridworm/gridworm/internal/config"
	"github.com/gridworm/gridworm/internal/registry"
)

func init() {
	registry.Register(registry.Variant{
		ID:     "classic",
		Title:  "Classic (5 segments, 250ms ticks)",
		Config: config.Default(),
	})

	long := config.Default()
	long.Worm.Segments = 12
	long.Timing.TickMS = 200
	registry.Register(registry.Variant{
		ID:     "long",
		Title:  "Long (12 segments, 200ms ticks)",
		Config: long,
	})

	sprint := config.Default()
	sprint.Timing.TickMS = 120
	registry.Register(registry.Variant{
		ID:     "sprint",
		Title:  "Sprint (5 segments, 120ms ticks)",
		Config: sprint,
	})
}
