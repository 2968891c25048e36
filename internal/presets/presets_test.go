package presets

import (
	"testing"

	"github.com/gridworm/gridworm/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "long", "sprint"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}
}

func TestBuiltinConfigsValid(t *testing.T) {
	for _, info := range registry.List() {
		v, err := registry.Lookup(info.ID)
		if err != nil {
			t.Fatalf("Lookup(%q) returned error: %v", info.ID, err)
		}
		if err := v.Config.Validate(); err != nil {
			t.Errorf("variant %q config invalid: %v", info.ID, err)
		}
	}
}
