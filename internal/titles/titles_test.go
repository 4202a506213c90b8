package titles

import (
	"testing"

	"github.com/suzi-bot/suzi/internal/achievements"
	"github.com/suzi-bot/suzi/internal/store"
)

func newTestBridge(t *testing.T) *Bridge {
	t.Helper()
	fileStore, err := store.NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("creating file store: %v", err)
	}
	return NewBridge(fileStore, nil)
}

func TestApplyGrantsMappedTitles(t *testing.T) {
	bridge := newTestBridge(t)

	granted, err := bridge.Apply("g", "u", []string{"sorte-grande", "curioso"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(granted) != 1 || granted[0].ID != "abencoado" {
		t.Errorf("granted = %+v, expected only abencoado", granted)
	}

	held, err := bridge.Held("g", "u")
	if err != nil {
		t.Fatalf("held: %v", err)
	}
	if len(held) != 1 || held[0].ID != "abencoado" {
		t.Errorf("held = %+v", held)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	bridge := newTestBridge(t)

	bridge.Apply("g", "u", []string{"sorte-grande"})
	granted, err := bridge.Apply("g", "u", []string{"sorte-grande"})
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if len(granted) != 0 {
		t.Errorf("second apply granted %+v, expected nothing", granted)
	}

	held, _ := bridge.Held("g", "u")
	if len(held) != 1 {
		t.Errorf("held %d titles, expected 1", len(held))
	}
}

func TestApplyEmptyIsNoOp(t *testing.T) {
	bridge := newTestBridge(t)

	granted, err := bridge.Apply("g", "u", nil)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if granted != nil {
		t.Errorf("granted = %+v, expected nil", granted)
	}
}

// Every reward key except the latent DOUBLE_CRIT entry must reference a
// real achievement definition.
func TestRewardKeysMatchDefinitions(t *testing.T) {
	for achID := range rewards {
		if achID == "DOUBLE_CRIT" {
			continue
		}
		if _, ok := achievements.Lookup(achID); !ok {
			t.Errorf("reward key %q has no matching achievement definition", achID)
		}
	}
}
