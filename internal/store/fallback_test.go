package store

import (
	"errors"
	"testing"
)

// failingStore simulates an unavailable relational backend.
type failingStore struct{}

var errBackendDown = errors.New("backend unavailable")

func (failingStore) LoadState(string, string) (AchievementState, error) {
	return AchievementState{}, errBackendDown
}
func (failingStore) SaveState(string, string, AchievementState) error { return errBackendDown }
func (failingStore) LoadXP(string, string) (XPState, error)           { return XPState{}, errBackendDown }
func (failingStore) SaveXP(string, string, XPState) error             { return errBackendDown }
func (failingStore) LoadTitles(string, string) ([]string, error)      { return nil, errBackendDown }
func (failingStore) SaveTitles(string, string, []string) error        { return errBackendDown }
func (failingStore) Close() error                                     { return nil }

func TestFallbackUsesSecondaryOnPrimaryFailure(t *testing.T) {
	fileStore, err := NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("creating file store: %v", err)
	}
	fb := NewFallback(failingStore{}, fileStore, nil)

	if err := fb.SaveXP("g", "u", XPState{XP: 42, Level: 1}); err != nil {
		t.Fatalf("save through fallback: %v", err)
	}
	state, err := fb.LoadXP("g", "u")
	if err != nil {
		t.Fatalf("load through fallback: %v", err)
	}
	if state.XP != 42 {
		t.Errorf("xp = %d, expected 42 from file fallback", state.XP)
	}
}

func TestFallbackWithoutPrimary(t *testing.T) {
	fileStore, err := NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("creating file store: %v", err)
	}
	fb := NewFallback(nil, fileStore, nil)

	if fb.PrimaryAvailable() {
		t.Error("PrimaryAvailable() = true with no configured primary")
	}
	if err := fb.SaveState("g", "u", AchievementState{Counters: UserCounters{Rolls: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	state, _ := fb.LoadState("g", "u")
	if state.Counters.Rolls != 1 {
		t.Errorf("rolls = %d, expected 1", state.Counters.Rolls)
	}
}

func TestFallbackPrimaryAvailable(t *testing.T) {
	fileStore, _ := NewFileStore(t.TempDir(), nil)
	fb := NewFallback(failingStore{}, fileStore, nil)
	if !fb.PrimaryAvailable() {
		t.Error("PrimaryAvailable() = false with a configured primary")
	}
}
