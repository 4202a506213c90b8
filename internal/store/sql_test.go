package store

import (
	"path/filepath"
	"testing"
)

func newTestSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := OpenSQLStore(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("opening sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLStoreRoundTrip(t *testing.T) {
	s := newTestSQLStore(t)

	state := AchievementState{
		Counters: UserCounters{Rolls: 11, ProfileCount: 3},
		Meta: AchievementMeta{
			LastD20CritTs: 987,
			LastRollDay:   "2024-03-10",
			ProfileDays:   []string{"2024-03-08", "2024-03-10"},
		},
		Unlocked: []UnlockedAchievement{
			{ID: "primeiro-dado", UnlockedAt: 1},
			{ID: "decimo-dado", UnlockedAt: 2},
		},
	}
	if err := s.SaveState("g", "u", state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := s.LoadState("g", "u")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Counters != state.Counters {
		t.Errorf("counters = %+v, expected %+v", loaded.Counters, state.Counters)
	}
	if len(loaded.Meta.ProfileDays) != 2 || loaded.Meta.ProfileDays[1] != "2024-03-10" {
		t.Errorf("profileDays = %v", loaded.Meta.ProfileDays)
	}
	if len(loaded.Unlocked) != 2 || loaded.Unlocked[0].ID != "primeiro-dado" {
		t.Errorf("unlocked = %+v", loaded.Unlocked)
	}
}

func TestSQLStoreUnlockInsertIsIdempotent(t *testing.T) {
	s := newTestSQLStore(t)

	state := AchievementState{
		Unlocked: []UnlockedAchievement{{ID: "primeiro-dado", UnlockedAt: 1}},
	}
	if err := s.SaveState("g", "u", state); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.SaveState("g", "u", state); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, _ := s.LoadState("g", "u")
	if len(loaded.Unlocked) != 1 {
		t.Errorf("unlock rows = %d, expected 1 after duplicate save", len(loaded.Unlocked))
	}
}

func TestSQLStoreXPAndTitles(t *testing.T) {
	s := newTestSQLStore(t)

	if err := s.SaveXP("g", "u", XPState{XP: 220, Level: 3, StreakDays: 2, StreakLastDay: "2024-03-10"}); err != nil {
		t.Fatalf("save xp: %v", err)
	}
	xpState, err := s.LoadXP("g", "u")
	if err != nil {
		t.Fatalf("load xp: %v", err)
	}
	if xpState.XP != 220 || xpState.Level != 3 || xpState.StreakDays != 2 {
		t.Errorf("xp state = %+v", xpState)
	}

	if err := s.SaveTitles("g", "u", []string{"abencoado"}); err != nil {
		t.Fatalf("save titles: %v", err)
	}
	if err := s.SaveTitles("g", "u", []string{"abencoado", "rolador"}); err != nil {
		t.Fatalf("save titles again: %v", err)
	}
	titles, _ := s.LoadTitles("g", "u")
	if len(titles) != 2 {
		t.Errorf("titles = %v, expected 2 entries", titles)
	}
}

func TestSQLStoreMissingRecordIsZero(t *testing.T) {
	s := newTestSQLStore(t)

	state, err := s.LoadState("g", "nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Counters != (UserCounters{}) {
		t.Errorf("missing record not zero-valued: %+v", state)
	}

	xpState, err := s.LoadXP("g", "nobody")
	if err != nil {
		t.Fatalf("load xp: %v", err)
	}
	if xpState.Level != 1 {
		t.Errorf("missing xp level = %d, expected backfilled 1", xpState.Level)
	}
}
