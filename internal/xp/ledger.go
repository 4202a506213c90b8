package xp

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/suzi-bot/suzi/internal/store"
)

const dayKeyLayout = "2006-01-02"

// ForNextLevel returns the XP required to advance from level to level+1.
// Level 1 -> 2 costs 100, each further level costs 20 more.
func ForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 100 + 20*(level-1)
}

// TotalForLevel returns the cumulative XP required to reach level.
func TotalForLevel(level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += ForNextLevel(l)
	}
	return total
}

// LevelFromXP derives the level for a cumulative XP total by greedily
// consuming per-level thresholds. Thresholds are strictly increasing, so
// this terminates for any xp >= 0.
func LevelFromXP(xp int) int {
	level := 1
	remaining := xp
	for remaining >= ForNextLevel(level) {
		remaining -= ForNextLevel(level)
		level++
	}
	return level
}

// Progress is the read-side projection of an XP state, never persisted.
type Progress struct {
	Level   int
	Current int
	Needed  int
	Percent int
}

// ProgressOf reports how far into the current level the state is.
func ProgressOf(state store.XPState) Progress {
	level := state.Level
	if level < 1 {
		level = 1
	}
	current := state.XP - TotalForLevel(level)
	needed := ForNextLevel(level)

	percent := (100*current + needed/2) / needed
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return Progress{Level: level, Current: current, Needed: needed, Percent: percent}
}

// AwardOpts controls a single XP award.
type AwardOpts struct {
	Reason   string
	Cooldown time.Duration
}

// AwardResult reports what a single award did.
type AwardResult struct {
	Gained    int
	LeveledUp bool
	NewLevel  int
	State     store.XPState
}

// Ledger maintains cumulative XP, derived level and the daily streak.
// The per-(user, reason) cooldown gate lives only in process memory: it is
// never persisted, never evicted, and resets on restart.
type Ledger struct {
	store  store.RecordStore
	locks  *store.UserLocks
	logger *zap.Logger

	mu        sync.Mutex
	lastAward map[string]time.Time

	now func() time.Time
}

// NewLedger creates a ledger backed by the given record store.
func NewLedger(recordStore store.RecordStore, locks *store.UserLocks, logger *zap.Logger) *Ledger {
	return &Ledger{
		store:     recordStore,
		locks:     locks,
		logger:    logger,
		lastAward: make(map[string]time.Time),
		now:       time.Now,
	}
}

// Award adds amount XP to the user, recomputes level and updates the daily
// streak. amount <= 0 and awards inside the cooldown window are no-ops that
// return the current persisted state. A persistence failure is logged and
// the in-memory result still returned best effort.
func (l *Ledger) Award(scope, userID string, amount int, opts AwardOpts) (AwardResult, error) {
	unlock := l.locks.Lock(scope, userID)
	defer unlock()

	state, err := l.store.LoadXP(scope, userID)
	if err != nil {
		return AwardResult{}, err
	}
	state.Normalize()

	if amount <= 0 {
		return AwardResult{Gained: 0, NewLevel: state.Level, State: state}, nil
	}

	now := l.now()
	if opts.Cooldown > 0 && l.onCooldown(scope, userID, opts.Reason, now, opts.Cooldown) {
		return AwardResult{Gained: 0, NewLevel: state.Level, State: state}, nil
	}

	oldLevel := state.Level
	state.XP += amount
	state.Level = LevelFromXP(state.XP)
	state.LastGain = now.UnixMilli()
	l.updateStreak(&state, now)

	l.mu.Lock()
	l.lastAward[cooldownKey(scope, userID, opts.Reason)] = now
	l.mu.Unlock()

	if err := l.store.SaveXP(scope, userID, state); err != nil {
		if l.logger != nil {
			l.logger.Error("xp award not persisted",
				zap.String("user", userID), zap.Error(err))
		}
	}

	return AwardResult{
		Gained:    amount,
		LeveledUp: state.Level > oldLevel,
		NewLevel:  state.Level,
		State:     state,
	}, nil
}

// GetState returns the persisted XP state for a user.
func (l *Ledger) GetState(scope, userID string) (store.XPState, error) {
	state, err := l.store.LoadXP(scope, userID)
	if err != nil {
		return store.XPState{}, err
	}
	state.Normalize()
	return state, nil
}

func cooldownKey(scope, userID, reason string) string {
	return scope + "/" + userID + "/" + reason
}

func (l *Ledger) onCooldown(scope, userID, reason string, now time.Time, cooldown time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	last, ok := l.lastAward[cooldownKey(scope, userID, reason)]
	return ok && now.Sub(last) < cooldown
}

// updateStreak applies the daily streak rule: first award ever starts at 1,
// a repeat award on the same day changes nothing, the calendar-successor day
// increments, and any gap resets to 1.
func (l *Ledger) updateStreak(state *store.XPState, now time.Time) {
	dayKey := now.Format(dayKeyLayout)

	switch {
	case state.StreakLastDay == "":
		state.StreakDays = 1
	case state.StreakLastDay == dayKey:
		return
	case isNextDay(state.StreakLastDay, dayKey):
		state.StreakDays++
	default:
		state.StreakDays = 1
	}
	state.StreakLastDay = dayKey
}

func isNextDay(prevKey, dayKey string) bool {
	prev, err := time.ParseInLocation(dayKeyLayout, prevKey, time.Local)
	if err != nil {
		return false
	}
	return prev.AddDate(0, 0, 1).Format(dayKeyLayout) == dayKey
}
