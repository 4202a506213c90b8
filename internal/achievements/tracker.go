package achievements

import (
	"time"

	"go.uber.org/zap"

	"github.com/suzi-bot/suzi/internal/store"
)

const dayKeyLayout = "2006-01-02"

// doubleCritWindow is the trailing window in which a second natural 20 on a
// d20 counts as a double crit.
const doubleCritWindow = 10 * time.Minute

// TrackResult is what a single tracked event produced.
type TrackResult struct {
	Unlocked []Definition
	State    store.AchievementState
}

// Tracker orchestrates achievement evaluation: increment counters for the
// incoming event, update derived meta, evaluate every still-locked rule
// against the updated state, persist, and report the new unlocks.
type Tracker struct {
	store  store.RecordStore
	locks  *store.UserLocks
	defs   []Definition
	logger *zap.Logger

	now func() time.Time
}

// NewTracker creates a tracker over the static rule table.
func NewTracker(recordStore store.RecordStore, locks *store.UserLocks, logger *zap.Logger) *Tracker {
	return &Tracker{
		store:  recordStore,
		locks:  locks,
		defs:   Definitions(),
		logger: logger,
		now:    time.Now,
	}
}

// Track processes one event for one user.
//
// State is updated before any rule is evaluated, so an achievement fires on
// the very event that crosses its threshold. Already-unlocked ids are never
// re-evaluated; the unlocked set check runs against the state persisted
// before this call, which keeps a retried identical event from awarding
// twice. If the final write fails the result is still returned best effort
// and the failure logged.
func (t *Tracker) Track(scope, userID, eventName string, payload Event) (TrackResult, error) {
	unlock := t.locks.Lock(scope, userID)
	defer unlock()

	state, err := t.store.LoadState(scope, userID)
	if err != nil {
		return TrackResult{}, err
	}

	now := t.now()
	payload.Name = eventName
	applyCounter(&state.Counters, payload)
	t.normalize(&payload, &state.Meta, now)

	result := TrackResult{}
	for _, def := range t.defs {
		if state.HasUnlocked(def.ID) {
			continue
		}
		if def.Condition(payload, State{Counters: state.Counters, Meta: state.Meta}) {
			state.Unlocked = append(state.Unlocked, store.UnlockedAchievement{
				ID:         def.ID,
				UnlockedAt: now.UnixMilli(),
			})
			result.Unlocked = append(result.Unlocked, def)
		}
	}

	if err := t.store.SaveState(scope, userID, state); err != nil {
		if t.logger != nil {
			t.logger.Error("achievement state not persisted",
				zap.String("user", userID),
				zap.String("event", eventName),
				zap.Error(err))
		}
	}

	result.State = state
	return result, nil
}

// GetState returns the persisted achievement state for a user.
func (t *Tracker) GetState(scope, userID string) (store.AchievementState, error) {
	return t.store.LoadState(scope, userID)
}

// normalize fills in DayKey, Hour and DoubleCrit on the payload and applies
// the per-event meta updates. DoubleCrit is true when the batch itself holds
// two or more natural 20s, or when a prior d20 natural 20 happened inside
// the trailing window. The crit timestamp is advanced only after the window
// check so the current roll cannot pair with itself.
func (t *Tracker) normalize(ev *Event, meta *store.AchievementMeta, now time.Time) {
	if ev.DayKey == "" {
		ev.DayKey = now.Format(dayKeyLayout)
	}
	if !ev.hourSet {
		ev.Hour = now.Hour()
	}

	crits := naturalCount(*ev, 20)
	if !ev.DoubleCrit {
		recent := meta.LastD20CritTs > 0 &&
			now.UnixMilli()-meta.LastD20CritTs <= doubleCritWindow.Milliseconds()
		ev.DoubleCrit = crits >= 2 || (crits >= 1 && recent)
	}
	if crits >= 1 {
		meta.LastD20CritTs = now.UnixMilli()
	}

	switch ev.Name {
	case EventRoll:
		meta.LastRollDay = ev.DayKey
	case EventRegister:
		meta.LastRegisterDay = ev.DayKey
	case EventProfile:
		meta.PushProfileDay(ev.DayKey)
	}
}
