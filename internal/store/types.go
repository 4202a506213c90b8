package store

// GlobalScope namespaces records for interactions that arrive outside a
// guild (DMs, legacy global mode).
const GlobalScope = "global"

// maxProfileDays bounds the rolling window of distinct days on which a
// user viewed their profile. Oldest entries are evicted first.
const maxProfileDays = 30

// UserCounters holds the per-user event counters. Counters only ever
// increase; the achievement tracker is the sole writer.
type UserCounters struct {
	Rolls          int `json:"rolls"`
	Questions      int `json:"questions"`
	Games          int `json:"games"`
	RegisterCount  int `json:"registerCount"`
	HelpCount      int `json:"helpCount"`
	ProfileCount   int `json:"profileCount"`
	AboutCount     int `json:"aboutCount"`
	SelfLevelEdits int `json:"selfLevelEdits"`
}

// AchievementMeta is auxiliary per-user state that is not a simple counter.
type AchievementMeta struct {
	// LastD20CritTs is the epoch-ms timestamp of the most recent natural 20
	// rolled on a d20, used for the double-crit window.
	LastD20CritTs int64 `json:"lastD20CritTs"`

	// Day keys (YYYY-MM-DD) of the last occurrence of each event type.
	LastRegisterDay string `json:"lastRegisterDay"`
	LastRollDay     string `json:"lastRollDay"`

	// ProfileDays is the ordered list of distinct day keys on which the
	// profile was viewed, capped at maxProfileDays.
	ProfileDays []string `json:"profileDays"`
}

// PushProfileDay appends dayKey to ProfileDays if it is not already present,
// evicting the oldest entry once the window is full.
func (m *AchievementMeta) PushProfileDay(dayKey string) {
	for _, d := range m.ProfileDays {
		if d == dayKey {
			return
		}
	}
	m.ProfileDays = append(m.ProfileDays, dayKey)
	if len(m.ProfileDays) > maxProfileDays {
		m.ProfileDays = m.ProfileDays[len(m.ProfileDays)-maxProfileDays:]
	}
}

// UnlockedAchievement records a single terminal unlock. Entries are
// append-only and unique per achievement id; slice order is unlock order.
type UnlockedAchievement struct {
	ID         string `json:"id"`
	UnlockedAt int64  `json:"unlockedAt"`
}

// AchievementState bundles everything the achievement tracker reads and
// writes for one user.
type AchievementState struct {
	Counters UserCounters          `json:"counters"`
	Meta     AchievementMeta       `json:"meta"`
	Unlocked []UnlockedAchievement `json:"unlocked"`
}

// HasUnlocked reports whether the achievement id is already in the
// unlocked set.
func (s *AchievementState) HasUnlocked(id string) bool {
	for _, u := range s.Unlocked {
		if u.ID == id {
			return true
		}
	}
	return false
}

// XPState is the persisted XP ledger record for one user. Level is a pure
// function of XP; it is stored for fast reads, never as ground truth.
type XPState struct {
	XP            int    `json:"xp"`
	Level         int    `json:"level"`
	LastGain      int64  `json:"lastGain"`
	StreakDays    int    `json:"streakDays"`
	StreakLastDay string `json:"streakLastDay"`
}

// Normalize backfills fields that older stored records may be missing.
func (s *XPState) Normalize() {
	if s.Level < 1 {
		s.Level = 1
	}
	if s.XP < 0 {
		s.XP = 0
	}
}

// RecordStore is durable per-(scope, user) storage for the achievement
// tracker, the XP ledger and the title bridge. Implementations must treat
// missing or unreadable records as zero-valued defaults rather than errors
// wherever possible; a returned error signals the backend itself failed and
// the caller should fall back.
type RecordStore interface {
	LoadState(scope, userID string) (AchievementState, error)
	SaveState(scope, userID string, state AchievementState) error

	LoadXP(scope, userID string) (XPState, error)
	SaveXP(scope, userID string, state XPState) error

	LoadTitles(scope, userID string) ([]string, error)
	SaveTitles(scope, userID string, titleIDs []string) error

	Close() error
}
