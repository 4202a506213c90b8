package store

import (
	"encoding/json"
	"errors"
	"fmt"

	sqlite "github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// achievementStateRow holds the counters and meta for one (guild, user).
// ProfileDays is stored as a JSON array in a text column.
type achievementStateRow struct {
	GuildID         string `gorm:"primaryKey;column:guild_id"`
	UserID          string `gorm:"primaryKey;column:user_id"`
	Rolls           int    `gorm:"column:rolls"`
	Questions       int    `gorm:"column:questions"`
	Games           int    `gorm:"column:games"`
	RegisterCount   int    `gorm:"column:register_count"`
	HelpCount       int    `gorm:"column:help_count"`
	ProfileCount    int    `gorm:"column:profile_count"`
	AboutCount      int    `gorm:"column:about_count"`
	SelfLevelEdits  int    `gorm:"column:self_level_edits"`
	LastD20CritTs   int64  `gorm:"column:last_d20_crit_ts"`
	LastRegisterDay string `gorm:"column:last_register_day"`
	LastRollDay     string `gorm:"column:last_roll_day"`
	ProfileDays     string `gorm:"column:profile_days"`
}

func (achievementStateRow) TableName() string { return "achievement_state" }

type userAchievementRow struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	GuildID        string `gorm:"column:guild_id;uniqueIndex:idx_user_achievement"`
	UserID         string `gorm:"column:user_id;uniqueIndex:idx_user_achievement"`
	AchievementKey string `gorm:"column:achievement_key;uniqueIndex:idx_user_achievement"`
	UnlockedAt     int64  `gorm:"column:unlocked_at"`
}

func (userAchievementRow) TableName() string { return "user_achievements" }

type profileRow struct {
	GuildID       string `gorm:"primaryKey;column:guild_id"`
	UserID        string `gorm:"primaryKey;column:user_id"`
	XP            int    `gorm:"column:xp"`
	Level         int    `gorm:"column:level"`
	LastGain      int64  `gorm:"column:last_gain"`
	StreakDays    int    `gorm:"column:streak_days"`
	StreakLastDay string `gorm:"column:streak_last_day"`
}

func (profileRow) TableName() string { return "profile" }

type titleUnlockRow struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	GuildID  string `gorm:"column:guild_id;uniqueIndex:idx_user_title"`
	UserID   string `gorm:"column:user_id;uniqueIndex:idx_user_title"`
	TitleKey string `gorm:"column:title_key;uniqueIndex:idx_user_title"`
}

func (titleUnlockRow) TableName() string { return "user_title_unlocks" }

// SQLStore is the relational backend, a SQLite database managed by gorm.
type SQLStore struct {
	db *gorm.DB
}

// OpenSQLStore opens the SQLite database at path and migrates the schema.
func OpenSQLStore(path string, logger *zap.Logger) (*SQLStore, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&achievementStateRow{},
		&userAchievementRow{},
		&profileRow{},
		&titleUnlockRow{},
	); err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("database initialized", zap.String("path", path))
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) LoadState(scope, userID string) (AchievementState, error) {
	var row achievementStateRow
	err := s.db.Where("guild_id = ? AND user_id = ?", scope, userID).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AchievementState{}, err
	}

	st := AchievementState{
		Counters: UserCounters{
			Rolls:          row.Rolls,
			Questions:      row.Questions,
			Games:          row.Games,
			RegisterCount:  row.RegisterCount,
			HelpCount:      row.HelpCount,
			ProfileCount:   row.ProfileCount,
			AboutCount:     row.AboutCount,
			SelfLevelEdits: row.SelfLevelEdits,
		},
		Meta: AchievementMeta{
			LastD20CritTs:   row.LastD20CritTs,
			LastRegisterDay: row.LastRegisterDay,
			LastRollDay:     row.LastRollDay,
		},
	}
	if row.ProfileDays != "" {
		// A malformed column is treated as empty, never as a failure.
		_ = json.Unmarshal([]byte(row.ProfileDays), &st.Meta.ProfileDays)
	}

	var unlockRows []userAchievementRow
	err = s.db.Where("guild_id = ? AND user_id = ?", scope, userID).
		Order("id asc").Find(&unlockRows).Error
	if err != nil {
		return AchievementState{}, err
	}
	for _, u := range unlockRows {
		st.Unlocked = append(st.Unlocked, UnlockedAchievement{ID: u.AchievementKey, UnlockedAt: u.UnlockedAt})
	}
	return st, nil
}

func (s *SQLStore) SaveState(scope, userID string, state AchievementState) error {
	days, err := json.Marshal(state.Meta.ProfileDays)
	if err != nil {
		return err
	}
	row := achievementStateRow{
		GuildID:         scope,
		UserID:          userID,
		Rolls:           state.Counters.Rolls,
		Questions:       state.Counters.Questions,
		Games:           state.Counters.Games,
		RegisterCount:   state.Counters.RegisterCount,
		HelpCount:       state.Counters.HelpCount,
		ProfileCount:    state.Counters.ProfileCount,
		AboutCount:      state.Counters.AboutCount,
		SelfLevelEdits:  state.Counters.SelfLevelEdits,
		LastD20CritTs:   state.Meta.LastD20CritTs,
		LastRegisterDay: state.Meta.LastRegisterDay,
		LastRollDay:     state.Meta.LastRollDay,
		ProfileDays:     string(days),
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return err
	}

	// Unlocks are append-only; re-inserting an existing id is a no-op.
	for _, u := range state.Unlocked {
		unlock := userAchievementRow{
			GuildID:        scope,
			UserID:         userID,
			AchievementKey: u.ID,
			UnlockedAt:     u.UnlockedAt,
		}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&unlock).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLStore) LoadXP(scope, userID string) (XPState, error) {
	var row profileRow
	err := s.db.Where("guild_id = ? AND user_id = ?", scope, userID).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return XPState{}, err
	}
	st := XPState{
		XP:            row.XP,
		Level:         row.Level,
		LastGain:      row.LastGain,
		StreakDays:    row.StreakDays,
		StreakLastDay: row.StreakLastDay,
	}
	st.Normalize()
	return st, nil
}

func (s *SQLStore) SaveXP(scope, userID string, state XPState) error {
	row := profileRow{
		GuildID:       scope,
		UserID:        userID,
		XP:            state.XP,
		Level:         state.Level,
		LastGain:      state.LastGain,
		StreakDays:    state.StreakDays,
		StreakLastDay: state.StreakLastDay,
	}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

func (s *SQLStore) LoadTitles(scope, userID string) ([]string, error) {
	var rows []titleUnlockRow
	err := s.db.Where("guild_id = ? AND user_id = ?", scope, userID).
		Order("id asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(rows))
	for _, r := range rows {
		titles = append(titles, r.TitleKey)
	}
	return titles, nil
}

func (s *SQLStore) SaveTitles(scope, userID string, titleIDs []string) error {
	for _, id := range titleIDs {
		row := titleUnlockRow{GuildID: scope, UserID: userID, TitleKey: id}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
