package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// File names of the logical tables, one JSON document each.
const (
	stateFile   = "achievement_state.json"
	unlocksFile = "user_achievements.json"
	profileFile = "profile.json"
	titlesFile  = "user_title_unlocks.json"
)

// FileStore persists every logical table as a single JSON document under a
// data directory. Writes go through a temp-file-then-rename so a crash mid
// write never exposes a partial record to the next read.
type FileStore struct {
	mu     sync.Mutex
	dir    string
	logger *zap.Logger
}

// NewFileStore creates the data directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// recordKey namespaces a user within a document. Global-scope records keep
// the bare user id for compatibility with the legacy single-guild layout.
func recordKey(scope, userID string) string {
	if scope == "" || scope == GlobalScope {
		return userID
	}
	return scope + "/" + userID
}

func (f *FileStore) LoadState(scope, userID string) (AchievementState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var table map[string]AchievementState
	f.readTable(stateFile, &table)
	st := table[recordKey(scope, userID)]

	var unlocks map[string][]UnlockedAchievement
	f.readTable(unlocksFile, &unlocks)
	st.Unlocked = unlocks[recordKey(scope, userID)]
	return st, nil
}

func (f *FileStore) SaveState(scope, userID string, state AchievementState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := recordKey(scope, userID)

	var table map[string]AchievementState
	f.readTable(stateFile, &table)
	if table == nil {
		table = make(map[string]AchievementState)
	}
	stripped := state
	stripped.Unlocked = nil
	table[key] = stripped
	if err := f.writeTable(stateFile, table); err != nil {
		return err
	}

	var unlocks map[string][]UnlockedAchievement
	f.readTable(unlocksFile, &unlocks)
	if unlocks == nil {
		unlocks = make(map[string][]UnlockedAchievement)
	}
	unlocks[key] = state.Unlocked
	return f.writeTable(unlocksFile, unlocks)
}

func (f *FileStore) LoadXP(scope, userID string) (XPState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var table map[string]XPState
	f.readTable(profileFile, &table)
	st := table[recordKey(scope, userID)]
	st.Normalize()
	return st, nil
}

func (f *FileStore) SaveXP(scope, userID string, state XPState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var table map[string]XPState
	f.readTable(profileFile, &table)
	if table == nil {
		table = make(map[string]XPState)
	}
	table[recordKey(scope, userID)] = state
	return f.writeTable(profileFile, table)
}

func (f *FileStore) LoadTitles(scope, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var table map[string][]string
	f.readTable(titlesFile, &table)
	return table[recordKey(scope, userID)], nil
}

func (f *FileStore) SaveTitles(scope, userID string, titleIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var table map[string][]string
	f.readTable(titlesFile, &table)
	if table == nil {
		table = make(map[string][]string)
	}
	table[recordKey(scope, userID)] = titleIDs
	return f.writeTable(titlesFile, table)
}

// Close is a no-op; every write is already flushed to disk.
func (f *FileStore) Close() error { return nil }

// readTable loads a JSON document into out. A missing file leaves out at its
// zero value. A corrupt file is logged, removed so the next write recreates
// it, and likewise treated as empty -- stored corruption must never escalate
// into a caller-visible failure.
func (f *FileStore) readTable(name string, out interface{}) {
	path := filepath.Join(f.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) && f.logger != nil {
			f.logger.Warn("unreadable data file, starting empty",
				zap.String("file", name), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		if f.logger != nil {
			f.logger.Warn("corrupt data file, recreating",
				zap.String("file", name), zap.Error(err))
		}
		_ = os.Remove(path)
	}
}

// writeTable writes the document atomically: marshal, write to a temp file
// in the same directory, rename over the destination. If the rename fails,
// the destination is removed and the rename retried once; only then does it
// fall back to an in-place write.
func (f *FileStore) writeTable(name string, table interface{}) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", name, err)
	}

	path := filepath.Join(f.dir, name)
	tmp, err := os.CreateTemp(f.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp file for %s: %w", name, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("error writing temp file for %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("error closing temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(path)
		if err := os.Rename(tmpPath, path); err != nil {
			if f.logger != nil {
				f.logger.Warn("atomic rename failed, writing in place",
					zap.String("file", name), zap.Error(err))
			}
			_ = os.Remove(tmpPath)
			return os.WriteFile(path, data, 0o644)
		}
	}
	return nil
}
