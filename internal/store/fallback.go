package store

import (
	"go.uber.org/zap"
)

// Fallback tries every operation against the primary (relational) backend
// first and transparently retries it against the secondary (file) backend on
// any error. The bot must stay functional with zero configured database, so
// the primary may be nil, in which case every call goes straight to the
// secondary.
type Fallback struct {
	primary   RecordStore
	secondary RecordStore
	logger    *zap.Logger
}

// NewFallback wires the selector. secondary must not be nil.
func NewFallback(primary, secondary RecordStore, logger *zap.Logger) *Fallback {
	return &Fallback{primary: primary, secondary: secondary, logger: logger}
}

// PrimaryAvailable reports whether a relational backend is configured.
func (f *Fallback) PrimaryAvailable() bool {
	return f.primary != nil
}

func (f *Fallback) fellBack(op string, err error) {
	if f.logger != nil {
		f.logger.Warn("primary store failed, using file fallback",
			zap.String("op", op), zap.Error(err))
	}
}

func (f *Fallback) LoadState(scope, userID string) (AchievementState, error) {
	if f.primary != nil {
		st, err := f.primary.LoadState(scope, userID)
		if err == nil {
			return st, nil
		}
		f.fellBack("LoadState", err)
	}
	return f.secondary.LoadState(scope, userID)
}

func (f *Fallback) SaveState(scope, userID string, state AchievementState) error {
	if f.primary != nil {
		err := f.primary.SaveState(scope, userID, state)
		if err == nil {
			return nil
		}
		f.fellBack("SaveState", err)
	}
	return f.secondary.SaveState(scope, userID, state)
}

func (f *Fallback) LoadXP(scope, userID string) (XPState, error) {
	if f.primary != nil {
		st, err := f.primary.LoadXP(scope, userID)
		if err == nil {
			return st, nil
		}
		f.fellBack("LoadXP", err)
	}
	return f.secondary.LoadXP(scope, userID)
}

func (f *Fallback) SaveXP(scope, userID string, state XPState) error {
	if f.primary != nil {
		err := f.primary.SaveXP(scope, userID, state)
		if err == nil {
			return nil
		}
		f.fellBack("SaveXP", err)
	}
	return f.secondary.SaveXP(scope, userID, state)
}

func (f *Fallback) LoadTitles(scope, userID string) ([]string, error) {
	if f.primary != nil {
		titles, err := f.primary.LoadTitles(scope, userID)
		if err == nil {
			return titles, nil
		}
		f.fellBack("LoadTitles", err)
	}
	return f.secondary.LoadTitles(scope, userID)
}

func (f *Fallback) SaveTitles(scope, userID string, titleIDs []string) error {
	if f.primary != nil {
		err := f.primary.SaveTitles(scope, userID, titleIDs)
		if err == nil {
			return nil
		}
		f.fellBack("SaveTitles", err)
	}
	return f.secondary.SaveTitles(scope, userID, titleIDs)
}

func (f *Fallback) Close() error {
	var firstErr error
	if f.primary != nil {
		firstErr = f.primary.Close()
	}
	if err := f.secondary.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
