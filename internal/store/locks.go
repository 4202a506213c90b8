package store

import "sync"

// UserLocks serializes read-modify-write cycles per (scope, user) so a
// double-fired command cannot interleave updates to the same record. Lock
// entries live for the process lifetime.
type UserLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewUserLocks returns an empty lock set.
func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given user and returns its unlock func.
func (l *UserLocks) Lock(scope, userID string) func() {
	key := recordKey(scope, userID)

	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
