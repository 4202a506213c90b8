package steam

import (
	"sync"
	"time"
)

// RefreshCache gates repeat Steam lookups per Discord user. It is safe for
// concurrent use and supports periodic cleanup through a janitor goroutine.
type RefreshCache struct {
	mu sync.RWMutex

	ttl      time.Duration
	profiles map[string]cachedProfile

	janitorStop chan struct{}
}

type cachedProfile struct {
	profile   *Profile
	expiresAt time.Time
}

// NewRefreshCache creates a cache with the given TTL. If ttl <= 0 a default
// of 5 minutes is used.
func NewRefreshCache(ttl time.Duration) *RefreshCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RefreshCache{
		ttl:      ttl,
		profiles: make(map[string]cachedProfile),
	}
}

// Get returns the cached profile for a Discord user, if present and fresh.
func (c *RefreshCache) Get(userID string) (*Profile, bool) {
	if c == nil || userID == "" {
		return nil, false
	}

	c.mu.RLock()
	item, ok := c.profiles[userID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if time.Now().After(item.expiresAt) {
		// Expired - evict eagerly
		c.mu.Lock()
		delete(c.profiles, userID)
		c.mu.Unlock()
		return nil, false
	}
	return item.profile, true
}

// Set caches a profile for a Discord user.
func (c *RefreshCache) Set(userID string, profile *Profile) {
	if c == nil || userID == "" || profile == nil {
		return
	}
	exp := time.Now().Add(c.ttl)

	c.mu.Lock()
	c.profiles[userID] = cachedProfile{profile: profile, expiresAt: exp}
	c.mu.Unlock()
}

// PurgeExpired removes expired entries.
func (c *RefreshCache) PurgeExpired() {
	if c == nil {
		return
	}
	now := time.Now()

	c.mu.Lock()
	for k, v := range c.profiles {
		if now.After(v.expiresAt) {
			delete(c.profiles, k)
		}
	}
	c.mu.Unlock()
}

// StartJanitor starts a background goroutine that periodically purges
// expired entries. It returns a stop function. If interval <= 0, a default
// of 5 minutes is used.
func (c *RefreshCache) StartJanitor(interval time.Duration) func() {
	if c == nil {
		return func() {}
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	c.mu.Lock()
	if c.janitorStop != nil {
		close(c.janitorStop)
	}
	stop := make(chan struct{})
	c.janitorStop = stop
	c.mu.Unlock()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.PurgeExpired()
			case <-stop:
				return
			}
		}
	}()

	return func() {
		c.mu.Lock()
		if c.janitorStop != nil {
			close(c.janitorStop)
			c.janitorStop = nil
		}
		c.mu.Unlock()
	}
}
