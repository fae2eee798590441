package auth

import (
	"context"
	"time"

	"kitesurf/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionCacheInterface defines the fast-path lookup for live sessions.
// The database stays authoritative; a miss always falls back to it.
type SessionCacheInterface interface {
	StoreSession(ctx context.Context, token string, userID uint, ttl time.Duration) error
	GetSession(ctx context.Context, token string) (userID uint, ok bool)
	DeleteSessions(ctx context.Context, tokens ...string) error
}

// SessionCache keeps session token -> user id in Redis.
type SessionCache struct {
	cache *cache.Client
}

// Ensure SessionCache implements SessionCacheInterface
var _ SessionCacheInterface = (*SessionCache)(nil)

// NewSessionCache creates a new session cache.
func NewSessionCache(cache *cache.Client) *SessionCache {
	return &SessionCache{cache: cache}
}

type cachedSession struct {
	UserID uint `json:"user_id"`
}

// StoreSession caches a session until ttl elapses.
func (s *SessionCache) StoreSession(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.cache.SetJSON(ctx, sessionKeyPrefix+token, cachedSession{UserID: userID}, ttl)
	return nil
}

// GetSession returns the cached owner of token.
func (s *SessionCache) GetSession(ctx context.Context, token string) (uint, bool) {
	var cs cachedSession
	if !s.cache.GetJSON(ctx, sessionKeyPrefix+token, &cs) || cs.UserID == 0 {
		return 0, false
	}
	return cs.UserID, true
}

// DeleteSessions evicts tokens, e.g. after logout.
func (s *SessionCache) DeleteSessions(ctx context.Context, tokens ...string) error {
	if len(tokens) == 0 {
		return nil
	}
	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = sessionKeyPrefix + t
	}
	return s.cache.Delete(ctx, keys...)
}
