// internal/service/session.go
package service

import (
	"context"
	"time"

	"github.com/jaepaama/Employeehub/internal/cache"
	"github.com/jaepaama/Employeehub/internal/domain"
)

// SessionCache tracks live session token IDs so logout can revoke tokens
// server-side before they expire.
type SessionCache struct {
	cache *cache.InMemoryCache
}

// SessionConfig holds configuration for the session cache
type SessionConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

func NewSessionCache(config SessionConfig) *SessionCache {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)
	c.StartCleanup(context.Background())

	return &SessionCache{cache: c}
}

// Put registers a freshly issued token ID for the given email.
func (s *SessionCache) Put(ctx context.Context, tokenID, email string) error {
	if tokenID == "" {
		return domain.ErrInvalidInput
	}
	s.cache.Set(ctx, tokenID, email)
	return nil
}

// Lookup resolves a token ID to the email it was issued for.
func (s *SessionCache) Lookup(ctx context.Context, tokenID string) (string, error) {
	if tokenID == "" {
		return "", domain.ErrInvalidInput
	}

	value, found := s.cache.Get(ctx, tokenID)
	if !found {
		return "", domain.ErrSessionExpired
	}

	email, ok := value.(string)
	if !ok {
		return "", domain.ErrSessionExpired
	}
	return email, nil
}

// Revoke drops a token ID; subsequent lookups fail.
func (s *SessionCache) Revoke(ctx context.Context, tokenID string) {
	s.cache.Delete(ctx, tokenID)
}

// Close stops the cleanup routine
func (s *SessionCache) Close() {
	s.cache.StopCleanup()
}
