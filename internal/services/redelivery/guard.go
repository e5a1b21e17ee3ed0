package redelivery

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Guard remembers recently answered message ids so a callback the platform
// delivers twice is only answered once. A Guard with a zero TTL remembers nothing.
type Guard struct {
	cache *cache.Cache
}

// NewGuard creates a guard that remembers ids for ttl.
func NewGuard(ttl time.Duration) *Guard {
	if ttl <= 0 {
		return &Guard{}
	}
	return &Guard{
		cache: cache.New(ttl, 2*ttl),
	}
}

// FirstDelivery reports whether id has not been seen within the TTL and marks it seen.
// Empty ids are never deduplicated.
func (g *Guard) FirstDelivery(id string) bool {
	if g == nil || g.cache == nil || id == "" {
		return true
	}
	// Add fails when an unexpired item already exists.
	return g.cache.Add(id, struct{}{}, cache.DefaultExpiration) == nil
}
