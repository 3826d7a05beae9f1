package auth

import (
	"sync"
	"time"
)

// RevocationList tracks signed-out token IDs until their natural expiry.
// It is an in-memory structure: a restart clears it, which only shortens the
// window in which a signed-out token would have been rejected.
type RevocationList struct {
	mu      sync.RWMutex
	entries map[string]time.Time // jti -> token expiry
}

// NewRevocationList creates an empty revocation list.
func NewRevocationList() *RevocationList {
	return &RevocationList{entries: make(map[string]time.Time)}
}

// Revoke marks the token ID as revoked until the given expiry.
func (rl *RevocationList) Revoke(jti string, expiry time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries[jti] = expiry
}

// IsRevoked reports whether the token ID has been revoked.
func (rl *RevocationList) IsRevoked(jti string) bool {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	_, ok := rl.entries[jti]
	return ok
}

// Purge removes entries whose tokens expired before now.
func (rl *RevocationList) Purge(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for jti, expiry := range rl.entries {
		if expiry.Before(now) {
			delete(rl.entries, jti)
		}
	}
}
