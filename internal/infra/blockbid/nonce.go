package blockbid

import (
	"sync"
	"time"
)

// NonceSource issues per-request nonces that are strictly increasing even
// under concurrent signing for the same credential. The server rejects
// stale or replayed nonces, so wall-clock milliseconds alone are not enough
// when two signs land in the same millisecond.
type NonceSource struct {
	mu   sync.Mutex
	last int64
}

// Next returns the next nonce: current time in milliseconds, bumped past
// the previously issued value on collision.
func (n *NonceSource) Next() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= n.last {
		now = n.last + 1
	}
	n.last = now
	return now
}
