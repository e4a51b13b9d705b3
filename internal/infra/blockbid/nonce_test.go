package blockbid

import (
	"sync"
	"testing"
)

func TestNonceMonotonic(t *testing.T) {
	n := &NonceSource{}
	prev := n.Next()
	for i := 0; i < 1000; i++ {
		next := n.Next()
		if next <= prev {
			t.Fatalf("nonce went backwards: %d after %d", next, prev)
		}
		prev = next
	}
}

func TestNonceUniqueUnderConcurrency(t *testing.T) {
	n := &NonceSource{}

	const workers = 8
	const perWorker = 500

	var mu sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, n.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, v := range local {
				if seen[v] {
					t.Errorf("duplicate nonce issued: %d", v)
				}
				seen[v] = true
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d unique nonces, got %d", workers*perWorker, len(seen))
	}
}
