package usecase

import "sync"

// orderLocks serializes mutating operations per order id. Concurrent
// proposal submission, acceptance and payment confirmation against the
// same order take the same critical section; different orders proceed
// in parallel.
//
// Locks are never released from the map: order ids are finite within a
// process lifetime and the per-entry cost is one mutex.
type orderLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newOrderLocks() *orderLocks {
	return &orderLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the order's mutex and returns the release function.
func (l *orderLocks) acquire(orderID string) func() {
	l.mu.Lock()
	m, ok := l.locks[orderID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[orderID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
