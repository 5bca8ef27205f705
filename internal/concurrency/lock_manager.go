package concurrency

import (
	"sync"
)

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager handles named locks. A key's mutex lives only while some
// caller holds or waits for it.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyedLock)}
}

func (lm *LockManager) acquire(key string) *keyedLock {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyedLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()
	return l
}

func (lm *LockManager) release(key string, l *keyedLock) {
	l.mu.Unlock()

	lm.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
	lm.mu.Unlock()
}

// WithLock runs fn while holding the named lock.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	l := lm.acquire(key)
	defer lm.release(key, l)
	return fn()
}

// Len reports how many keys are currently held or awaited.
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
