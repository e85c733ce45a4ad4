package friends

import (
	"bytes"
	"sync"

	"github.com/google/uuid"
)

type pairKey [2]uuid.UUID

// keyFor orders a and b so both directions share one key.
func keyFor(a, b uuid.UUID) pairKey {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return pairKey{a, b}
}

// pairLocks serializes work on the same unordered pair. Entries are dropped
// once no goroutine holds or waits on them.
type pairLocks struct {
	mu    sync.Mutex
	locks map[pairKey]*pairLock
}

type pairLock struct {
	sync.Mutex
	refs int
}

func newPairLocks() *pairLocks {
	return &pairLocks{locks: make(map[pairKey]*pairLock)}
}

// lock blocks until the pair is free and returns its release func.
func (p *pairLocks) lock(a, b uuid.UUID) (unlock func()) {
	key := keyFor(a, b)

	p.mu.Lock()
	l, ok := p.locks[key]
	if !ok {
		l = &pairLock{}
		p.locks[key] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, key)
		}
		p.mu.Unlock()
	}
}

func (p *pairLocks) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
