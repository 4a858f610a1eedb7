package service

import (
	"sync"

	"github.com/google/uuid"
)

// locker hands out one mutex per key and forgets it once nobody holds or
// waits for it.
type locker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newLocker() *locker {
	return &locker{locks: make(map[string]*keyLock)}
}

func (l *locker) Lock(key string) (unlock func()) {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()
		l.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// Lock order: catalog, request, issue, book.
const catalogKey = "catalog"

func requestKey(id uuid.UUID) string { return "request:" + id.String() }
func issueKey(id uuid.UUID) string   { return "issue:" + id.String() }
func bookKey(id uuid.UUID) string    { return "book:" + id.String() }
