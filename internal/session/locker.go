package session

import "sync"

// Locker serializes session read-modify-write per user. Two webhook
// deliveries for the same user (for example a transport retry) must not
// interleave, or a wizard step could be skipped or applied twice. Different
// users never contend.
type Locker struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewLocker() *Locker {
	return &Locker{locks: make(map[int64]*userLock)}
}

func (l *Locker) Lock(userID int64) {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{}
		l.locks[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.mu.Lock()
}

func (l *Locker) Unlock(userID int64) {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if ok {
		ul.refs--
		if ul.refs == 0 {
			delete(l.locks, userID)
		}
	}
	l.mu.Unlock()

	if ok {
		ul.mu.Unlock()
	}
}
