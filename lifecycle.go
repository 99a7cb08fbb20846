package shellext

// Package file lifecycle.go contains the live object and lock counters
// a host queries before unloading the provider.

import "sync/atomic"

// Lifecycle counts the live engines and menus plus the locks held by the host.
// The zero value is ready to use and all methods are safe for concurrent use.
type Lifecycle struct {
	objects atomic.Int64
	locks   atomic.Int64
}

// Module is the process-wide lifecycle used by engines unless WithLifecycle is given.
var Module Lifecycle

func (l *Lifecycle) acquire() { l.objects.Add(1) }
func (l *Lifecycle) release() { l.objects.Add(-1) }

// Objects returns the number of engines and menus that are not yet closed.
func (l *Lifecycle) Objects() int64 {
	return l.objects.Load()
}

// Lock keeps the provider loaded until a matching Unlock.
func (l *Lifecycle) Lock() {
	l.locks.Add(1)
}

// Unlock releases a lock taken by Lock.
func (l *Lifecycle) Unlock() {
	l.locks.Add(-1)
}

// Locks returns the number of locks held.
func (l *Lifecycle) Locks() int64 {
	return l.locks.Load()
}

// CanUnload is true when no object is alive and no lock is held.
// The counters are read on every call.
func (l *Lifecycle) CanUnload() bool {
	return l.Objects() == 0 && l.Locks() == 0
}
