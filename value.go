// Package delaystate provides state primitives for interactive user
// interfaces: an observable value slot, a delayed slot whose updates can be
// scheduled and superseded, and a follow pair whose second value lags behind
// the first by a configurable delay.
package delaystate

import (
	"sync"

	"github.com/alecthomas/atomic"
	"github.com/benbjohnson/immutable"
)

// Unsubscribe removes a subscription registered with Subscribe. Calling it
// more than once is harmless.
type Unsubscribe func()

// A Value is an observable slot holding a single value. Reads are lock-free;
// writes notify every subscriber with the new value.
type Value[T any] struct {
	cur *atomic.Value[T]

	// changed reports whether a transition from old to new should notify
	// subscribers. nil means every Set notifies.
	changed func(old, new T) bool

	mu       sync.Mutex
	nextID   int
	watchers *immutable.Map[int, func(T)]
}

// NewValue returns a new observable slot. Every Set notifies subscribers,
// even when the new value equals the old one.
func NewValue[T any](initial T) *Value[T] {
	return NewCustomValue(initial, nil)
}

// NewEqValue returns a slot that skips notification when the new value
// compares equal to the current one.
func NewEqValue[T comparable](initial T) *Value[T] {
	return NewCustomValue(initial, func(old, new T) bool {
		return old != new
	})
}

// NewCustomValue returns a slot with a caller-supplied change predicate. A nil
// predicate notifies on every Set.
func NewCustomValue[T any](initial T, changed func(old, new T) bool) *Value[T] {
	return &Value[T]{
		cur:      atomic.New(initial),
		changed:  changed,
		watchers: immutable.NewMap[int, func(T)](nil),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.cur.Load()
}

// Set stores val and notifies subscribers on the calling goroutine. When Set
// is called from multiple goroutines, delivery order is unspecified.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	if v.changed != nil && !v.changed(v.cur.Load(), val) {
		v.mu.Unlock()
		return
	}
	v.cur.Store(val)
	watchers := v.watchers
	v.mu.Unlock()
	// Callbacks run against a snapshot of the registry, outside the lock, so
	// a subscriber may Get, Set or Subscribe without deadlocking.
	it := watchers.Iterator()
	for !it.Done() {
		_, fn, _ := it.Next()
		fn(val)
	}
}

// Subscribe registers fn to be called with each new value. It does not invoke
// fn with the current value.
func (v *Value[T]) Subscribe(fn func(T)) Unsubscribe {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.watchers = v.watchers.Set(id, fn)
	v.mu.Unlock()
	return func() {
		v.mu.Lock()
		v.watchers = v.watchers.Delete(id)
		v.mu.Unlock()
	}
}
