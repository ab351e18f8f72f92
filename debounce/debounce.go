// Package debounce collapses rapid bursts of calls into a single invocation,
// applied once calls stop arriving for a quiet window. It is a thin consumer
// of delaystate.Delayed, which supplies the one-pending-timer semantics.
package debounce

import (
	"time"

	"github.com/fivecar/delaystate"
)

// New returns a debounced function that delays invoking f until wait has
// elapsed since the last call to debounced. cancel discards any pending
// invocation; calling it is optional.
//
// Both returned functions are safe for concurrent use. f runs on the timer
// goroutine and is not waited on, so it must be safe to invoke again before a
// previous invocation returns.
func New(wait time.Duration, f func()) (debounced, cancel func()) {
	call, cancel := NewValued(wait, func(struct{}) { f() })
	return func() { call(struct{}{}) }, cancel
}

// NewValued is New with a payload: f receives the argument of the last call
// made before the quiet window elapsed. Earlier arguments from the same burst
// are discarded.
func NewValued[T any](wait time.Duration, f func(T)) (debounced func(T), cancel func()) {
	var zero T
	slot := delaystate.NewDelayed(zero)
	slot.Subscribe(f)
	return func(v T) { slot.SetAfter(v, wait) }, slot.Cancel
}
