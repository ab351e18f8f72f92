package delaystate

import (
	"sync"
	"time"
)

// A Delayed is an observable slot whose updates may be scheduled for the
// future. At most one scheduled update is outstanding per instance: issuing a
// new one, immediate or delayed, always discards the pending one first, so the
// most recent call wins regardless of the delays involved.
type Delayed[T any] struct {
	val *Value[T]

	mu     sync.Mutex
	timer  *time.Timer // nil when nothing is pending
	closed bool
}

// NewDelayed returns a new delayed slot. Every applied update notifies
// subscribers, even when the value is unchanged.
func NewDelayed[T any](initial T) *Delayed[T] {
	return &Delayed[T]{val: NewValue(initial)}
}

// NewEqDelayed returns a delayed slot that skips notification when an applied
// update equals the current value.
func NewEqDelayed[T comparable](initial T) *Delayed[T] {
	return &Delayed[T]{val: NewEqValue(initial)}
}

// NewCustomDelayed returns a delayed slot with a caller-supplied change
// predicate, as in NewCustomValue.
func NewCustomDelayed[T any](initial T, changed func(old, new T) bool) *Delayed[T] {
	return &Delayed[T]{val: NewCustomValue(initial, changed)}
}

// Get returns the current value. Pending updates are not visible until they
// fire.
func (d *Delayed[T]) Get() T {
	return d.val.Get()
}

// Subscribe registers fn to be called with each applied value. Scheduled
// updates invoke fn from the timer goroutine when they fire.
func (d *Delayed[T]) Subscribe(fn func(T)) Unsubscribe {
	return d.val.Subscribe(fn)
}

// Set applies val immediately, discarding any pending update.
func (d *Delayed[T]) Set(val T) {
	d.SetAfter(val, 0)
}

// SetAfter schedules val to be applied after delay. Any previously pending
// update is discarded first, whatever its remaining delay. A delay of zero or
// less applies val synchronously before returning. No-op after Close.
func (d *Delayed[T]) SetAfter(val T, delay time.Duration) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.stopTimerLocked()
	if delay <= 0 {
		d.mu.Unlock()
		d.val.Set(val)
		return
	}
	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		d.mu.Lock()
		// A fired timer applies its value only if it is still the pending
		// one: Close or a later SetAfter may have raced with the firing.
		if d.closed || d.timer != t {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.val.Set(val)
	})
	d.timer = t
	d.mu.Unlock()
}

// Cancel discards the pending update, if any. The current value is untouched.
func (d *Delayed[T]) Cancel() {
	d.mu.Lock()
	d.stopTimerLocked()
	d.mu.Unlock()
}

// Pending reports whether a scheduled update is outstanding.
func (d *Delayed[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Close discards any pending update and makes all further Set and SetAfter
// calls no-ops, so no pending update can fire after teardown. Idempotent.
// A timer callback that has already begun applying its value when Close is
// called from another goroutine may still deliver one final notification.
func (d *Delayed[T]) Close() {
	d.mu.Lock()
	d.closed = true
	d.stopTimerLocked()
	d.mu.Unlock()
}

func (d *Delayed[T]) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func (d *Delayed[T]) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
