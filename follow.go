package delaystate

import "time"

// A Follow pairs an immediate slot with a following slot that lags behind it.
// Setting the pair updates the immediate value synchronously and schedules the
// following value to catch up after a delay; until it does, the two may
// diverge. Revert collapses the pair early, back to the committed following
// value.
type Follow[T any] struct {
	immediate *Value[T]
	following *Delayed[T]

	// changed is the predicate shared by both slots; Revert uses it to decide
	// whether the pair has actually diverged.
	changed func(old, new T) bool
}

// NewFollow returns a follow pair with both slots holding initial. Updates
// that leave a slot's value unchanged do not notify its subscribers.
func NewFollow[T comparable](initial T) *Follow[T] {
	return NewCustomFollow(initial, func(old, new T) bool {
		return old != new
	})
}

// NewCustomFollow is NewFollow for types without builtin equality; changed
// must report whether a transition from old to new is a real change. A nil
// predicate treats every transition as a change.
func NewCustomFollow[T any](initial T, changed func(old, new T) bool) *Follow[T] {
	return &Follow[T]{
		immediate: NewCustomValue(initial, changed),
		following: NewCustomDelayed(initial, changed),
		changed:   changed,
	}
}

// Get returns the immediate and following values.
func (f *Follow[T]) Get() (immediate, following T) {
	return f.immediate.Get(), f.following.Get()
}

// Immediate returns the immediate value.
func (f *Follow[T]) Immediate() T {
	return f.immediate.Get()
}

// Following returns the following value.
func (f *Follow[T]) Following() T {
	return f.following.Get()
}

// Set updates the immediate value synchronously, then schedules the following
// value to become val after delay. The immediate change is observable before
// the following one. A delay of zero or less updates both synchronously. Any
// previously pending follow update is discarded, per SetAfter. No-op after
// Close. The closed check and the immediate update are not one atomic step:
// a Close racing with Set from another goroutine may let one final immediate
// notification through.
func (f *Follow[T]) Set(val T, delay time.Duration) {
	if f.following.isClosed() {
		return
	}
	f.immediate.Set(val)
	f.following.SetAfter(val, delay)
}

// Revert discards any pending follow update and snaps the immediate value
// back to the committed following value, if the two differ. The following
// value is never altered: the reconciliation target is what has already
// settled, not the most recently requested value. No-op after Close.
func (f *Follow[T]) Revert() {
	if f.following.isClosed() {
		return
	}
	f.following.Cancel()
	imm, fol := f.Get()
	if f.changed == nil || f.changed(imm, fol) {
		f.immediate.Set(fol)
	}
}

// SubscribeImmediate registers fn to be called with each new immediate value.
func (f *Follow[T]) SubscribeImmediate(fn func(T)) Unsubscribe {
	return f.immediate.Subscribe(fn)
}

// SubscribeFollowing registers fn to be called with each new following value.
func (f *Follow[T]) SubscribeFollowing(fn func(T)) Unsubscribe {
	return f.following.Subscribe(fn)
}

// Close tears the pair down, discarding any pending follow update. Subsequent
// Set calls are no-ops. Idempotent.
func (f *Follow[T]) Close() {
	f.following.Close()
}
