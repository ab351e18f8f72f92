package delaystate

import (
	"context"
	"sync"
)

// CloseOnDone closes d when ctx is done, tying the slot's lifetime to the
// context the way a UI component ties state to its mount. The returned stop
// func releases the watcher goroutine without closing d; call it if d
// outlives the binding.
func (d *Delayed[T]) CloseOnDone(ctx context.Context) (stop func()) {
	return closeOnDone(ctx, d.Close)
}

// CloseOnDone closes f when ctx is done, as in Delayed.CloseOnDone.
func (f *Follow[T]) CloseOnDone(ctx context.Context) (stop func()) {
	return closeOnDone(ctx, f.Close)
}

func closeOnDone(ctx context.Context, closer func()) (stop func()) {
	if ctx.Err() != nil {
		closer()
		return func() {}
	}
	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			closer()
		case <-stopped:
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() { close(stopped) })
	}
}
