package delaystate_test

import (
	"testing"
	"time"

	"github.com/anacrolix/missinggo/iter"
	"github.com/fivecar/delaystate"
)

func BenchmarkValueSet(b *testing.B) {
	v := delaystate.NewValue(0)
	for i := 0; i < b.N; i++ {
		v.Set(i)
	}
}

func BenchmarkValueSetFanOut(b *testing.B) {
	v := delaystate.NewValue(0)
	sink := 0
	for range iter.N(16) {
		v.Subscribe(func(x int) { sink += x })
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Set(i)
	}
	_ = sink
}

func BenchmarkValueGet(b *testing.B) {
	v := delaystate.NewValue(42)
	sink := 0
	for i := 0; i < b.N; i++ {
		sink = v.Get()
	}
	_ = sink
}

func BenchmarkSetAfterSupersede(b *testing.B) {
	// each iteration arms a timer the next iteration discards
	d := delaystate.NewDelayed(0)
	for i := 0; i < b.N; i++ {
		d.SetAfter(i, time.Hour)
	}
	d.Cancel()
}

func BenchmarkFollowSettleImmediately(b *testing.B) {
	f := delaystate.NewFollow(0)
	for i := 0; i < b.N; i++ {
		f.Set(i, 0)
	}
}
