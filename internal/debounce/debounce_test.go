package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestOnlyLastCallFires(t *testing.T) {
	d := New(30 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Do(func() {
			calls.Add(1)
			last.Store(n)
		})
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one call, got %d", got)
	}
	if got := last.Load(); got != 5 {
		t.Fatalf("expected last scheduled call to fire, got %d", got)
	}
}

func TestSpacedCallsAllFire(t *testing.T) {
	d := New(10 * time.Millisecond)
	var calls atomic.Int32

	d.Do(func() { calls.Add(1) })
	time.Sleep(50 * time.Millisecond)
	d.Do(func() { calls.Add(1) })
	time.Sleep(50 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Fatalf("expected both spaced calls to fire, got %d", got)
	}
}

func TestCancelDropsPendingCall(t *testing.T) {
	d := New(30 * time.Millisecond)
	var calls atomic.Int32

	d.Do(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Fatalf("expected cancelled call not to fire, got %d", got)
	}
}

func TestCancelWithoutPendingCall(t *testing.T) {
	d := New(time.Millisecond)
	d.Cancel() // no-op
}
