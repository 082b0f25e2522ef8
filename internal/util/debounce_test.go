package util

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CollapsesBursts(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	debouncer := NewDebouncer(50 * time.Millisecond)

	for range 5 {
		debouncer.Do(func() { fired.Add(1) })
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := fired.Load(); got != 1 {
		t.Fatalf("expected exactly one firing, got %d", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	debouncer := NewDebouncer(30 * time.Millisecond)

	debouncer.Do(func() { fired.Add(1) })
	debouncer.Cancel()

	time.Sleep(100 * time.Millisecond)

	if got := fired.Load(); got != 0 {
		t.Fatalf("expected no firing after cancel, got %d", got)
	}
}

func TestDebouncer_Flush(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	debouncer := NewDebouncer(time.Hour)

	debouncer.Do(func() { fired.Add(2) })
	debouncer.Flush(func() { fired.Add(1) })

	time.Sleep(50 * time.Millisecond)

	if got := fired.Load(); got != 1 {
		t.Fatalf("expected only the flushed call, got counter %d", got)
	}
}
