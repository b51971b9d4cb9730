package watch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewDebouncer_Validation(t *testing.T) {
	_, err := NewDebouncer(DebounceConfig{QuietWindow: 0, MaxDelay: time.Second})
	require.Error(t, err)

	_, err = NewDebouncer(DebounceConfig{QuietWindow: time.Second, MaxDelay: 0})
	require.Error(t, err)

	d, err := NewDebouncer(DebounceConfig{QuietWindow: time.Second, MaxDelay: time.Second})
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d, err := NewDebouncer(DebounceConfig{QuietWindow: 30 * time.Millisecond, MaxDelay: time.Second})
	require.NoError(t, err)

	events := make(chan string, 16)
	var fired atomic.Int32
	var last atomic.Value

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Run(ctx, events, func(l string) {
			last.Store(l)
			fired.Add(1)
		})
	}()

	events <- "a.md"
	events <- "b.md"
	events <- "c.md"

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.Equal(t, "c.md", last.Load())

	// Nothing else pending; stays at one trigger.
	time.Sleep(80 * time.Millisecond)
	require.Equal(t, int32(1), fired.Load())

	close(events)
	<-done
}

func TestDebouncer_MaxDelayBoundsPostponement(t *testing.T) {
	d, err := NewDebouncer(DebounceConfig{QuietWindow: 50 * time.Millisecond, MaxDelay: 150 * time.Millisecond})
	require.NoError(t, err)

	events := make(chan string)
	var fired atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx, events, func(string) { fired.Add(1) })

	// Keep the stream busy so the quiet window never elapses; max delay must
	// force a trigger anyway.
	deadline := time.After(400 * time.Millisecond)
feed:
	for {
		select {
		case events <- "busy.md":
			time.Sleep(20 * time.Millisecond)
		case <-deadline:
			break feed
		}
		if fired.Load() > 0 {
			break
		}
	}

	require.Eventually(t, func() bool { return fired.Load() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_StopsOnContextCancel(t *testing.T) {
	d, err := NewDebouncer(DebounceConfig{QuietWindow: 10 * time.Millisecond, MaxDelay: time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Run(ctx, events, func(string) {})
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debouncer did not stop on context cancel")
	}
}
