package watch

import (
	"context"
	"time"

	sterrors "git.home.luguber.info/inful/sitetools/internal/errors"
)

// DebounceConfig tunes how change bursts collapse into rebuild triggers.
type DebounceConfig struct {
	// QuietWindow is how long the file system must stay quiet before a
	// trigger fires.
	QuietWindow time.Duration
	// MaxDelay caps how long a trigger can be postponed by a steady stream
	// of changes.
	MaxDelay time.Duration
}

// Debouncer coalesces bursts of change notifications into single triggers:
// a quiet-window debounce with a max-delay bound so rebuilds cannot be
// postponed indefinitely. It is safe to run as a single goroutine.
type Debouncer struct {
	cfg DebounceConfig
}

// NewDebouncer validates the configuration and returns a Debouncer.
func NewDebouncer(cfg DebounceConfig) (*Debouncer, error) {
	if cfg.QuietWindow <= 0 {
		return nil, sterrors.New(sterrors.CategoryValidation, sterrors.SeverityFatal, "quiet window must be > 0")
	}
	if cfg.MaxDelay <= 0 {
		return nil, sterrors.New(sterrors.CategoryValidation, sterrors.SeverityFatal, "max delay must be > 0")
	}
	return &Debouncer{cfg: cfg}, nil
}

// Run consumes change notifications until events closes or ctx is cancelled,
// invoking trigger with the most recent change once per settled burst.
func (d *Debouncer) Run(ctx context.Context, events <-chan string, trigger func(last string)) {
	var (
		quietTimer *time.Timer
		maxTimer   *time.Timer
		quietC     <-chan time.Time
		maxC       <-chan time.Time
		last       string
		pending    bool
	)

	stopTimers := func() {
		if quietTimer != nil {
			quietTimer.Stop()
			quietTimer, quietC = nil, nil
		}
		if maxTimer != nil {
			maxTimer.Stop()
			maxTimer, maxC = nil, nil
		}
	}
	fire := func() {
		stopTimers()
		pending = false
		trigger(last)
	}

	defer stopTimers()
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-events:
			if !ok {
				return
			}
			last = change
			if !pending {
				pending = true
				maxTimer = time.NewTimer(d.cfg.MaxDelay)
				maxC = maxTimer.C
			}
			if quietTimer != nil {
				quietTimer.Stop()
			}
			quietTimer = time.NewTimer(d.cfg.QuietWindow)
			quietC = quietTimer.C
		case <-quietC:
			fire()
		case <-maxC:
			fire()
		}
	}
}
