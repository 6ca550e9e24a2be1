// Package watch repeats work on an interval and reports changes to watched files.
package watch

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Loop runs a function repeatedly.
type Loop struct {
	Interval time.Duration
	Clock    clockwork.Clock
}

// Run calls fn once immediately and again after every interval. It returns
// nil when ctx is cancelled and fn's error if fn fails.
func (l Loop) Run(ctx context.Context, fn func(context.Context) error) error {
	clock := l.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	for {
		if err := fn(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-clock.After(l.Interval):
		}
	}
}
