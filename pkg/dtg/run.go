package dtg

import (
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// Request is one invocation of the combinator.
type Request struct {
	// Args are timestamps to convert; empty means "now".
	Args []string
	// Formats defaults to RFC 3339 when empty.
	Formats []Format
	// Zones defaults to UTC when empty. A nil entry is UTC.
	Zones []*time.Location
	// Separator joins the renderings of one instant.
	Separator string
	// FromX parses Args as "x" timestamps.
	FromX bool
}

// Runner evaluates requests.
type Runner struct {
	clock clockwork.Clock
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock sets the clock used for "now".
func WithClock(c clockwork.Clock) RunnerOption {
	return func(r *Runner) {
		r.clock = c
	}
}

// NewRunner creates a runner on the real clock.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRunner = NewRunner()

// Run evaluates req with the real clock.
func Run(req Request) ([]string, error) {
	return defaultRunner.Run(req)
}

// Run returns one line per instant. Each line holds every format rendered in
// every zone, formats outermost, joined by the separator.
// The first invalid argument fails the whole request.
func (r *Runner) Run(req Request) ([]string, error) {
	instants := make([]Dtg, 0, max(len(req.Args), 1))
	if len(req.Args) == 0 {
		instants = append(instants, FromTime(r.clock.Now()))
	}
	for _, arg := range req.Args {
		d, err := ParseAny(arg, req.FromX)
		if err != nil {
			return nil, err
		}
		instants = append(instants, d)
	}

	formats := req.Formats
	if len(formats) == 0 {
		formats = []Format{RFC3339}
	}
	zones := req.Zones
	if len(zones) == 0 {
		zones = []*time.Location{nil}
	}

	lines := make([]string, 0, len(instants))
	parts := make([]string, 0, len(formats)*len(zones))
	for _, d := range instants {
		parts = parts[:0]
		for _, f := range formats {
			for _, zone := range zones {
				parts = append(parts, d.Format(f, zone))
			}
		}
		lines = append(lines, strings.Join(parts, req.Separator))
	}
	return lines, nil
}
