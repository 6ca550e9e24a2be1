// Package tz resolves timezone names to locations and enumerates the zone database.
//
// The embedded tzdata guarantees that IANA names resolve even on hosts without a
// zoneinfo directory; the host database is still preferred by the time package.
package tz

import (
	"time"
	_ "time/tzdata"

	"github.com/hlop3z/dtg/internal/dtgerr"
)

// Local is the meta-name that resolves to the host's configured zone.
const Local = "local"

// Resolver turns zone names into locations.
type Resolver struct {
	host  Host
	known func() []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHost replaces the host used for "local" lookups.
func WithHost(h Host) Option {
	return func(r *Resolver) {
		r.host = h
	}
}

// WithKnownZones sets the source of zone names used for "did you mean" suggestions.
// The function is only called on the error path.
func WithKnownZones(fn func() []string) Option {
	return func(r *Resolver) {
		r.known = fn
	}
}

// NewResolver creates a resolver backed by the operating system and,
// for suggestions, the host zone database.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		host:  OSHost(),
		known: databaseNames,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// Resolve resolves name with the default resolver.
func Resolve(name string) (*time.Location, error) {
	return defaultResolver.Resolve(name)
}

// Resolve returns the location for name.
// "local" is looked up on the host first; everything else goes to time.LoadLocation.
func (r *Resolver) Resolve(name string) (*time.Location, error) {
	if name == Local {
		local, err := r.LocalName()
		if err != nil {
			return nil, err
		}
		if local == Local {
			return nil, r.invalid(local)
		}
		return r.load(local)
	}
	return r.load(name)
}

func (r *Resolver) load(name string) (*time.Location, error) {
	// time.LoadLocation maps "" to UTC and "Local" to the process zone; neither is a zone name.
	if name == "" || name == "Local" {
		return nil, r.invalid(name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, r.invalid(name)
	}
	return loc, nil
}

func (r *Resolver) invalid(name string) error {
	var known []string
	if r.known != nil {
		known = r.known()
	}
	return dtgerr.InvalidTimezone(name, known)
}

// Equal reports whether two locations resolve to the same rule set.
// A nil location is UTC.
func Equal(a, b *time.Location) bool {
	return nameOf(a) == nameOf(b)
}

func nameOf(loc *time.Location) string {
	if loc == nil {
		return time.UTC.String()
	}
	return loc.String()
}

func databaseNames() []string {
	db, err := OpenDatabase()
	if err != nil {
		return nil
	}
	defer db.Close()
	names, err := db.Names()
	if err != nil {
		return nil
	}
	return names
}
