package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/hlop3z/dtg/pkg/dtg"
)

// settings is the merged view of flags, environment and config file.
type settings struct {
	patterns []string
	named    []string
	aFormat  bool
	xFormat  bool
	local    bool
	fromX    bool

	zones    []string
	zonesSet bool

	separator string
}

// settings merges flags over the config. Format flags replace the config's
// formats as a whole.
func (o *options) settings(flags *pflag.FlagSet, cfg *Config) settings {
	s := settings{
		aFormat:   o.aFormat,
		xFormat:   o.xFormat,
		local:     o.local,
		fromX:     o.fromX,
		separator: "\n",
	}

	if flags.Changed("format") || flags.Changed("named") || o.aFormat || o.xFormat {
		s.patterns = o.formats
		s.named = o.named
	} else {
		s.patterns = cfg.Formats
		s.named = cfg.Named
	}

	switch {
	case flags.Changed("zone"):
		s.zones = splitList(o.zone)
		s.zonesSet = true
	case len(cfg.Zones) > 0:
		s.zones = cfg.Zones
		s.zonesSet = true
	}

	switch {
	case flags.Changed("separator"):
		s.separator = unescape(o.separator)
	case cfg.Separator != nil:
		s.separator = unescape(*cfg.Separator)
	}

	return s
}

// buildRequest turns settings into a combinator request.
// Formats are ordered: patterns, named formats, "a", "x".
func buildRequest(s settings, args []string, resolve func(string) (*time.Location, error)) (dtg.Request, error) {
	var formats []dtg.Format
	for _, p := range s.patterns {
		f, err := dtg.Custom(p)
		if err != nil {
			return dtg.Request{}, err
		}
		formats = append(formats, f)
	}
	for _, name := range s.named {
		f, err := dtg.Named(name)
		if err != nil {
			return dtg.Request{}, err
		}
		formats = append(formats, f)
	}
	if s.aFormat {
		formats = append(formats, dtg.A)
	}
	if s.xFormat {
		formats = append(formats, dtg.X)
	}
	if len(formats) == 0 {
		if s.local || s.zonesSet {
			formats = append(formats, dtg.Default)
		} else {
			formats = append(formats, dtg.RFC3339)
		}
	}

	names := s.zones
	if !s.zonesSet {
		if s.local || s.aFormat {
			names = []string{dtg.Local}
		} else {
			names = []string{"UTC"}
		}
	}
	zones := make([]*time.Location, 0, len(names))
	for _, name := range names {
		loc, err := resolve(name)
		if err != nil {
			return dtg.Request{}, err
		}
		zones = append(zones, loc)
	}

	return dtg.Request{
		Args:      args,
		Formats:   formats,
		Zones:     zones,
		Separator: s.separator,
		FromX:     s.fromX,
	}, nil
}

var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

// unescape expands \n and \t.
func unescape(s string) string {
	return escapes.Replace(s)
}
