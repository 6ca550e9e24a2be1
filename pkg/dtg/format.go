package dtg

import (
	"errors"
	"sort"

	"github.com/lestrrat-go/strftime"

	"github.com/hlop3z/dtg/internal/dtgerr"
)

// Built-in patterns.
const (
	DefaultPattern = "%a %d %b %Y %H:%M:%S %Z"
	EpochPattern   = "%s.%f"
	RFC3339Pattern = "%Y-%m-%dT%H:%M:%SZ"
)

var (
	defaultLayout = mustCompile(DefaultPattern)
	epochLayout   = mustCompile(EpochPattern)
	rfc3339Layout = mustCompile(RFC3339Pattern)
)

// Kind identifies a format variant.
type Kind int

const (
	KindRFC3339 Kind = iota // zero value: RFC 3339 in UTC
	KindDefault
	KindCustom
	KindA
	KindX
	KindBCD
)

func (k Kind) String() string {
	switch k {
	case KindRFC3339:
		return "rfc-3339"
	case KindDefault:
		return "default"
	case KindCustom:
		return "custom"
	case KindA:
		return "a"
	case KindX:
		return "x"
	case KindBCD:
		return "bcd"
	default:
		return "unknown"
	}
}

// Format describes how an instant is rendered. The zero value is RFC 3339.
type Format struct {
	kind    Kind
	pattern string
	layout  *strftime.Strftime
}

// Predefined formats.
var (
	RFC3339 = Format{kind: KindRFC3339}
	Default = Format{kind: KindDefault}
	A       = Format{kind: KindA}
	X       = Format{kind: KindX}
	BCD     = Format{kind: KindBCD}
)

// Custom compiles a strftime pattern. The pattern must not be empty.
func Custom(pattern string) (Format, error) {
	if pattern == "" {
		return Format{}, dtgerr.InvalidFormat(pattern, errors.New("empty pattern"), nil)
	}
	layout, err := compile(pattern)
	if err != nil {
		return Format{}, dtgerr.InvalidFormat(pattern, err, nil)
	}
	return Format{kind: KindCustom, pattern: pattern, layout: layout}, nil
}

// Kind returns the variant.
func (f Format) Kind() Kind {
	return f.kind
}

// Pattern returns the strftime pattern of Custom, Default and RFC 3339 formats.
func (f Format) Pattern() string {
	switch f.kind {
	case KindCustom:
		return f.pattern
	case KindDefault:
		return DefaultPattern
	case KindRFC3339:
		return RFC3339Pattern
	default:
		return ""
	}
}

func (f Format) String() string {
	if f.kind == KindCustom {
		return "custom(" + f.pattern + ")"
	}
	return f.kind.String()
}

// named maps every alias to a constructor.
var named = map[string]func() Format{
	"a":                 func() Format { return A },
	"all":               func() Format { return A },
	"bcd":               func() Format { return BCD },
	"cd":                compactDate,
	"compact-date":      compactDate,
	"cdt":               compactDateTime,
	"compact-date-time": compactDateTime,
	"ct":                compactTime,
	"compact-time":      compactTime,
	"d":                 func() Format { return Default },
	"default":           func() Format { return Default },
	"i":                 func() Format { return RFC3339 },
	"r":                 func() Format { return RFC3339 },
	"rfc":               func() Format { return RFC3339 },
	"rfc-3339":          func() Format { return RFC3339 },
	"x":                 func() Format { return X },
}

var (
	compactDateFormat     = Format{kind: KindCustom, pattern: "%Y%m%d", layout: mustCompile("%Y%m%d")}
	compactDateTimeFormat = Format{kind: KindCustom, pattern: "%Y%m%d-%H%M%S", layout: mustCompile("%Y%m%d-%H%M%S")}
	compactTimeFormat     = Format{kind: KindCustom, pattern: "%H%M%S", layout: mustCompile("%H%M%S")}
)

func compactDate() Format     { return compactDateFormat }
func compactDateTime() Format { return compactDateTimeFormat }
func compactTime() Format     { return compactTimeFormat }

// Named returns the format registered under name.
func Named(name string) (Format, error) {
	if ctor, ok := named[name]; ok {
		return ctor(), nil
	}
	return Format{}, dtgerr.InvalidFormat(name, nil, NamedFormats())
}

// NamedFormats returns every registered alias, sorted.
func NamedFormats() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
