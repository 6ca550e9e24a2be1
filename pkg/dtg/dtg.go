// Package dtg converts timestamps between decimal Unix seconds, the compact
// base-60 "x" encoding and a set of human-readable formats.
//
// Quick start:
//
//	d, err := dtg.Parse("1606314757.191168200")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.Format(dtg.X, nil)) // XeAOEWb
package dtg

import (
	"strconv"
	"strings"
	"time"

	"github.com/hlop3z/dtg/internal/dtgerr"
)

const (
	// MaxYear is the largest year the "x" format encodes in four base-60 digits.
	MaxYear = 262143

	// MaxSeconds is +262143-12-31T23:59:59Z in Unix seconds.
	MaxSeconds int64 = 8210298412799
)

// minSeconds mirrors MaxSeconds for negative years.
var minSeconds = time.Date(-MaxYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()

// Dtg is an instant with nanosecond precision. It is always held in UTC.
type Dtg struct {
	t time.Time
}

// FromTime returns the instant of t.
func FromTime(t time.Time) Dtg {
	return Dtg{t: t.UTC()}
}

// Now returns the current instant.
func Now() Dtg {
	return FromTime(time.Now())
}

// Time returns the instant as a UTC time.Time.
func (d Dtg) Time() time.Time {
	return d.t
}

// Equal reports whether both instants are the same to the nanosecond.
func (d Dtg) Equal(other Dtg) bool {
	return d.t.Equal(other.t)
}

// Parse parses decimal Unix seconds with an optional fraction ("1606314757.1911682").
// Fraction digits beyond nanoseconds are dropped.
func Parse(s string) (Dtg, error) {
	secPart, fracPart, hasFrac := strings.Cut(s, ".")

	secs, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil || secs > MaxSeconds || secs < minSeconds {
		return Dtg{}, dtgerr.InvalidTimestamp(s)
	}

	var nanos int64
	if hasFrac {
		if !isDigits(fracPart) {
			return Dtg{}, dtgerr.InvalidTimestamp(s)
		}
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		fracPart += strings.Repeat("0", 9-len(fracPart))
		nanos, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return Dtg{}, dtgerr.InvalidTimestamp(s)
		}
	}

	return Dtg{t: time.Unix(secs, nanos).UTC()}, nil
}

// ParseX parses the compact base-60 form produced by the X format.
//
// The last five symbols are month, day, hour, minute and second (month and day
// zero-based); everything before them is the year, most significant digit first,
// optionally preceded by '-'.
func ParseX(s string) (Dtg, error) {
	body := s
	negative := false
	if strings.HasPrefix(body, "-") {
		negative = true
		body = body[1:]
	}
	if len(body) < 5 {
		return Dtg{}, dtgerr.InvalidTimestamp(s)
	}

	split := len(body) - 5
	year := 0
	for i := 0; i < split; i++ {
		v, ok := decodeDigit(body[i])
		if !ok {
			return Dtg{}, dtgerr.InvalidTimestamp(s)
		}
		year = year*60 + v
		if year > MaxYear {
			return Dtg{}, dtgerr.InvalidTimestamp(s)
		}
	}

	var fields [5]int
	for i := range fields {
		v, ok := decodeDigit(body[split+i])
		if !ok {
			return Dtg{}, dtgerr.InvalidTimestamp(s)
		}
		fields[i] = v
	}

	if negative {
		year = -year
	}
	month := time.Month(fields[0] + 1)
	day := fields[1] + 1
	hour, minute, second := fields[2], fields[3], fields[4]

	t := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
	// time.Date normalizes overflowing fields; a changed field means it was out of range.
	if t.Year() != year || t.Month() != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return Dtg{}, dtgerr.InvalidTimestamp(s)
	}

	return Dtg{t: t}, nil
}

// ParseAny parses s as an "x" timestamp when asX is set, otherwise as decimal seconds.
func ParseAny(s string, asX bool) (Dtg, error) {
	if asX {
		return ParseX(s)
	}
	return Parse(s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
