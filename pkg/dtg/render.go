package dtg

import (
	"strings"
	"time"
)

// Format renders d. A nil zone is UTC.
func (d Dtg) Format(f Format, zone *time.Location) string {
	if zone == nil {
		zone = time.UTC
	}
	utc := d.t
	local := d.t.In(zone)

	switch f.kind {
	case KindRFC3339:
		return rfc3339Layout.FormatString(utc)
	case KindDefault:
		return defaultLayout.FormatString(local)
	case KindCustom:
		if f.layout == nil {
			return ""
		}
		if f.pattern == RFC3339Pattern {
			return f.layout.FormatString(utc)
		}
		return f.layout.FormatString(local)
	case KindA:
		return strings.Join([]string{
			epochLayout.FormatString(utc),
			rfc3339Layout.FormatString(utc),
			defaultLayout.FormatString(utc),
			defaultLayout.FormatString(local),
		}, "\n")
	case KindX:
		return formatX(utc)
	case KindBCD:
		return formatBCD(local)
	default:
		return ""
	}
}

func (d Dtg) String() string {
	return d.Format(RFC3339, nil)
}

// formatX encodes t as year digits followed by month, day, hour, minute and
// second symbols. Month and day are zero-based.
func formatX(t time.Time) string {
	year := t.Year()
	b := make([]byte, 0, 12)
	if year < 0 {
		b = append(b, '-')
		year = -year
	}
	b = appendBase60(b, year)
	b = append(b,
		encodeDigit(int(t.Month())-1),
		encodeDigit(t.Day()-1),
		encodeDigit(t.Hour()),
		encodeDigit(t.Minute()),
		encodeDigit(t.Second()),
	)
	return string(b)
}

// formatBCD renders t as <century><year>|<month>|<day>|<hour>|<minute>|<second>
// in Braille BCD cells.
func formatBCD(t time.Time) string {
	var b strings.Builder
	year := t.Year()
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	writeCentury(&b, year/100)
	b.WriteRune(bcdBraille(year % 100))
	for _, n := range []int{int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()} {
		b.WriteByte('|')
		b.WriteRune(bcdBraille(n))
	}
	return b.String()
}
