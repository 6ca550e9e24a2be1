package dtg

import (
	"errors"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Extended tokens are longer than the single byte the strftime library
// reads after '%'. rewrite swaps each one for a private verb byte at or
// above extendedBase before compiling.
const extendedBase = 0x80

type extendedToken struct {
	token    string
	appender strftime.Appender
}

// numericField is a numeric verb with its value and natural width.
type numericField struct {
	verb  byte
	value func(time.Time) int
	width int
}

var numericFields = []numericField{
	{'d', func(t time.Time) int { return t.Day() }, 2},
	{'e', func(t time.Time) int { return t.Day() }, 2},
	{'H', func(t time.Time) int { return t.Hour() }, 2},
	{'k', func(t time.Time) int { return t.Hour() }, 2},
	{'I', hour12, 2},
	{'l', hour12, 2},
	{'j', func(t time.Time) int { return t.YearDay() }, 3},
	{'m', func(t time.Time) int { return int(t.Month()) }, 2},
	{'M', func(t time.Time) int { return t.Minute() }, 2},
	{'S', func(t time.Time) int { return t.Second() }, 2},
	{'y', func(t time.Time) int { return mod(t.Year(), 100) }, 2},
	{'C', func(t time.Time) int { return floorDiv(t.Year(), 100) }, 2},
	{'g', isoShortYear, 2},
	{'U', sundayWeek, 2},
	{'W', mondayWeek, 2},
	{'V', isoWeek, 2},
	{'u', isoWeekday, 1},
	{'w', func(t time.Time) int { return int(t.Weekday()) }, 1},
}

// extendedTokens is ordered so that longer tokens are tried first.
var extendedTokens = buildExtendedTokens()

func buildExtendedTokens() []extendedToken {
	tokens := []extendedToken{
		{".3f", fraction(3, true)},
		{".6f", fraction(6, true)},
		{".9f", fraction(9, true)},
		{".f", strftime.AppendFunc(appendAutoFraction)},
		{"3f", fraction(3, false)},
		{"6f", fraction(6, false)},
		{"9f", fraction(9, false)},
		{":z", strftime.StdlibFormat("-07:00")},
	}
	for _, pad := range []byte{'-', '_', '0'} {
		for _, field := range numericFields {
			tokens = append(tokens, extendedToken{
				token:    string([]byte{pad, field.verb}),
				appender: padded(field, pad),
			})
		}
	}
	return tokens
}

func registerExtended(set func(byte, strftime.Appender)) {
	for i, tok := range extendedTokens {
		set(byte(extendedBase+i), tok.appender)
	}
}

// rewrite replaces extended tokens in pattern with their private verbs.
func rewrite(pattern string) (string, error) {
	out := make([]byte, 0, len(pattern))
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			out = append(out, c)
			i++
			continue
		}

		rest := pattern[i+1:]
		if verb, n, ok := matchExtended(rest); ok {
			out = append(out, '%', verb)
			i += 1 + n
			continue
		}
		if rest[0] >= extendedBase {
			return "", errors.New("unknown specification after '%'")
		}
		out = append(out, '%', rest[0])
		i += 2
	}
	return string(out), nil
}

func matchExtended(s string) (byte, int, bool) {
	for i, tok := range extendedTokens {
		if len(s) >= len(tok.token) && s[:len(tok.token)] == tok.token {
			return byte(extendedBase + i), len(tok.token), true
		}
	}
	return 0, 0, false
}

// padded renders field with '-' (no padding), '_' (spaces) or '0' (zeros).
func padded(field numericField, pad byte) strftime.Appender {
	return strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		n := field.value(t)
		if n < 0 {
			b = append(b, '-')
			n = -n
		}
		s := strconv.Itoa(n)
		if pad != '-' {
			for i := len(s); i < field.width; i++ {
				b = append(b, pad)
			}
		}
		return append(b, s...)
	})
}

// fraction renders the first digits of the nanoseconds, optionally dotted.
func fraction(digits int, dot bool) strftime.Appender {
	return strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		if dot {
			b = append(b, '.')
		}
		ns := appendPadded(nil, int64(t.Nanosecond()), 9)
		return append(b, ns[:digits]...)
	})
}

// appendAutoFraction writes nothing for whole seconds, else the shortest of
// 3, 6 or 9 digits that is exact.
func appendAutoFraction(b []byte, t time.Time) []byte {
	ns := t.Nanosecond()
	switch {
	case ns == 0:
		return b
	case ns%1_000_000 == 0:
		return fraction(3, true).Append(b, t)
	case ns%1_000 == 0:
		return fraction(6, true).Append(b, t)
	default:
		return fraction(9, true).Append(b, t)
	}
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func isoShortYear(t time.Time) int {
	year, _ := t.ISOWeek()
	return mod(year, 100)
}

func isoWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func sundayWeek(t time.Time) int {
	return (t.YearDay() - 1 + 7 - int(t.Weekday())) / 7
}

func mondayWeek(t time.Time) int {
	return (t.YearDay() - 1 + 7 - (int(t.Weekday())+6)%7) / 7
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
