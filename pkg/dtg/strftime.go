package dtg

import (
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
)

// specs extends the library's specification set with the tokens the
// formats here rely on.
var specs = newSpecificationSet()

func newSpecificationSet() strftime.SpecificationSet {
	ss := strftime.NewSpecificationSet()
	set := func(c byte, a strftime.Appender) {
		if err := ss.Set(c, a); err != nil {
			panic("dtg: strftime specification " + strconv.Quote(string(c)) + ": " + err.Error())
		}
	}

	set('Y', strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		return appendYear(b, t.Year())
	}))
	set('G', strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		year, _ := t.ISOWeek()
		return appendYear(b, year)
	}))
	set('g', strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		year, _ := t.ISOWeek()
		return appendPadded(b, int64(mod(year, 100)), 2)
	}))
	set('f', strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		return appendPadded(b, int64(t.Nanosecond()), 9)
	}))
	set('s', strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		return strconv.AppendInt(b, t.Unix(), 10)
	}))
	set('P', strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		if t.Hour() < 12 {
			return append(b, "am"...)
		}
		return append(b, "pm"...)
	}))
	set('h', strftime.StdlibFormat("Jan"))
	set('+', strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		b = appendYear(b, t.Year())
		return t.AppendFormat(b, "-01-02T15:04:05.999999999Z07:00")
	}))
	registerExtended(set)

	return ss
}

func compile(pattern string) (*strftime.Strftime, error) {
	rewritten, err := rewrite(pattern)
	if err != nil {
		return nil, err
	}
	return strftime.New(rewritten, strftime.WithSpecificationSet(specs))
}

func mustCompile(pattern string) *strftime.Strftime {
	f, err := compile(pattern)
	if err != nil {
		panic("dtg: invalid built-in pattern " + strconv.Quote(pattern) + ": " + err.Error())
	}
	return f
}

// appendYear writes four zero-padded digits for years 0..9999 and an
// explicitly signed year otherwise (+262143, -0001).
func appendYear(b []byte, year int) []byte {
	switch {
	case year < 0:
		b = append(b, '-')
		return appendPadded(b, int64(-year), 4)
	case year > 9999:
		b = append(b, '+')
		return strconv.AppendInt(b, int64(year), 10)
	default:
		return appendPadded(b, int64(year), 4)
	}
}

func appendPadded(b []byte, n int64, width int) []byte {
	s := strconv.FormatInt(n, 10)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
