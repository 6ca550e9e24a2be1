package tz

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/hlop3z/dtg/internal/dtgerr"
	"github.com/hlop3z/dtg/internal/testutil"
)

// fakeHost builds a Host from fixed values. A nil env means TZ is unset.
func fakeHost(env map[string]string, link string, timezone string) Host {
	return Host{
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		Readlink: func(string) (string, error) {
			if link == "" {
				return "", fs.ErrNotExist
			}
			return link, nil
		},
		ReadFile: func(string) ([]byte, error) {
			if timezone == "" {
				return nil, fs.ErrNotExist
			}
			return []byte(timezone), nil
		},
	}
}

func noKnownZones() []string { return nil }

// -----------------------------------------------------------------------------
// Resolve Tests
// -----------------------------------------------------------------------------

func TestResolve(t *testing.T) {
	r := NewResolver(WithHost(fakeHost(nil, "", "")), WithKnownZones(noKnownZones))

	tests := []struct {
		name     string
		input    string
		wantName string
		wantCode dtgerr.Code
	}{
		{"utc", "UTC", "UTC", ""},
		{"posix style", "EST5EDT", "EST5EDT", ""},
		{"iana", "America/New_York", "America/New_York", ""},
		{"unknown", "blah", "", dtgerr.ErrInvalidTimezone},
		{"empty", "", "", dtgerr.ErrInvalidTimezone},
		{"go local meta-name", "Local", "", dtgerr.ErrInvalidTimezone},
		{"local without host zone", "local", "", dtgerr.ErrLocalZoneUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := r.Resolve(tt.input)
			if tt.wantCode != "" {
				testutil.AssertError(t, err, tt.wantCode)
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.input, err)
			}
			if loc.String() != tt.wantName {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, loc.String(), tt.wantName)
			}
		})
	}
}

func TestResolve_Local(t *testing.T) {
	r := NewResolver(WithHost(fakeHost(map[string]string{"TZ": "Asia/Tokyo"}, "", "")))

	loc, err := r.Resolve(Local)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.String() != "Asia/Tokyo" {
		t.Errorf("local = %q, want Asia/Tokyo", loc.String())
	}
}

func TestResolve_LocalNamedLocal(t *testing.T) {
	r := NewResolver(
		WithHost(fakeHost(map[string]string{"TZ": "local"}, "", "")),
		WithKnownZones(noKnownZones),
	)

	_, err := r.Resolve(Local)
	testutil.AssertError(t, err, dtgerr.ErrInvalidTimezone)
}

func TestResolve_Suggestion(t *testing.T) {
	r := NewResolver(WithKnownZones(func() []string {
		return []string{"America/New_York", "Europe/Paris"}
	}))

	_, err := r.Resolve("Europe/Pari")

	var dErr *dtgerr.Error
	if !errors.As(err, &dErr) {
		t.Fatalf("expected *dtgerr.Error, got %T", err)
	}
	helps := dErr.Helps()
	if len(helps) != 1 || helps[0] != "did you mean 'Europe/Paris'?" {
		t.Errorf("helps = %v", helps)
	}
}

func TestEqual(t *testing.T) {
	r := NewResolver()
	ny1, _ := r.Resolve("America/New_York")
	ny2, _ := r.Resolve("America/New_York")
	utc, _ := r.Resolve("UTC")

	if !Equal(ny1, ny2) {
		t.Error("same zone name should be equal")
	}
	if Equal(ny1, utc) {
		t.Error("different zones should not be equal")
	}
	if !Equal(nil, utc) {
		t.Error("nil should equal UTC")
	}
}

// -----------------------------------------------------------------------------
// LocalName Tests
// -----------------------------------------------------------------------------

func TestLocalName(t *testing.T) {
	tests := []struct {
		name     string
		host     Host
		want     string
		wantFail bool
	}{
		{
			name: "TZ name",
			host: fakeHost(map[string]string{"TZ": "America/New_York"}, "/usr/share/zoneinfo/UTC", ""),
			want: "America/New_York",
		},
		{
			name: "TZ with colon",
			host: fakeHost(map[string]string{"TZ": ":Europe/Paris"}, "", ""),
			want: "Europe/Paris",
		},
		{
			name: "TZ set but empty",
			host: fakeHost(map[string]string{"TZ": ""}, "/usr/share/zoneinfo/Asia/Tokyo", ""),
			want: "UTC",
		},
		{
			name: "TZ absolute path",
			host: fakeHost(map[string]string{"TZ": "/usr/share/zoneinfo/Asia/Tokyo"}, "", ""),
			want: "Asia/Tokyo",
		},
		{
			name:     "TZ absolute path outside zoneinfo",
			host:     fakeHost(map[string]string{"TZ": "/tmp/zone"}, "", ""),
			wantFail: true,
		},
		{
			name: "localtime symlink",
			host: fakeHost(nil, "/usr/share/zoneinfo/Europe/Berlin", "Etc/UTC\n"),
			want: "Europe/Berlin",
		},
		{
			name: "relative posix symlink",
			host: fakeHost(nil, "../usr/share/zoneinfo/posix/Europe/Berlin", ""),
			want: "Europe/Berlin",
		},
		{
			name: "symlink outside zoneinfo falls through",
			host: fakeHost(nil, "/opt/zone", "Etc/UTC\n"),
			want: "Etc/UTC",
		},
		{
			name: "etc timezone",
			host: fakeHost(nil, "", "  Australia/Sydney \nignored\n"),
			want: "Australia/Sydney",
		},
		{
			name:     "nothing configured",
			host:     fakeHost(nil, "", ""),
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewResolver(WithHost(tt.host)).LocalName()
			if tt.wantFail {
				testutil.AssertError(t, err, dtgerr.ErrLocalZoneUnavailable)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LocalName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestZoneFromPath(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/usr/share/zoneinfo/America/New_York", "America/New_York", true},
		{"/var/db/timezone/zoneinfo/Europe/Paris", "Europe/Paris", true},
		{"/usr/share/zoneinfo/right/UTC", "UTC", true},
		{"/usr/share/zoneinfo/", "", false},
		{"/etc/zone", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := zoneFromPath(tt.path)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("zoneFromPath(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

