package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	sample  = "1606314757.191168200"
	rfc3339 = "2020-11-25T14:32:37Z"
	utc     = "Wed 25 Nov 2020 14:32:37 UTC"
	est     = "Wed 25 Nov 2020 09:32:37 EST"
)

// isolate points config lookup at an empty directory and pins TZ.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DTG_CONFIG", "")
	t.Setenv("DTG_ZONE", "")
	os.Unsetenv("DTG_SEPARATOR")
	t.Setenv("TZ", "UTC")
	t.Setenv("NO_COLOR", "1")
}

func runDTG(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func pass(t *testing.T, want string, args ...string) {
	t.Helper()
	stdout, stderr, code := runDTG(t, args...)
	if code != 0 {
		t.Fatalf("dtg %q exited %d\nstderr:\n%s", args, code, stderr)
	}
	if stdout != want+"\n" {
		t.Errorf("dtg %q =\n%s\nwant\n%s", args, stdout, want)
	}
}

// -----------------------------------------------------------------------------
// Conversion Tests
// -----------------------------------------------------------------------------

func TestConversions(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"epoch seconds", []string{"1606314757"}, rfc3339},
		{"subsecond pattern", []string{"-f", "%Y-%m-%dT%H:%M:%S.%fZ", sample}, "2020-11-25T14:32:37.191168200Z"},
		{"zone utc", []string{"-z", "UTC", sample}, utc},
		{"zone est long flag", []string{"--zone", "EST5EDT", sample}, est},
		{"day of week", []string{"-f", "%A", sample}, "Wednesday"},
		{"a format local", []string{"-a", sample}, strings.Join([]string{sample, rfc3339, utc, utc}, "\n")},
		{"a format zone", []string{"-a", "-z", "EST5EDT", sample}, strings.Join([]string{sample, rfc3339, utc, est}, "\n")},
		{"x format", []string{"-x", sample}, "XeAOEWb"},
		{"from x", []string{"-X", "XeAOEWb"}, rfc3339},
		{"max x", []string{"-X", "1Cn3BUNxx"}, "+262143-12-31T23:59:59Z"},
		{"local", []string{"-l", sample}, utc},
		{
			"format-major order",
			[]string{"-n", "bcd", "-n", "ct", "-z", "UTC,EST5EDT", "-s", `\t`, sample},
			"⠄⠄|⣀|⢔|⡐|⡤|⣴\t⠄⠄|⣀|⢔|⢈|⡤|⣴\t143237\t093237",
		},
		{"format flag order", []string{"-x", "-f", "%B", "-n", "cd", "-s", " ", sample}, "November 20201125 XeAOEWb"},
		{"many args", []string{"-s", ",", "0", "86400"}, "1970-01-01T00:00:00Z\n1970-01-02T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pass(t, tt.want, tt.args...)
		})
	}
}

func TestLocalZoneFromTZ(t *testing.T) {
	isolate(t)
	t.Setenv("TZ", "America/New_York")

	pass(t, est, "-l", sample)
}

func TestNow(t *testing.T) {
	isolate(t)
	original := clock
	defer func() { clock = original }()
	clock = clockwork.NewFakeClockAt(time.Date(2020, time.November, 25, 14, 32, 37, 0, time.UTC))

	pass(t, rfc3339)
	pass(t, "XeAOEWb", "-x")
}

// -----------------------------------------------------------------------------
// Error Tests
// -----------------------------------------------------------------------------

func TestErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{"invalid option", []string{"-q"}, 1, "unknown shorthand flag"},
		{"invalid argument", []string{"blah"}, 2, "error[E1001]: invalid timestamp: `blah`"},
		{"fail fast", []string{"0", "blah"}, 2, "invalid timestamp: `blah`"},
		{"overflow", []string{"8210298412800"}, 2, "invalid timestamp"},
		{"invalid x", []string{"-X", "1Cn400000"}, 2, "invalid timestamp"},
		{"empty zone", []string{"-z", ""}, 3, "error[E2001]: invalid timezone: ``"},
		{"unknown zone", []string{"-z", "Z"}, 3, "invalid timezone: `Z`"},
		{"empty format", []string{"-f", ""}, 4, "error[E3001]: invalid format: ``"},
		{"unknown named format", []string{"-n", "compact-dat"}, 4, "did you mean 'compact-date'?"},
		{"interval and clear", []string{"-i", "1", "-c", "1"}, 6, "mutually exclusive"},
		{"zero interval", []string{"-i", "0"}, 6, "interval must be positive"},
		{"explicit config missing", []string{"--config", "/nonexistent/dtg.yaml"}, 7, "error[E4001]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runDTG(t, tt.args...)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d\nstderr:\n%s", code, tt.code, stderr)
			}
			if !strings.Contains(stderr, tt.message) {
				t.Errorf("stderr missing %q\ngot:\n%s", tt.message, stderr)
			}
			if stdout != "" {
				t.Errorf("expected no output, got %q", stdout)
			}
		})
	}
}

func TestLocalZoneUnavailable(t *testing.T) {
	isolate(t)
	t.Setenv("TZ", "/opt/zones/custom")

	_, stderr, code := runDTG(t, "-l", sample)
	if code != 5 {
		t.Errorf("exit code = %d, want 5\nstderr:\n%s", code, stderr)
	}
	for _, want := range []string{
		"failed to get local timezone",
		"note: checked TZ, /etc/localtime and /etc/timezone",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q\ngot:\n%s", want, stderr)
		}
	}
}

func TestErrorStackAtDebug(t *testing.T) {
	isolate(t)

	_, stderr, code := runDTG(t, "blah")
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if strings.Contains(stderr, "error raised") {
		t.Errorf("stack logged without -vv:\n%s", stderr)
	}

	_, stderr, code = runDTG(t, "-vv", "blah")
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	for _, want := range []string{"error raised", "code=E1001", "stack=", "error[E1001]"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q\ngot:\n%s", want, stderr)
		}
	}
}

// -----------------------------------------------------------------------------
// Zone Listing Tests
// -----------------------------------------------------------------------------

func TestListZones(t *testing.T) {
	isolate(t)

	stdout, stderr, code := runDTG(t, "-Z", "new_")
	if code != 0 {
		if strings.Contains(stderr, "E2004") {
			t.Skip("no zoneinfo database on this host")
		}
		t.Fatalf("exit code = %d\nstderr:\n%s", code, stderr)
	}
	for _, want := range []string{"America/New_York\n", "America/North_Dakota/New_Salem\n"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	_, stderr, code = runDTG(t, "-Z", "blah")
	if code != 1 || !strings.Contains(stderr, "zero timezones found matching `blah`") {
		t.Errorf("search blah: exit %d, stderr %q", code, stderr)
	}
}

// -----------------------------------------------------------------------------
// Misc Flags
// -----------------------------------------------------------------------------

func TestVersion(t *testing.T) {
	isolate(t)
	pass(t, "dtg dev", "-V")
}

func TestReadme(t *testing.T) {
	isolate(t)

	stdout, _, code := runDTG(t, "-r")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if stdout != usage {
		t.Error("readme output differs from the embedded guide")
	}
}

func TestConfigFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "dtg.yaml")
	data := "formats: ['%A']\nnamed: [x]\nzones: [UTC]\nseparator: ' | '\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DTG_CONFIG", path)

	pass(t, "Wednesday | XeAOEWb", sample)
	pass(t, "November", "-f", "%B", sample)
	pass(t, "Wednesday\nXeAOEWb", "-s", `\n`, sample)
}

func TestConfigFile_Invalid(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "dtg.yaml")
	if err := os.WriteFile(path, []byte("zonez: [UTC]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, stderr, code := runDTG(t, "--config", path, sample)
	if code != 7 {
		t.Errorf("exit code = %d, want 7\nstderr:\n%s", code, stderr)
	}
	if !strings.Contains(stderr, "failed to parse config file") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("DTG_ZONE", "EST5EDT,UTC")
	t.Setenv("DTG_SEPARATOR", `\t`)

	pass(t, est+"\t"+utc, sample)
	pass(t, utc, "-z", "UTC", sample)
}
