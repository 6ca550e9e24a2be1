package tz

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hlop3z/dtg/internal/dtgerr"
)

const (
	localtimePath = "/etc/localtime"
	timezonePath  = "/etc/timezone"
)

// Host is the part of the operating system consulted for the local zone.
type Host struct {
	LookupEnv func(key string) (string, bool)
	Readlink  func(name string) (string, error)
	ReadFile  func(name string) ([]byte, error)
}

// OSHost returns a Host backed by the os package.
func OSHost() Host {
	return Host{
		LookupEnv: os.LookupEnv,
		Readlink:  os.Readlink,
		ReadFile:  os.ReadFile,
	}
}

// LocalName returns the IANA name of the host zone.
//
// Lookup order: TZ, the /etc/localtime symlink target, /etc/timezone.
func (r *Resolver) LocalName() (string, error) {
	h := r.host

	if h.LookupEnv != nil {
		if tz, ok := h.LookupEnv("TZ"); ok {
			tz = strings.TrimPrefix(tz, ":")
			if tz == "" {
				return "UTC", nil
			}
			if !filepath.IsAbs(tz) {
				return tz, nil
			}
			if name, ok := zoneFromPath(tz); ok {
				return name, nil
			}
			return "", dtgerr.LocalZoneUnavailable(fmt.Errorf("TZ=%s is not inside a zoneinfo directory", tz))
		}
	}

	if h.Readlink != nil {
		if target, err := h.Readlink(localtimePath); err == nil {
			if name, ok := zoneFromPath(target); ok {
				return name, nil
			}
		}
	}

	if h.ReadFile != nil {
		if data, err := h.ReadFile(timezonePath); err == nil {
			line, _, _ := strings.Cut(string(data), "\n")
			if name := strings.TrimSpace(line); name != "" {
				return name, nil
			}
		}
	}

	return "", dtgerr.LocalZoneUnavailable(errors.New("TZ is unset and neither /etc/localtime nor /etc/timezone names a zone"))
}

// zoneFromPath extracts "Area/City" from a path such as /usr/share/zoneinfo/Area/City.
func zoneFromPath(p string) (string, bool) {
	const marker = "zoneinfo/"
	idx := strings.LastIndex(p, marker)
	if idx < 0 {
		return "", false
	}
	name := p[idx+len(marker):]
	for _, prefix := range []string{"posix/", "right/"} {
		name = strings.TrimPrefix(name, prefix)
	}
	if name == "" {
		return "", false
	}
	return name, true
}
