// Package main provides the dtg command, a date/time conversion utility.
//
// Usage:
//
//	dtg                          # now, RFC 3339 in UTC
//	dtg 1606314757.191168200     # a Unix timestamp
//	dtg -X XeAOEWb               # an "x" timestamp
//	dtg -z EST5EDT,UTC -n x      # named formats in several zones
//	dtg -f '%A' -l               # custom pattern in the local zone
//	dtg -Z new_                  # search timezones
//	dtg -c 1 -n bcd              # full-screen Braille clock
package main

import (
	"os"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
