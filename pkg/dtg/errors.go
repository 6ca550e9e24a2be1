package dtg

import "github.com/hlop3z/dtg/internal/dtgerr"

// Sentinel errors. Errors returned by this package match them with errors.Is
// by error code.
var (
	// ErrInvalidTimestamp is returned for malformed or out-of-range timestamps.
	ErrInvalidTimestamp error = dtgerr.New(dtgerr.ErrInvalidTimestamp, "dtg: invalid timestamp")

	// ErrInvalidTimezone is returned when a zone name cannot be loaded.
	ErrInvalidTimezone error = dtgerr.New(dtgerr.ErrInvalidTimezone, "dtg: invalid timezone")

	// ErrLocalZoneUnavailable is returned when the host zone cannot be determined.
	ErrLocalZoneUnavailable error = dtgerr.New(dtgerr.ErrLocalZoneUnavailable, "dtg: local timezone unavailable")

	// ErrZeroZonesFound is returned by ListZones when nothing matches.
	ErrZeroZonesFound error = dtgerr.New(dtgerr.ErrZeroZonesFound, "dtg: zero timezones found")

	// ErrZoneDatabase is returned when no zoneinfo database exists on the host.
	ErrZoneDatabase error = dtgerr.New(dtgerr.ErrZoneDatabase, "dtg: timezone database unavailable")

	// ErrInvalidFormat is returned for unknown named formats and bad patterns.
	ErrInvalidFormat error = dtgerr.New(dtgerr.ErrInvalidFormat, "dtg: invalid format")
)
