package dtgerr

// InvalidTimestamp creates an error for an argument that is not a valid timestamp.
func InvalidTimestamp(raw string) *Error {
	return Newf(ErrInvalidTimestamp, "invalid timestamp: `%s`", raw).With("argument", raw)
}

// InvalidTimezone creates an error for a zone name that cannot be loaded.
// known is used for a "did you mean" suggestion and may be nil.
func InvalidTimezone(raw string, known []string) *Error {
	return Newf(ErrInvalidTimezone, "invalid timezone: `%s`", raw).
		WithHelp(SuggestSimilar(raw, known))
}

// LocalZoneUnavailable creates an error for a failed host local zone lookup.
func LocalZoneUnavailable(cause error) *Error {
	return Wrap(ErrLocalZoneUnavailable, cause, "failed to get local timezone").
		WithNote("checked TZ, /etc/localtime and /etc/timezone").
		WithHelp("set the TZ environment variable, e.g. TZ=America/New_York")
}

// ZeroZonesFound creates an error for a zone search without results.
func ZeroZonesFound(term string) *Error {
	return Newf(ErrZeroZonesFound, "zero timezones found matching `%s`", term).With("search", term)
}

// InvalidFormat creates an error for an unknown named format or an invalid pattern.
// known is used for a "did you mean" suggestion and may be nil.
func InvalidFormat(raw string, cause error, known []string) *Error {
	return Wrapf(ErrInvalidFormat, cause, "invalid format: `%s`", raw).
		WithHelp(SuggestSimilar(raw, known))
}
