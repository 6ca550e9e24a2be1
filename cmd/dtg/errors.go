package main

import (
	"errors"
	"io"

	"github.com/hlop3z/dtg/internal/cli"
	"github.com/hlop3z/dtg/internal/dtgerr"
	"github.com/hlop3z/dtg/internal/log"
)

// exitCodes maps error codes to process exit statuses. Unlisted codes exit 1.
var exitCodes = map[dtgerr.Code]int{
	dtgerr.ErrZeroZonesFound:       1,
	dtgerr.ErrZoneDatabase:         1,
	dtgerr.ErrInvalidTimestamp:     2,
	dtgerr.ErrInvalidTimezone:      3,
	dtgerr.ErrInvalidFormat:        4,
	dtgerr.ErrLocalZoneUnavailable: 5,
	dtgerr.ErrOptionConflict:       6,
	dtgerr.ErrInvalidOption:        6,
	dtgerr.ErrConfigInvalid:        7,
}

// exitCode returns the process exit status for err.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := exitCodes[dtgerr.GetErrorCode(err)]; ok {
		return code
	}
	return 1
}

// printError writes err to w in Cargo style.
func printError(w io.Writer, err error) {
	_ = cli.WriteError(w, err)
}

// logStack records where a coded error was raised. Visible with -vv.
func logStack(err error) {
	var dErr *dtgerr.Error
	if !errors.As(err, &dErr) {
		return
	}
	log.Module(logModule).
		WithField("code", dErr.GetCode()).
		WithField("stack", dErr.GetStack()).
		Debug("error raised")
}
