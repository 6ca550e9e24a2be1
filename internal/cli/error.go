package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hlop3z/dtg/internal/dtgerr"
)

// WriteError writes err to w, colored only when w is a terminal.
func WriteError(w io.Writer, err error) error {
	_, werr := io.WriteString(w, ConfigFor(w).FormatError(err))
	return werr
}

// FormatError formats an error for CLI display in Cargo/rustc style.
// If the chain holds a *dtgerr.Error, its code, context and suggestions are shown.
// Otherwise, it formats as a generic error.
func (c *Config) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var dErr *dtgerr.Error
	if errors.As(err, &dErr) {
		return c.formatCodedError(dErr)
	}
	return c.formatGenericError(err)
}

// formatCodedError formats a *dtgerr.Error:
//
//	error[E1001]: invalid timestamp: `blah`
//	   |
//	   | argument: blah
//	help: ...
func (c *Config) formatCodedError(err *dtgerr.Error) string {
	var b strings.Builder

	b.WriteString(c.Error("error"))
	b.WriteString("[")
	b.WriteString(c.Code(string(err.GetCode())))
	b.WriteString("]: ")
	b.WriteString(err.GetMessage())
	b.WriteString("\n")

	ctx := err.GetContext()
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		if k == "notes" || k == "helps" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) > 0 {
		b.WriteString("   ")
		b.WriteString(c.Pipe())
		b.WriteString("\n")
		for _, k := range keys {
			b.WriteString("   ")
			b.WriteString(c.Pipe())
			b.WriteString(" ")
			b.WriteString(fmt.Sprintf("%s: %v", k, ctx[k]))
			b.WriteString("\n")
		}
	}

	for _, note := range err.Notes() {
		b.WriteString(c.Note("note"))
		b.WriteString(": ")
		b.WriteString(note)
		b.WriteString("\n")
	}

	if cause := err.GetCause(); cause != nil {
		b.WriteString(c.Note("cause"))
		b.WriteString(": ")
		b.WriteString(cause.Error())
		b.WriteString("\n")
	}

	for _, help := range err.Helps() {
		b.WriteString(c.Help("help"))
		b.WriteString(": ")
		b.WriteString(help)
		b.WriteString("\n")
	}

	return b.String()
}

// formatGenericError formats an error without a code.
func (c *Config) formatGenericError(err error) string {
	var b strings.Builder
	b.WriteString(c.Error("error"))
	b.WriteString(": ")
	b.WriteString(err.Error())
	b.WriteString("\n")
	return b.String()
}

