// Package cli provides Cargo/rustc-style terminal output for dtg.
// It detects whether colors are appropriate and renders coded errors.
package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// OutputMode determines how output is formatted.
type OutputMode int

const (
	// ModeTTY enables colored output for interactive terminals.
	ModeTTY OutputMode = iota
	// ModePlain outputs plain text without colors (for pipes/CI).
	ModePlain
)

// Config holds CLI output configuration for one destination.
// Configuration is auto-detected; users don't configure this directly.
type Config struct {
	Mode OutputMode
}

// ConfigFor returns the configuration for output written to w.
// Rules:
//   - If w is a TTY and NO_COLOR is not set -> ModeTTY
//   - If w is not a TTY, NO_COLOR is set or TERM=dumb -> ModePlain
func ConfigFor(w io.Writer) *Config {
	mode := ModePlain
	if f, ok := w.(*os.File); ok && IsTerminal(f) {
		mode = ModeTTY
	}

	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		mode = ModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		mode = ModePlain
	}

	return &Config{Mode: mode}
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTTY returns true if running in interactive terminal mode.
func (c *Config) IsTTY() bool {
	return c.Mode == ModeTTY
}
