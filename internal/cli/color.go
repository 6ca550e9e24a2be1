package cli

import "github.com/charmbracelet/lipgloss"

// Color scheme inspired by Cargo/rustc.
// Uses ANSI 256 colors for broad terminal compatibility.
var (
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleNote  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleHelp  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

	// Error code style (e.g., E1001)
	styleCode = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	stylePipe = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	styleHeader = lipgloss.NewStyle().Bold(true)
)

func (c *Config) render(style lipgloss.Style, s string) string {
	if !c.IsTTY() {
		return s
	}
	return style.Render(s)
}

// Error returns text styled as an error label.
func (c *Config) Error(s string) string { return c.render(styleError, s) }

// Note returns text styled as a note label.
func (c *Config) Note(s string) string { return c.render(styleNote, s) }

// Help returns text styled as a help label.
func (c *Config) Help(s string) string { return c.render(styleHelp, s) }

// Code returns text styled as an error code.
func (c *Config) Code(s string) string { return c.render(styleCode, s) }

// Pipe returns a pipe character styled for context display.
func (c *Config) Pipe() string { return c.render(stylePipe, "|") }

// Header returns text styled as a heading.
func (c *Config) Header(s string) string { return c.render(styleHeader, s) }
