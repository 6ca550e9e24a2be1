// Package ui provides the full-screen terminal view used when dtg clears and
// repeats its output.
package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Theme defines the color scheme for the view.
var Theme = struct {
	Primary tcell.Color

	Text    tcell.Color
	TextDim tcell.Color

	Background tcell.Color
}{
	Primary: tcell.ColorBlue,

	Text:    tcell.ColorWhite,
	TextDim: tcell.ColorGray,

	Background: tcell.ColorBlack,
}

// Layout holds fixed row heights.
var Layout = struct {
	HeaderHeight    int
	StatusBarHeight int
}{
	HeaderHeight:    1,
	StatusBarHeight: 1,
}

// HintsClock is the status bar text of the clock view.
const HintsClock = "q quit  esc quit"

// NoticeSeparator sits between a status notice and the hints.
const NoticeSeparator = "  ·  "
