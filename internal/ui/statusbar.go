package ui

import (
	"github.com/rivo/tview"
)

// StatusBar is the bottom row of the clock view: a notice from the repeat
// loop followed by the key hints.
type StatusBar struct {
	*tview.TextView
	hints  string
	notice string
}

// NewStatusBar creates a status bar showing hints.
func NewStatusBar(hints string) *StatusBar {
	bar := &StatusBar{
		TextView: tview.NewTextView(),
		hints:    hints,
	}

	bar.SetTextColor(Theme.TextDim).
		SetTextAlign(tview.AlignCenter).
		SetBackgroundColor(Theme.Background)
	bar.refresh()

	return bar
}

// SetNotice shows msg ahead of the hints. An empty msg clears it.
func (s *StatusBar) SetNotice(msg string) {
	s.notice = msg
	s.refresh()
}

func (s *StatusBar) refresh() {
	text := s.hints
	if s.notice != "" {
		text = s.notice + NoticeSeparator + s.hints
	}
	s.SetText(" " + text + " ")
}

// newHeader is the title row.
func newHeader(title string) *tview.TextView {
	h := tview.NewTextView()
	h.SetText(" " + title + " ").
		SetTextColor(Theme.Text).
		SetTextAlign(tview.AlignLeft).
		SetBackgroundColor(Theme.Primary)
	return h
}
