package ui

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ClockView shows the latest rendering of the repeat loop full screen.
type ClockView struct {
	app    *tview.Application
	header *tview.TextView
	body   *tview.TextView
	status *StatusBar
	layout *tview.Flex
}

// NewClockView builds the view. Nothing is drawn until Run.
func NewClockView(title string) *ClockView {
	v := &ClockView{
		app:    tview.NewApplication(),
		header: newHeader(title),
		body:   tview.NewTextView(),
		status: NewStatusBar(HintsClock),
	}

	v.body.SetTextAlign(tview.AlignCenter).
		SetTextColor(Theme.Text).
		SetBackgroundColor(Theme.Background)

	v.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.header, Layout.HeaderHeight, 0, false).
		AddItem(v.body, 0, 1, true).
		AddItem(v.status, Layout.StatusBarHeight, 0, false)
	v.layout.SetBackgroundColor(Theme.Background)

	return v
}

// Update replaces the displayed lines. Safe to call from any goroutine.
func (v *ClockView) Update(lines []string) {
	text := strings.Join(lines, "\n")
	v.app.QueueUpdateDraw(func() {
		v.body.SetText(text)
	})
}

// SetNotice shows msg in the status bar. Safe to call from any goroutine.
func (v *ClockView) SetNotice(msg string) {
	v.app.QueueUpdateDraw(func() {
		v.status.SetNotice(msg)
	})
}

// Run takes over the terminal until ctx is done or the user quits.
// Quitting calls stop so the producer of updates ends too.
func (v *ClockView) Run(ctx context.Context, stop context.CancelFunc) error {
	if ctx.Err() != nil {
		return nil
	}

	v.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		return v.handleKey(event, stop)
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// Queued so the stop lands even if the screen is not up yet.
			v.app.QueueUpdate(v.app.Stop)
		case <-done:
		}
	}()

	return v.app.SetRoot(v.layout, true).Run()
}

func (v *ClockView) handleKey(event *tcell.EventKey, stop context.CancelFunc) *tcell.EventKey {
	if event.Rune() == 'q' || event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
		stop()
		v.app.Stop()
		return nil
	}
	return event
}
