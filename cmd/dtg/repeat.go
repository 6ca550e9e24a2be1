package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/hlop3z/dtg/internal/cli"
	"github.com/hlop3z/dtg/internal/dtgerr"
	"github.com/hlop3z/dtg/internal/log"
	"github.com/hlop3z/dtg/internal/ui"
	"github.com/hlop3z/dtg/internal/watch"
	"github.com/hlop3z/dtg/pkg/dtg"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// repeatInterval validates -i/-c and returns the period.
func (o *options) repeatInterval(flags *pflag.FlagSet) (time.Duration, bool, error) {
	useInterval, useClear := flags.Changed("interval"), flags.Changed("clear")

	if useInterval && useClear {
		return 0, false, dtgerr.New(dtgerr.ErrOptionConflict, "options `-i` and `-c` are mutually exclusive").
			WithHelp("use -c to clear the screen between runs, -i to append")
	}

	var secs float64
	switch {
	case useInterval:
		secs = o.interval
	case useClear:
		secs = o.clear
	default:
		return 0, false, nil
	}

	if secs <= 0 {
		return 0, false, dtgerr.Newf(dtgerr.ErrInvalidOption, "interval must be positive: `%g`", secs)
	}
	return time.Duration(secs * float64(time.Second)), true, nil
}

// repeater runs the combinator on an interval.
type repeater struct {
	runner   *dtg.Runner
	req      dtg.Request
	interval time.Duration
	clear    bool
	stdout   io.Writer

	// reload rebuilds the request after the config file changes.
	reload     func() (dtg.Request, error)
	configPath string
}

func (r *repeater) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changed := r.watchConfig(ctx)

	if r.clear && isTerminalWriter(r.stdout) {
		return r.runView(ctx, cancel, changed)
	}

	return watch.Loop{Interval: r.interval, Clock: clock}.Run(ctx, func(context.Context) error {
		r.maybeReload(changed)
		lines, err := r.runner.Run(r.req)
		if err != nil {
			return err
		}
		if r.clear {
			if _, err := io.WriteString(r.stdout, clearScreen); err != nil {
				return err
			}
		}
		return printLines(r.stdout, lines)
	})
}

// runView drives the full-screen clock. The loop runs in the background and
// the view owns the terminal on the calling goroutine.
func (r *repeater) runView(ctx context.Context, cancel context.CancelFunc, changed <-chan struct{}) error {
	view := ui.NewClockView(fmt.Sprintf("dtg · every %s", r.interval))

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- watch.Loop{Interval: r.interval, Clock: clock}.Run(ctx, func(context.Context) error {
			if notice := r.maybeReload(changed); notice != "" {
				view.SetNotice(notice)
			}
			lines, err := r.runner.Run(r.req)
			if err != nil {
				cancel()
				return err
			}
			view.Update(lines)
			return nil
		})
	}()

	viewErr := view.Run(ctx, cancel)
	cancel()
	if err := <-loopErr; err != nil {
		return err
	}
	return viewErr
}

// watchConfig starts watching the config file. A nil channel means no reloads.
func (r *repeater) watchConfig(ctx context.Context) <-chan struct{} {
	if r.configPath == "" || r.reload == nil {
		return nil
	}
	changed, err := watch.WatchFile(ctx, r.configPath)
	if err != nil {
		log.Module(logModule).WithError(err).Debug("config file not watched")
		return nil
	}
	return changed
}

// maybeReload swaps in a rebuilt request if the config changed. A broken
// config keeps the previous request. The returned notice is empty when
// nothing was reloaded.
func (r *repeater) maybeReload(changed <-chan struct{}) string {
	select {
	case <-changed:
	default:
		return ""
	}

	req, err := r.reload()
	if err != nil {
		code := dtgerr.GetErrorCode(err)
		log.Module(logModule).WithError(err).WithField("code", code).
			Warn("config reload failed, keeping previous settings")
		return fmt.Sprintf("config reload failed [%s]", code)
	}
	r.req = req
	log.Module(logModule).WithField("config", r.configPath).Info("config reloaded")
	return "config reloaded"
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && cli.IsTerminal(f)
}
