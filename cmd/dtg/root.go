package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/hlop3z/dtg/internal/cli"
	"github.com/hlop3z/dtg/internal/log"
	"github.com/hlop3z/dtg/pkg/dtg"
)

const logModule = "cli"

// clock supplies "now" and drives repeat modes.
var clock clockwork.Clock = clockwork.NewRealClock()

// options holds the parsed command-line flags.
type options struct {
	local     bool
	aFormat   bool
	xFormat   bool
	fromX     bool
	listZones bool
	readme    bool

	formats   []string
	named     []string
	zone      string
	separator string

	interval float64
	clear    float64

	configFile string
	verbose    int
}

const longHelp = `Convert timestamps between Unix seconds, the compact base-60 "x" encoding
and human-readable formats, in any timezone.

ARG is a timestamp ("%s.%f", or an "x" timestamp with -X) and defaults to now.
With -Z, ARG is a timezone search term.

Named formats (-n): a/all, bcd, cd/compact-date, cdt/compact-date-time,
ct/compact-time, d/default, i/r/rfc/rfc-3339, x.

Each timestamp prints one line: every format in every zone, formats outermost,
joined by the separator. See -r for details.`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:           "dtg [flags] [ARG...]",
		Short:         "Date/time conversion utility",
		Long:          longHelp,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.execute(cmd, args, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("dtg {{.Version}}\n")

	f := cmd.Flags()
	f.SortFlags = false
	f.BoolVarP(&o.local, "local", "l", false, "Use the local timezone")
	f.BoolVarP(&o.aFormat, "a-format", "a", false, `Add the "a" format`)
	f.BoolVarP(&o.xFormat, "x-format", "x", false, `Add the "x" format`)
	f.BoolVarP(&o.fromX, "from-x", "X", false, `Read timestamp arguments in "x" format`)
	f.BoolVarP(&o.listZones, "list-zones", "Z", false, "Search/list timezones")
	f.StringArrayVarP(&o.formats, "format", "f", nil, "Custom strftime format (repeatable)")
	f.StringArrayVarP(&o.named, "named", "n", nil, "Named format (repeatable)")
	f.StringVarP(&o.zone, "zone", "z", "", "Comma-separated timezones [default: UTC]")
	f.StringVarP(&o.separator, "separator", "s", `\n`, `Separator; \n and \t are expanded`)
	f.Float64VarP(&o.interval, "interval", "i", 0, "Run every N seconds")
	f.Float64VarP(&o.clear, "clear", "c", 0, "Clear the screen and run every N seconds")
	f.BoolVarP(&o.readme, "readme", "r", false, "Print the readme")
	f.StringVar(&o.configFile, "config", "", "Config file [default: $DTG_CONFIG or <user config dir>/dtg/dtg.yaml]")
	f.CountVarP(&o.verbose, "verbose", "v", "Log verbosity (-v info, -vv debug)")
	f.BoolP("version", "V", false, "Print the version")

	return cmd
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return exitCode(err)
	}
	return 0
}

func (o *options) execute(cmd *cobra.Command, args []string, stdout io.Writer) (err error) {
	if o.readme {
		return printReadme(stdout)
	}

	path, explicit := configPath(o.configFile)
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}

	closer, err := log.Setup(log.Options{
		Verbosity: o.verbose,
		Output:    cmd.ErrOrStderr(),
		Color:     cli.ConfigFor(cmd.ErrOrStderr()).IsTTY(),
		File:      cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer closer.Close()
	defer func() { logStack(err) }()

	log.Module(logModule).WithField("config", path).Debug("configuration loaded")

	if o.listZones {
		return listZones(args, stdout)
	}

	s := o.settings(cmd.Flags(), cfg)
	req, err := buildRequest(s, args, dtg.Zone)
	if err != nil {
		return err
	}

	interval, repeating, err := o.repeatInterval(cmd.Flags())
	if err != nil {
		return err
	}
	runner := dtg.NewRunner(dtg.WithClock(clock))

	if !repeating {
		lines, err := runner.Run(req)
		if err != nil {
			return err
		}
		return printLines(stdout, lines)
	}

	// Fail before the first tick, and before the clock view takes the screen.
	for _, arg := range args {
		if _, err := dtg.ParseAny(arg, req.FromX); err != nil {
			return err
		}
	}

	r := &repeater{
		runner:   runner,
		req:      req,
		interval: interval,
		clear:    cmd.Flags().Changed("clear"),
		stdout:   stdout,
		reload: func() (dtg.Request, error) {
			cfg, err := loadConfig(path, explicit)
			if err != nil {
				return dtg.Request{}, err
			}
			return buildRequest(o.settings(cmd.Flags(), cfg), args, dtg.Zone)
		},
		configPath: path,
	}
	return r.run(cmd.Context())
}

func listZones(args []string, stdout io.Writer) error {
	term := ""
	if len(args) > 0 {
		term = args[0]
	}
	zones, err := dtg.ListZones(term)
	if err != nil {
		return err
	}
	return printLines(stdout, zones)
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
