package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/networth/config"
	"github.com/robinvdvleuten/networth/graph"
	"github.com/robinvdvleuten/networth/report"
)

type GraphCmd struct {
	File           FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Browser        string      `help:"Browser to show the graph in." short:"b"`
	GraphAccounts  []string    `help:"Accounts and assets to chart." sep:","`
	Palette        string      `help:"File to read colours from." short:"p" type:"path"`
	Colours        []int       `help:"Palette lines to read colours from (bg, fg, series...)." short:"c" sep:","`
	DateYearDigits int         `help:"How many digits of the year to label months with (0-4, -1 uses the configuration)." default:"-1"`
	DateMonthDigit bool        `help:"Label months with a digit instead of a three letter name."`
	Redact         bool        `help:"Redact absolute valuations." short:"r"`
	Flows          bool        `help:"Also chart monthly spending and receiving."`
	Output         string      `help:"Write the chart to this file instead of a temporary one." short:"o" type:"path"`
	NoOpen         bool        `help:"Do not open the chart in the browser."`
}

func (cmd *GraphCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	cfg, err := globals.LoadConfig()
	if err != nil {
		return err
	}
	if err := cmd.apply(cfg); err != nil {
		return err
	}

	s := newSession(context.Background(), globals, ctx.Stderr, fmt.Sprintf("graph %s", filepath.Base(cmd.File.Filename)))
	defer s.report()

	r, err := s.load(&cmd.File)
	if err != nil {
		return err
	}

	series, err := graph.Build(s.ctx, r.journal.Names, r.journal.Transactions, r.history, cfg.GraphAccounts)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	opts := graph.DefaultOptions()
	opts.Title = filepath.Base(cmd.File.Filename)
	opts.YearDigits = cfg.DateYearDigits
	opts.MonthDigit = cfg.DateMonthDigit
	opts.Flows = cmd.Flows
	if cfg.Palette != "" {
		if opts.Palette, err = graph.LoadPalette(cfg.Palette, cfg.Colours); err != nil {
			return err
		}
	}
	if cfg.Redact {
		opts.Divisor = report.Compute(r.journal.Names, r.state, r.history, report.Options{}).RedactFactor
	}

	path, err := cmd.write(series, opts)
	if err != nil {
		return err
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote chart to %s", pathStyle.Render(path)))

	if cmd.NoOpen {
		return nil
	}
	if err := graph.Open(cfg.Browser, path); err != nil {
		return err
	}
	printInfof(ctx.Stdout, "Opened chart in %s", browserName(cfg.Browser))
	return nil
}

// apply sets the flags on top of cfg.
func (cmd *GraphCmd) apply(cfg *config.Config) error {
	if cmd.Browser != "" {
		cfg.Browser = cmd.Browser
	}
	if len(cmd.GraphAccounts) > 0 {
		cfg.GraphAccounts = cmd.GraphAccounts
	}
	if cmd.Palette != "" {
		cfg.Palette = cmd.Palette
	}
	if len(cmd.Colours) > 0 {
		cfg.Colours = cmd.Colours
	}
	if cmd.DateYearDigits >= 0 {
		cfg.DateYearDigits = cmd.DateYearDigits
	}
	if cmd.DateMonthDigit {
		cfg.DateMonthDigit = true
	}
	if cmd.Redact {
		cfg.Redact = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func (cmd *GraphCmd) write(series *graph.Series, opts graph.Options) (string, error) {
	var f *os.File
	var err error
	if cmd.Output != "" {
		f, err = os.Create(cmd.Output)
	} else {
		f, err = os.CreateTemp("", "networth-*.html")
	}
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(f, series, opts); err != nil {
		return "", err
	}
	return f.Name(), f.Close()
}

func browserName(browser string) string {
	if browser == "" {
		return "the default browser"
	}
	return browser
}
