package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/networth/config"
	"github.com/robinvdvleuten/networth/report"
)

type SummaryCmd struct {
	File            FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Redact          bool        `help:"Redact absolute valuations." short:"r"`
	SummaryAccounts []string    `help:"Accounts to list, in this order." sep:","`
	Rounding        string      `help:"Rounding of values: none, whole or cents."`
	Watch           bool        `help:"Print the summary again whenever the ledger changes." short:"w"`
}

func (cmd *SummaryCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	cfg, err := globals.LoadConfig()
	if err != nil {
		return err
	}
	opts, err := cmd.options(cfg)
	if err != nil {
		return err
	}

	if !cmd.Watch {
		_, err := cmd.run(context.Background(), ctx.Stdout, ctx.Stderr, globals, opts)
		return err
	}

	if cmd.File.IsStdin() {
		return errors.New("--watch needs a ledger file, not stdin")
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	first := true
	return watchFiles(runCtx, ctx.Stderr, func() ([]string, error) {
		if !first {
			_, _ = fmt.Fprintln(ctx.Stdout)
			printInfof(ctx.Stdout, "%s changed", pathStyle.Render(cmd.File.Filename))
		}
		first = false

		files, err := cmd.run(runCtx, ctx.Stdout, ctx.Stderr, globals, opts)
		if err != nil {
			return []string{cmd.File.GetAbsoluteFilename()}, err
		}
		return files, nil
	})
}

// options applies the flags on top of cfg.
func (cmd *SummaryCmd) options(cfg *config.Config) (report.Options, error) {
	if cmd.Redact {
		cfg.Redact = true
	}
	if len(cmd.SummaryAccounts) > 0 {
		cfg.SummaryAccounts = cmd.SummaryAccounts
	}
	if cmd.Rounding != "" {
		cfg.Rounding = cmd.Rounding
	}
	if err := cfg.Validate(); err != nil {
		return report.Options{}, fmt.Errorf("invalid options: %w", err)
	}

	return report.Options{
		Accounts:      cfg.SummaryAccounts,
		Redact:        cfg.Redact,
		RedactMap:     cfg.RedactMap,
		Rounding:      cfg.Rounding,
		MinAssetWorth: cfg.MinAssetWorth,
	}, nil
}

// run reports the ledger once and returns the files it was read from.
func (cmd *SummaryCmd) run(ctx context.Context, stdout, stderr io.Writer, globals *Globals, opts report.Options) ([]string, error) {
	s := newSession(ctx, globals, stderr, fmt.Sprintf("summary %s", filepath.Base(cmd.File.Filename)))
	defer s.report()

	r, err := s.load(&cmd.File)
	if err != nil {
		return nil, err
	}

	summary := report.Compute(r.journal.Names, r.state, r.history, opts)
	if err := report.Render(stdout, summary); err != nil {
		return nil, err
	}
	return r.files(), nil
}
