package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/robinvdvleuten/networth/ledger"
	"github.com/robinvdvleuten/networth/loader"
	"github.com/robinvdvleuten/networth/output"
	"github.com/robinvdvleuten/networth/telemetry"
)

// session carries the context of one command run and, with --telemetry,
// times it.
type session struct {
	ctx       context.Context
	collector telemetry.Collector
	root      telemetry.Timer
	stderr    io.Writer
	once      sync.Once
}

func newSession(ctx context.Context, globals *Globals, stderr io.Writer, name string) *session {
	s := &session{ctx: ctx, stderr: stderr}
	if globals.Telemetry {
		s.collector = telemetry.NewTimingCollector()
		s.ctx = telemetry.WithCollector(s.ctx, s.collector)

		s.root = s.collector.Start(name)
		s.ctx = telemetry.WithRootTimer(s.ctx, s.root)
	}
	return s
}

// report ends the root timer and prints the timings, once.
func (s *session) report() {
	s.once.Do(func() {
		if s.collector != nil {
			s.root.End()
			_, _ = fmt.Fprintln(s.stderr)
			s.collector.Report(s.stderr, output.NewStyles(s.stderr))
		}
	})
}

// replayed is a loaded ledger replayed to its final state.
type replayed struct {
	journal *loader.Journal
	state   *ledger.State
	history *ledger.History
}

// files lists the ledger files read, root first.
func (r *replayed) files() []string {
	return append([]string{r.journal.Root}, r.journal.Includes...)
}

// load reads file, following includes, and replays it.
func (s *session) load(file *FileOrStdin) (*replayed, error) {
	ldr := loader.New(loader.WithFollowIncludes())
	journal, err := file.LoadJournal(s.ctx, ldr)
	if err != nil {
		return nil, err
	}

	state := ledger.NewState(journal.Names.Len())
	history := ledger.Spending(s.ctx, journal.Transactions, state)

	return &replayed{journal: journal, state: state, history: history}, nil
}
