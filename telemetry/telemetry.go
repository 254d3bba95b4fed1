// Package telemetry records how long the stages of a run take.
//
// A Collector travels in a context.Context so that the loader, the parser and
// the ledger engine can be timed without changing what they return:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	root := collector.Start("summary ledger.txt")
//	ctx = telemetry.WithRootTimer(ctx, root)
//
//	timer := telemetry.StartTimer(ctx, "parser.parse")
//	// ... work ...
//	timer.End()
//
//	root.End()
//	collector.Report(os.Stderr, output.NewStyles(os.Stderr))
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/networth/output"
)

type contextKey int

const (
	collectorKey contextKey = iota
	rootTimerKey
)

// Collector hands out timers and reports what they measured.
type Collector interface {
	// Start begins timing an operation. End the returned timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings to w. styles may be nil.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single operation.
type Timer interface {
	// End stops the timer.
	End()

	// Child creates a timer nested under this one.
	Child(name string) Timer
}

// WithCollector adds a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the collector of ctx, or a no-op collector.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// WithRootTimer makes timers started through StartTimer children of timer.
func WithRootTimer(ctx context.Context, timer Timer) context.Context {
	return context.WithValue(ctx, rootTimerKey, timer)
}

// StartTimer starts a timer nested under the root timer of ctx, or a
// top-level timer on the collector of ctx when there is no root timer.
func StartTimer(ctx context.Context, name string) Timer {
	if root, ok := ctx.Value(rootTimerKey).(Timer); ok {
		return root.Child(name)
	}
	return FromContext(ctx).Start(name)
}
