// Package ledger replays parsed transactions into balances and a monthly
// history.
//
// The engine never rejects a transaction: the parser already dropped every
// malformed line. Arithmetic is plain float64, so ratios a caller computes
// from the results may be infinite or NaN.
//
// Example usage:
//
//	pctx := parser.NewContext()
//	txns := parser.ParseString(ctx, pctx, source)
//
//	state := ledger.NewState(pctx.Names.Len())
//	history := ledger.Spending(ctx, txns, state)
//
//	last12 := history.Trailing(12)
//	fmt.Println(last12.Spending, state.Balance(checking))
package ledger

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/networth/ast"
	"github.com/robinvdvleuten/networth/telemetry"
)

// Range restricts a replay to the half-open interval [From, To). A zero
// bound leaves that side open.
type Range struct {
	From ast.Date
	To   ast.Date
}

// Contains reports whether d falls within r.
func (r Range) Contains(d ast.Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !d.Before(r.To) {
		return false
	}
	return true
}

// Update replays txns in order against state, skipping transactions dated
// outside of r. Pass Range{} to replay everything.
func Update(ctx context.Context, txns ast.Transactions, state *State, r Range) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("ledger.update (%d transactions)", len(txns)))
	defer timer.End()

	for _, txn := range txns {
		if !r.Contains(txn.Date) {
			continue
		}
		state.apply(txn)
	}
}

// Spending replays every transaction like Update and additionally builds
// the monthly History of spending and receiving.
func Spending(ctx context.Context, txns ast.Transactions, state *State) *History {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("ledger.spending (%d transactions)", len(txns)))
	defer timer.End()

	b := &historyBuilder{}
	for _, txn := range txns {
		state.apply(txn)
		b.add(txn)
	}
	return b.seal()
}

// MonthEnds replays txns once against state and calls fn with the state as
// it stands at the end of every frame of history, oldest first. Each
// transaction is applied within the frame that covers its date: undated ones
// and those dated before the first frame go into the first frame. File order
// is kept within a frame. fn must not keep state beyond the call.
func MonthEnds(ctx context.Context, txns ast.Transactions, state *State, history *History, fn func(Frame, *State)) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("ledger.month_ends (%d months)", history.Len()))
	defer timer.End()

	frames := history.frames
	if len(frames) == 0 {
		return
	}

	buckets := make([]ast.Transactions, len(frames))
	for _, txn := range txns {
		i := 0
		if !txn.Date.IsZero() && !frames[0].Month.IsZero() {
			i, _ = slices.BinarySearchFunc(frames, txn.Date, func(f Frame, d ast.Date) int {
				if f.Month.NextMonth().After(d) {
					return 1
				}
				return -1
			})
			if i == len(frames) {
				i = len(frames) - 1
			}
		}
		buckets[i] = append(buckets[i], txn)
	}

	for i, f := range frames {
		for _, txn := range buckets[i] {
			state.apply(txn)
		}
		fn(f, state)
	}
}
