// Package graph charts monthly balances of a ledger as an SVG line chart
// wrapped in an HTML page.
package graph

import (
	"context"
	"fmt"

	"github.com/robinvdvleuten/networth/ast"
	"github.com/robinvdvleuten/networth/ledger"
	"github.com/robinvdvleuten/networth/parser"
	"github.com/robinvdvleuten/networth/report"
	"github.com/robinvdvleuten/networth/telemetry"
)

// DefaultAccounts is charted when no accounts are selected.
var DefaultAccounts = []string{"Net"}

// Line is the month end value of one name.
type Line struct {
	Name   string
	Values []float64
}

// Series holds one value per history frame for every charted line.
type Series struct {
	Months []ast.Date
	Lines  []Line
	// Spending and Receiving are the monthly flows of the frames.
	Spending  []float64
	Receiving []float64
}

// Build snapshots the selected names at the end of every month of history.
//
// Aggregate built-ins such as Net chart their derived value. Any other name
// charts its balance plus the worth of its holdings, so the same chart can
// show accounts and assets. An unknown name is an error.
func Build(ctx context.Context, names *parser.Interner, txns ast.Transactions, history *ledger.History, include []string) (*Series, error) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("graph.build (%d months)", history.Len()))
	defer timer.End()

	if len(include) == 0 {
		include = DefaultAccounts
	}
	ids := make([]ast.ID, len(include))
	for i, name := range include {
		id, ok := names.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown account %q", name)
		}
		ids[i] = id
	}

	s := &Series{Lines: make([]Line, len(include))}
	for i, name := range include {
		s.Lines[i] = Line{Name: name, Values: make([]float64, 0, history.Len())}
	}

	ledger.MonthEnds(ctx, txns, ledger.NewState(names.Len()), history, func(frame ledger.Frame, end *ledger.State) {
		summary := report.Compute(names, end, nil, report.Options{})

		s.Months = append(s.Months, frame.Month)
		s.Spending = append(s.Spending, frame.Spending)
		s.Receiving = append(s.Receiving, frame.Receiving)
		for i, id := range ids {
			v := end.Balance(id) + end.Worth(id)
			if id.IsBuiltIn() {
				v = summary.Value(id, end)
			}
			s.Lines[i].Values = append(s.Lines[i].Values, v)
		}
	})
	return s, nil
}
