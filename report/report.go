// Package report derives the figures of the summary report from a replayed
// ledger and renders them for the terminal.
//
// The engine never posts to the aggregate built-ins (Net, Yield, Assets and
// ROI); their values are computed here from the final balances.
package report

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/networth/ast"
	"github.com/robinvdvleuten/networth/ledger"
	"github.com/robinvdvleuten/networth/parser"
)

// Rounding modes of reported values, as accepted in the configuration.
const (
	RoundingNone  = "none"
	RoundingWhole = "whole"
	RoundingCents = "cents"
)

// dust is the smallest asset amount still listed.
const dust = 0.000001

// Options controls what the summary includes and how values are shown.
type Options struct {
	// Accounts restricts the account rows to these names, in this order.
	// Empty lists every account with a balance.
	Accounts []string
	// Redact divides absolute values by the redaction factor and hides
	// per-asset amounts.
	Redact bool
	// RedactMap renames accounts in the account rows.
	RedactMap map[string]string
	// Rounding is one of RoundingNone, RoundingWhole or RoundingCents.
	Rounding string
	// MinAssetWorth hides assets worth less than this.
	MinAssetWorth float64
}

// AccountRow is one line of the accounts section.
type AccountRow struct {
	Name    string
	Balance float64
	// Ratio marks values that are not scaled by the redaction factor.
	Ratio bool
}

// AssetRow is one line of the distribution section.
type AssetRow struct {
	Name   string
	Amount float64
	Price  float64
	Worth  float64
	// Share is the fraction of total holdings, between 0 and 1.
	Share float64
}

// Summary holds every figure of the report. Values are unscaled; Scale
// applies the redaction factor.
type Summary struct {
	Options Options

	Cash        float64
	PositiveSum float64
	Debt        float64
	Holdings    float64
	Assets      float64
	Fiat        float64
	Shadow      float64
	Net         float64
	Contributed float64
	Yield       float64
	ROI         float64

	AssetsSplit float64
	FiatSplit   float64

	// HoldingsError is the positive sum not explained by holdings.
	HoldingsError float64
	// AssetsError is the largest gap between Assets and its share of
	// either the positive sum or the holdings.
	AssetsError float64

	Spent12    float64
	Received12 float64
	SavingRate float64

	// RedactFactor is min(PositiveSum, Holdings).
	RedactFactor float64

	Accounts []AccountRow
	Holding  []AssetRow
	Metrics  Metrics
}

// Compute derives the summary of state. history supplies the trailing
// twelve month flows and may be nil.
func Compute(names *parser.Interner, state *ledger.State, history *ledger.History, opts Options) *Summary {
	if opts.Rounding == "" {
		opts.Rounding = RoundingCents
	}
	s := &Summary{Options: opts}

	for id := ast.ID(ast.NumBuiltIns); int(id) < state.Len(); id++ {
		b := state.Balance(id)
		s.Cash += b
		if b > 0 {
			s.PositiveSum += b
		} else {
			s.Debt += b
		}
	}
	for id := ast.ID(0); int(id) < state.Len(); id++ {
		s.Holdings += state.Worth(id)
	}

	s.Shadow = state.Worth(ast.ShadowFiat)
	s.Fiat = s.Cash + state.Worth(ast.Fiat)
	s.Assets = s.Holdings - state.Worth(ast.Fiat) - s.Shadow
	s.Net = s.Cash + s.Holdings
	s.Contributed = -state.Balance(ast.Receiving) - state.Balance(ast.Spending)
	s.Yield = s.Net - s.Contributed
	s.ROI = s.Net / s.Contributed

	s.AssetsSplit = s.Assets / (s.Assets + s.Fiat)
	s.FiatSplit = 1 - s.AssetsSplit

	s.HoldingsError = s.PositiveSum - s.Holdings
	s.AssetsError = math.Max(
		s.Assets-s.PositiveSum*s.AssetsSplit,
		s.Assets-s.Holdings*s.AssetsSplit,
	)

	if history != nil {
		last12 := history.Trailing(12)
		s.Spent12 = last12.Spending
		s.Received12 = last12.Receiving
	}
	s.SavingRate = (s.Received12 - s.Spent12) / s.Received12 * 100

	s.RedactFactor = math.Min(s.PositiveSum, s.Holdings)

	s.Accounts = s.accountRows(names, state)
	s.Holding = s.assetRows(names, state)
	s.Metrics = computeMetrics(s)

	return s
}

// Scale applies the redaction factor to an absolute value.
func (s *Summary) Scale(v float64) float64 {
	if !s.Options.Redact {
		return v
	}
	return v / s.RedactFactor
}

// Value returns the figure reported for id: the derived value for the
// aggregate built-ins, the balance for every other name.
func (s *Summary) Value(id ast.ID, state *ledger.State) float64 {
	v, _ := s.value(id, state)
	return v
}

// value also reports whether the figure is a ratio.
func (s *Summary) value(id ast.ID, state *ledger.State) (float64, bool) {
	switch id {
	case ast.Fiat:
		return s.Fiat, false
	case ast.ShadowFiat:
		return s.Shadow, false
	case ast.NetWorth:
		return s.Net, false
	case ast.Yield:
		return s.Yield, false
	case ast.Assets:
		return s.Assets, false
	case ast.ROI:
		return s.ROI, true
	}
	return state.Balance(id), false
}

func (s *Summary) accountRows(names *parser.Interner, state *ledger.State) []AccountRow {
	var rows []AccountRow
	add := func(id ast.ID) {
		v, ratio := s.value(id, state)
		name := names.Resolve(id)
		if renamed, ok := s.Options.RedactMap[name]; ok {
			name = renamed
		}
		rows = append(rows, AccountRow{Name: name, Balance: v, Ratio: ratio})
	}

	if len(s.Options.Accounts) > 0 {
		for _, name := range s.Options.Accounts {
			if id, ok := names.Lookup(name); ok {
				add(id)
			}
		}
		return rows
	}

	add(ast.Spending)
	add(ast.Receiving)
	for id := ast.ID(ast.NumBuiltIns); int(id) < names.Len(); id++ {
		if state.Balance(id) != 0 {
			add(id)
		}
	}
	return rows
}

func (s *Summary) assetRows(names *parser.Interner, state *ledger.State) []AssetRow {
	var rows []AssetRow
	for id := ast.ID(0); int(id) < state.Len() && int(id) < names.Len(); id++ {
		price, amount := state.Price(id), state.Amount(id)
		if price == 0 || amount < dust {
			continue
		}
		worth := amount * price
		if worth < s.Options.MinAssetWorth {
			continue
		}
		rows = append(rows, AssetRow{
			Name:   names.Resolve(id),
			Amount: amount,
			Price:  price,
			Worth:  worth,
			Share:  worth / s.Holdings,
		})
	}
	slices.SortStableFunc(rows, func(a, b AssetRow) int {
		switch {
		case a.Share > b.Share:
			return -1
		case a.Share < b.Share:
			return 1
		}
		return 0
	})
	return rows
}
