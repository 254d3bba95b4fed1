package parser

import (
	"testing"

	"github.com/robinvdvleuten/networth/ast"
)

func FuzzParseLine(f *testing.F) {
	seeds := []string{
		"2024-01-05",
		"Receiving > Checking 2500 # salary",
		"Checking > Spending 50, Rent 800",
		"2024-1-10 Broker buys 0.5 BTC @ 30000, 2 ETH @ 2000",
		"Broker sells 0.1 BTC @ 32000",
		"BTC @ 31000, ETH @ 2100",
		"; comment",
		"Checking > Spending",
		"2024-02-30 Checking > Spending 5",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ParseLine panicked: %v\nInput: %q", r, line)
			}
		}()

		pctx := NewContext()
		pctx.Date = ast.MustParseDate("2000-01-01")

		txns, err := parseLine(pctx, line)
		if err != nil {
			// Rejected lines leave no trace.
			if len(txns) != 0 || pctx.Names.Len() != ast.NumBuiltIns || pctx.Date != ast.MustParseDate("2000-01-01") {
				t.Errorf("rejected line changed the context: %q", line)
			}
			return
		}

		for _, txn := range txns {
			if txn.Date != pctx.Date {
				t.Errorf("transaction dated %s, cursor at %s: %q", txn.Date, pctx.Date, line)
			}
			for _, id := range []ast.ID{txn.From, txn.To, txn.Asset} {
				if id != ast.NoID && int(id) >= pctx.Names.Len() {
					t.Errorf("unregistered id %d: %q", id, line)
				}
			}
		}
	})
}
