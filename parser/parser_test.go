package parser

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/networth/ast"
)

func TestParseLine(t *testing.T) {
	jan5 := ast.MustParseDate("2024-01-05")

	tests := []struct {
		name      string
		input     string
		checkFunc func(*testing.T, *Context, ast.Transactions)
	}{
		{
			name:  "blank line",
			input: "   ",
			checkFunc: func(t *testing.T, pctx *Context, txns ast.Transactions) {
				assert.Equal(t, 0, len(txns))
				assert.Equal(t, jan5, pctx.Date)
			},
		},
		{
			name:  "comment line",
			input: "# Checking > Spending 50",
			checkFunc: func(t *testing.T, pctx *Context, txns ast.Transactions) {
				assert.Equal(t, 0, len(txns))
				assert.Equal(t, ast.NumBuiltIns, pctx.Names.Len())
			},
		},
		{
			name:  "date only line moves the cursor",
			input: "2024-02-10",
			checkFunc: func(t *testing.T, pctx *Context, txns ast.Transactions) {
				assert.Equal(t, 0, len(txns))
				assert.Equal(t, ast.MustParseDate("2024-02-10"), pctx.Date)
			},
		},
		{
			name:  "simple transfer inherits the cursor",
			input: "Checking > Spending 50",
			checkFunc: func(t *testing.T, pctx *Context, txns ast.Transactions) {
				assert.Equal(t, 1, len(txns))
				checking, ok := pctx.Names.Lookup("Checking")
				assert.True(t, ok)
				assert.Equal(t, ast.NewTransfer(jan5, checking, ast.Spending, 50), txns[0])
			},
		},
		{
			name:  "dated transfer moves the cursor",
			input: "2024-03-01 Receiving > Checking 2500.50 # salary",
			checkFunc: func(t *testing.T, pctx *Context, txns ast.Transactions) {
				assert.Equal(t, 1, len(txns))
				assert.Equal(t, ast.MustParseDate("2024-03-01"), txns[0].Date)
				assert.Equal(t, ast.MustParseDate("2024-03-01"), pctx.Date)
				assert.Equal(t, 2500.50, txns[0].Amount)
				assert.Equal(t, ast.Receiving, txns[0].From)
			},
		},
		{
			name:  "compound transfer keeps leg order",
			input: "Checking > Spending 50, Rent 800, Savings 100",
			checkFunc: func(t *testing.T, pctx *Context, txns ast.Transactions) {
				assert.Equal(t, 3, len(txns))
				names := []string{}
				for _, txn := range txns {
					assert.Equal(t, jan5, txn.Date)
					assert.Equal(t, "Checking", pctx.Names.Resolve(txn.From))
					names = append(names, pctx.Names.Resolve(txn.To))
				}
				assert.Equal(t, []string{"Spending", "Rent", "Savings"}, names)
				assert.Equal(t, 800.0, txns[1].Amount)
			},
		},
		{
			name:  "trade",
			input: "Broker buys 0.5 BTC @ 30000",
			checkFunc: func(t *testing.T, pctx *Context, txns ast.Transactions) {
				assert.Equal(t, 1, len(txns))
				assert.Equal(t, ast.Trade, txns[0].Kind)
				assert.Equal(t, "Broker", pctx.Names.Resolve(txns[0].From))
				assert.Equal(t, "BTC", pctx.Names.Resolve(txns[0].Asset))
				assert.Equal(t, 0.5, txns[0].Amount)
				assert.Equal(t, 30000.0, txns[0].Price)
			},
		},
		{
			name:  "compound sell negates every leg",
			input: "Broker sells 0.1 BTC @ 32000, 2 ETH @ 2000",
			checkFunc: func(t *testing.T, pctx *Context, txns ast.Transactions) {
				assert.Equal(t, 2, len(txns))
				assert.Equal(t, -0.1, txns[0].Amount)
				assert.Equal(t, -2.0, txns[1].Amount)
				assert.Equal(t, "ETH", pctx.Names.Resolve(txns[1].Asset))
			},
		},
		{
			name:  "price updates",
			input: "BTC @ 31000, ETH @ 2100",
			checkFunc: func(t *testing.T, pctx *Context, txns ast.Transactions) {
				assert.Equal(t, 2, len(txns))
				assert.Equal(t, ast.PriceUpdate, txns[0].Kind)
				assert.Equal(t, 31000.0, txns[0].Price)
				assert.Equal(t, 2100.0, txns[1].Price)
				assert.Equal(t, ast.NoID, txns[1].From)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pctx := NewContext()
			pctx.Date = jan5

			txns := ParseLine(pctx, tt.input)
			tt.checkFunc(t, pctx, txns)
		})
	}
}

func TestParseLineMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid date", "2024-02-30 Checking > Spending 5"},
		{"missing amount", "Checking > Spending"},
		{"missing operator", "Checking Spending 5"},
		{"bad amount", "Checking > Spending five"},
		{"trailing comma", "Checking > Spending 5,"},
		{"extra tokens", "Checking > Spending 5 6"},
		{"trade without price", "Broker buys 1 BTC"},
		{"price without amount", "BTC @"},
		{"starts with number", "5 Checking > Spending"},
		{"second date", "2024-01-01 2024-01-02"},
		{"illegal token", "Checking > Spending 12abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pctx := NewContext()
			pctx.Date = ast.MustParseDate("2024-01-05")

			txns, err := parseLine(pctx, tt.input)
			assert.Error(t, err)
			assert.Equal(t, 0, len(txns))
			assert.Equal(t, 0, len(ParseLine(pctx, tt.input)))

			// Rejected lines leave the context untouched.
			assert.Equal(t, ast.NumBuiltIns, pctx.Names.Len())
			assert.Equal(t, ast.MustParseDate("2024-01-05"), pctx.Date)
		})
	}
}

func TestParse(t *testing.T) {
	source := `
# opening
2024-01-05
Receiving > Checking 3000
Checking > Spending 50
not a valid line at all
2024-02-10
Checking > Spending 30
Broker buys 1 BTC @ 100
`
	pctx := NewContext()
	txns := ParseString(context.Background(), pctx, source)

	assert.Equal(t, 4, len(txns))
	assert.Equal(t, ast.MustParseDate("2024-01-05"), txns[0].Date)
	assert.Equal(t, ast.MustParseDate("2024-01-05"), txns[1].Date)
	assert.Equal(t, ast.MustParseDate("2024-02-10"), txns[2].Date)
	assert.Equal(t, ast.Trade, txns[3].Kind)

	// Every referenced id was registered.
	for _, txn := range txns {
		for _, id := range []ast.ID{txn.From, txn.To, txn.Asset} {
			if id != ast.NoID {
				assert.True(t, int(id) < pctx.Names.Len())
			}
		}
	}
	assert.Equal(t, []string{"Checking", "Broker", "BTC"}, pctx.Names.Names()[ast.NumBuiltIns:])
}

func TestParseBeforeAnyDate(t *testing.T) {
	pctx := NewContext()
	txns := ParseString(context.Background(), pctx, "Receiving > Checking 10")

	assert.Equal(t, 1, len(txns))
	assert.True(t, txns[0].Date.IsZero())
}
