// Package ast declares the types produced by parsing a networth ledger.
//
// A ledger is a plain-text file where every line is handed to the parser in
// file order. Each line yields zero or more Transactions that all share the
// date cursor in effect for that line. Names of accounts and assets are
// interned into dense IDs, the first NumBuiltIns of which are reserved for
// the synthetic accounts and assets listed below.
package ast

import "fmt"

// ID identifies an interned account or asset name. Accounts and assets share
// one id space.
type ID int

// NoID marks an absent account or asset on a Transaction.
const NoID ID = -1

// Built-in ids, registered in this order before any name from the ledger.
const (
	// Fiat is the primary fiat asset.
	Fiat ID = iota
	// ShadowFiat is fiat held outside of the spendable total.
	ShadowFiat
	// NetWorth is the aggregate of every account and holding.
	NetWorth
	// Yield is the part of NetWorth not explained by income minus spending.
	Yield
	// Assets is the worth of all non-fiat holdings.
	Assets
	// ROI is NetWorth relative to what was contributed.
	ROI
	// Spending receives every expense of the month.
	Spending
	// Receiving pays out every income of the month.
	Receiving
)

// NumBuiltIns is the number of reserved ids.
const NumBuiltIns = int(Receiving) + 1

var builtInNames = [NumBuiltIns]string{
	Fiat:       "Fiat",
	ShadowFiat: "Shadow",
	NetWorth:   "Net",
	Yield:      "Yield",
	Assets:     "Assets",
	ROI:        "ROI",
	Spending:   "Spending",
	Receiving:  "Receiving",
}

// BuiltInNames returns the names of the reserved ids, indexed by id.
func BuiltInNames() []string {
	names := make([]string, NumBuiltIns)
	copy(names, builtInNames[:])
	return names
}

// IsBuiltIn reports whether id is one of the reserved ids.
func (id ID) IsBuiltIn() bool {
	return id >= 0 && int(id) < NumBuiltIns
}

func (id ID) String() string {
	if id.IsBuiltIn() {
		return builtInNames[id]
	}
	if id == NoID {
		return "-"
	}
	return fmt.Sprintf("#%d", int(id))
}
