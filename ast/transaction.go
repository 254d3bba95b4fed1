package ast

import "fmt"

// Kind is the kind of effect a Transaction has on the ledger state.
type Kind int

const (
	// Transfer moves an amount of fiat from one account to another.
	Transfer Kind = iota
	// Trade adds an amount of an asset, paid for by an account at a price.
	Trade
	// PriceUpdate sets the latest price of an asset.
	PriceUpdate
)

func (k Kind) String() string {
	switch k {
	case Transfer:
		return "transfer"
	case Trade:
		return "trade"
	case PriceUpdate:
		return "price"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Transaction is one effect produced by a ledger line. Fields that do not
// apply to the Kind hold NoID or zero.
//
//	Transfer:    From -> To, Amount
//	Trade:       From pays Amount*Price for Amount of Asset
//	PriceUpdate: Asset is worth Price
type Transaction struct {
	Date   Date
	Kind   Kind
	From   ID
	To     ID
	Asset  ID
	Amount float64
	Price  float64
}

// Transactions is an ordered list of transactions, in ledger order.
type Transactions []Transaction
