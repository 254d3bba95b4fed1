package ast

// NewTransfer creates a Transfer of amount from one account to another.
//
// Example:
//
//	txn := ast.NewTransfer(date, checking, ast.Spending, 50)
func NewTransfer(date Date, from, to ID, amount float64) Transaction {
	return Transaction{
		Date:   date,
		Kind:   Transfer,
		From:   from,
		To:     to,
		Asset:  NoID,
		Amount: amount,
	}
}

// NewTrade creates a Trade where account pays amount*price for amount units
// of asset. A negative amount is a sale.
//
// Example:
//
//	txn := ast.NewTrade(date, broker, btc, 0.5, 30000)
func NewTrade(date Date, account, asset ID, amount, price float64) Transaction {
	return Transaction{
		Date:   date,
		Kind:   Trade,
		From:   account,
		To:     NoID,
		Asset:  asset,
		Amount: amount,
		Price:  price,
	}
}

// NewPriceUpdate creates a PriceUpdate setting the price of asset.
func NewPriceUpdate(date Date, asset ID, price float64) Transaction {
	return Transaction{
		Date:  date,
		Kind:  PriceUpdate,
		From:  NoID,
		To:    NoID,
		Asset: asset,
		Price: price,
	}
}
