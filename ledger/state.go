package ledger

import "github.com/robinvdvleuten/networth/ast"

// State holds the balances built up by replaying transactions. All three
// slices are indexed by ast.ID and always cover the built-in ids.
type State struct {
	// Balances is the fiat balance of every account.
	Balances []float64
	// Amounts is the held amount of every asset.
	Amounts []float64
	// Prices is the latest known price of every asset, 0 until the first
	// price update or trade.
	Prices []float64
}

// NewState creates a zeroed state sized for n ids.
func NewState(n int) *State {
	if n < ast.NumBuiltIns {
		n = ast.NumBuiltIns
	}
	return &State{
		Balances: make([]float64, n),
		Amounts:  make([]float64, n),
		Prices:   make([]float64, n),
	}
}

// Len returns the number of ids the state covers.
func (s *State) Len() int {
	return len(s.Balances)
}

// Balance returns the balance of account id, 0 for ids never touched.
func (s *State) Balance(id ast.ID) float64 {
	if int(id) >= len(s.Balances) || id < 0 {
		return 0
	}
	return s.Balances[id]
}

// Amount returns the held amount of asset id.
func (s *State) Amount(id ast.ID) float64 {
	if int(id) >= len(s.Amounts) || id < 0 {
		return 0
	}
	return s.Amounts[id]
}

// Price returns the latest price of asset id.
func (s *State) Price(id ast.ID) float64 {
	if int(id) >= len(s.Prices) || id < 0 {
		return 0
	}
	return s.Prices[id]
}

// Worth returns the amount of asset id valued at its latest price.
func (s *State) Worth(id ast.ID) float64 {
	return s.Amount(id) * s.Price(id)
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	return &State{
		Balances: append([]float64(nil), s.Balances...),
		Amounts:  append([]float64(nil), s.Amounts...),
		Prices:   append([]float64(nil), s.Prices...),
	}
}

// apply posts the effect of one transaction.
func (s *State) apply(txn ast.Transaction) {
	switch txn.Kind {
	case ast.Transfer:
		s.grow(txn.From, txn.To)
		s.Balances[txn.From] -= txn.Amount
		s.Balances[txn.To] += txn.Amount
	case ast.Trade:
		s.grow(txn.From, txn.Asset)
		s.Amounts[txn.Asset] += txn.Amount
		s.Balances[txn.From] -= txn.Amount * txn.Price
		s.Prices[txn.Asset] = txn.Price
	case ast.PriceUpdate:
		s.grow(txn.Asset)
		s.Prices[txn.Asset] = txn.Price
	}
}

// grow extends the slices so that every id is addressable.
func (s *State) grow(ids ...ast.ID) {
	last := len(s.Balances) - 1
	for _, id := range ids {
		if int(id) > last {
			last = int(id)
		}
	}
	if last < len(s.Balances) {
		return
	}
	n := last + 1
	s.Balances = append(s.Balances, make([]float64, n-len(s.Balances))...)
	s.Amounts = append(s.Amounts, make([]float64, n-len(s.Amounts))...)
	s.Prices = append(s.Prices, make([]float64, n-len(s.Prices))...)
}
