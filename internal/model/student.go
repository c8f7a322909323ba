package model

import "github.com/shopspring/decimal"

// Student is one tracked student: identity plus an append-only sequence of
// transactions in the order they were recorded.
type Student struct {
	StudentID    string
	Name         string
	Transactions []Transaction
}

// Balance returns income minus expenses across all transactions. Computed on
// demand, never stored.
func (s *Student) Balance() decimal.Decimal {
	bal := decimal.Zero
	for _, t := range s.Transactions {
		bal = bal.Add(t.Signed())
	}
	return bal
}
