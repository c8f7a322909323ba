package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is one financial event on a student's record. Immutable once
// appended; the amount carries exactly the value stored at record time
// (rounded to 2 decimal places then, never re-rounded on read).
type Transaction struct {
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time // calendar date; time of day is always zero
}

// Signed returns the amount with its sign applied (expenses negative).
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
