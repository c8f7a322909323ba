package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTransactionTypeValid(t *testing.T) {
	tests := []struct {
		ttype TransactionType
		want  bool
	}{
		{TypeIncome, true},
		{TypeExpense, true},
		{TransactionType("transfer"), false},
		{TransactionType(""), false},
		{TransactionType("Income"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ttype.Valid(), "Valid(%q)", tt.ttype)
	}
}

func TestTransactionSigned(t *testing.T) {
	income := Transaction{Type: TypeIncome, Amount: dec("100.50")}
	expense := Transaction{Type: TypeExpense, Amount: dec("40.25")}

	assert.True(t, income.Signed().Equal(dec("100.50")))
	assert.True(t, expense.Signed().Equal(dec("-40.25")))
}

func TestStudentBalance(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	s := &Student{
		StudentID: "S1",
		Name:      "Alice",
		Transactions: []Transaction{
			{Type: TypeIncome, Amount: dec("1500.51"), Date: day},
			{Type: TypeExpense, Amount: dec("200.00"), Date: day},
			{Type: TypeExpense, Amount: dec("0.01"), Date: day},
		},
	}
	assert.True(t, s.Balance().Equal(dec("1300.50")), "got %s", s.Balance())
}

func TestStudentBalanceEmpty(t *testing.T) {
	s := &Student{StudentID: "S1", Name: "Alice"}
	assert.True(t, s.Balance().IsZero())
}
