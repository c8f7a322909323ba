package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/campusfin-dev/campusfin/internal/model"
)

// StatementParser parses simple signed statement CSVs: one header row, then
// date,description,amount. Negative amounts are expenses, positive income.
type StatementParser struct{}

const (
	stmtDateFormat = "2006-01-02"
	stmtNumFields  = 3
	stmtColDate    = 0
	stmtColDesc    = 1
	stmtColAmount  = 2
)

// Format returns the parser name.
func (p *StatementParser) Format() string { return "statement" }

// Parse reads a statement CSV and returns transactions in file order.
func (p *StatementParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = stmtNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseStatementRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseStatementRow(rec []string) (model.Transaction, error) {
	date, err := time.Parse(stmtDateFormat, rec[stmtColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[stmtColDate], err)
	}

	amount, err := decimal.NewFromString(rec[stmtColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[stmtColAmount], err)
	}

	ttype := model.TypeIncome
	if amount.IsNegative() {
		ttype = model.TypeExpense
		amount = amount.Neg()
	}

	return model.Transaction{
		Type:        ttype,
		Amount:      amount.Round(2),
		Description: rec[stmtColDesc],
		Date:        date,
	}, nil
}
