// Package store persists the ledger to a single JSON document.
//
// The file is rewritten wholesale on save. Load parses the entire document
// into records before converting anything, so a failed load never hands back
// partial state.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/campusfin-dev/campusfin/internal/model"
)

// DefaultFile is the data file name used when no other is configured.
const DefaultFile = "students_finance.json"

const dateFormat = "2006-01-02"

// document is the on-disk shape: {"students": [...]}.
type document struct {
	Students []studentRecord `json:"students"`
}

type studentRecord struct {
	StudentID    string              `json:"student_id"`
	Name         string              `json:"name"`
	Transactions []transactionRecord `json:"transactions"`
}

type transactionRecord struct {
	Type        string      `json:"ttype"`
	Amount      json.Number `json:"amount"` // bare JSON number, 2 decimals
	Description string      `json:"description"`
	Date        string      `json:"date"` // YYYY-MM-DD
}

// Save writes all students (full transaction lists) to path, overwriting any
// existing file.
func Save(path string, students []model.Student) error {
	doc := document{Students: make([]studentRecord, 0, len(students))}
	for _, st := range students {
		doc.Students = append(doc.Students, marshalStudent(st))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads and parses the document at path. An absent file returns an error
// wrapping fs.ErrNotExist, which callers treat as "no prior state" rather
// than a failure. A malformed document (invalid JSON, missing student_id,
// unknown ttype, bad amount or date) is an error and yields no students.
func Load(path string) ([]model.Student, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	students := make([]model.Student, 0, len(doc.Students))
	for i, rec := range doc.Students {
		st, err := unmarshalStudent(rec)
		if err != nil {
			return nil, fmt.Errorf("student %d: %w", i, err)
		}
		students = append(students, st)
	}
	return students, nil
}

func marshalStudent(st model.Student) studentRecord {
	rec := studentRecord{
		StudentID:    st.StudentID,
		Name:         st.Name,
		Transactions: make([]transactionRecord, 0, len(st.Transactions)),
	}
	for _, t := range st.Transactions {
		rec.Transactions = append(rec.Transactions, transactionRecord{
			Type:        string(t.Type),
			Amount:      json.Number(t.Amount.StringFixed(2)),
			Description: t.Description,
			Date:        t.Date.Format(dateFormat),
		})
	}
	return rec
}

func unmarshalStudent(rec studentRecord) (model.Student, error) {
	if rec.StudentID == "" {
		return model.Student{}, fmt.Errorf("missing student_id")
	}

	st := model.Student{StudentID: rec.StudentID, Name: rec.Name}
	for i, tr := range rec.Transactions {
		txn, err := unmarshalTransaction(tr)
		if err != nil {
			return model.Student{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		st.Transactions = append(st.Transactions, txn)
	}
	return st, nil
}

func unmarshalTransaction(rec transactionRecord) (model.Transaction, error) {
	ttype := model.TransactionType(rec.Type)
	if !ttype.Valid() {
		return model.Transaction{}, fmt.Errorf("invalid ttype %q", rec.Type)
	}

	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec.Amount, err)
	}

	date, err := time.Parse(dateFormat, rec.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	return model.Transaction{
		Type:        ttype,
		Amount:      amount,
		Description: rec.Description,
		Date:        date,
	}, nil
}
