package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/campusfin-dev/campusfin/internal/model"
)

// Service owns the in-memory collection of students. Single-session use;
// callers serialize access.
type Service struct {
	students map[string]*model.Student
	order    []string // insertion order of student IDs
}

// NewService creates an empty ledger Service.
func NewService() *Service {
	return &Service{students: make(map[string]*model.Student)}
}

// Report is the full statement for one student.
type Report struct {
	StudentID    string
	Name         string
	Balance      decimal.Decimal
	Transactions []model.Transaction
}

// Summary is one row of the all-students listing.
type Summary struct {
	StudentID        string
	Name             string
	Balance          decimal.Decimal
	TransactionCount int
}

// AddStudent inserts a new student with no transactions. Returns false if the
// ID is already taken; the existing student is left untouched.
func (s *Service) AddStudent(studentID, name string) bool {
	if _, ok := s.students[studentID]; ok {
		return false
	}
	s.students[studentID] = &model.Student{StudentID: studentID, Name: name}
	s.order = append(s.order, studentID)
	return true
}

// RemoveStudent deletes a student and all their transactions. Returns false
// if the ID is unknown.
func (s *Service) RemoveStudent(studentID string) bool {
	if _, ok := s.students[studentID]; !ok {
		return false
	}
	delete(s.students, studentID)
	for i, id := range s.order {
		if id == studentID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// FindStudent returns the student for an ID, or false if unknown.
func (s *Service) FindStudent(studentID string) (*model.Student, bool) {
	st, ok := s.students[studentID]
	return st, ok
}

// RecordTransaction appends one transaction to a student's record. The amount
// is rounded to 2 decimal places here, once, before storage. Returns false if
// the student is unknown or the type is invalid; nothing is recorded then.
// The date is always explicit; defaulting to today is the caller's concern.
func (s *Service) RecordTransaction(studentID string, ttype model.TransactionType, amount decimal.Decimal, description string, date time.Time) bool {
	st, ok := s.students[studentID]
	if !ok {
		return false
	}
	if !ttype.Valid() {
		return false
	}
	st.Transactions = append(st.Transactions, model.Transaction{
		Type:        ttype,
		Amount:      amount.Round(2),
		Description: description,
		Date:        date,
	})
	return true
}

// StudentReport returns the full statement for one student, transactions in
// append order.
func (s *Service) StudentReport(studentID string) (Report, bool) {
	st, ok := s.students[studentID]
	if !ok {
		return Report{}, false
	}
	txns := make([]model.Transaction, len(st.Transactions))
	copy(txns, st.Transactions)
	return Report{
		StudentID:    st.StudentID,
		Name:         st.Name,
		Balance:      st.Balance().Round(2),
		Transactions: txns,
	}, true
}

// AllStudentsSummary returns one row per student in insertion order.
func (s *Service) AllStudentsSummary() []Summary {
	var out []Summary
	for _, id := range s.order {
		st := s.students[id]
		out = append(out, Summary{
			StudentID:        st.StudentID,
			Name:             st.Name,
			Balance:          st.Balance().Round(2),
			TransactionCount: len(st.Transactions),
		})
	}
	return out
}

// Students returns a snapshot of all students in insertion order, with copied
// transaction slices so callers cannot mutate ledger state.
func (s *Service) Students() []model.Student {
	out := make([]model.Student, 0, len(s.order))
	for _, id := range s.order {
		st := s.students[id]
		txns := make([]model.Transaction, len(st.Transactions))
		copy(txns, st.Transactions)
		out = append(out, model.Student{
			StudentID:    st.StudentID,
			Name:         st.Name,
			Transactions: txns,
		})
	}
	return out
}

// Replace swaps the entire ledger state for the given students. Later
// duplicates of a student ID win, matching keyed-map hydration.
func (s *Service) Replace(students []model.Student) {
	s.students = make(map[string]*model.Student, len(students))
	s.order = nil
	for _, st := range students {
		cp := st
		if _, seen := s.students[st.StudentID]; !seen {
			s.order = append(s.order, st.StudentID)
		}
		s.students[st.StudentID] = &cp
	}
}
