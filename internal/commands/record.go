package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/campusfin-dev/campusfin/internal/model"
)

const dateFormat = "2006-01-02"

func newRecordCommand() *cobra.Command {
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Record a transaction",
	}
	recordCmd.AddCommand(makeRecordCommand(model.TypeIncome))
	recordCmd.AddCommand(makeRecordCommand(model.TypeExpense))
	return recordCmd
}

func makeRecordCommand(ttype model.TransactionType) *cobra.Command {
	var repoDir string
	var desc string
	var dateStr string

	cmd := &cobra.Command{
		Use:   string(ttype) + " <student-id> <amount>",
		Short: "Record an " + string(ttype) + " transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := repoFlagValue(repoDir)
			if err != nil {
				return err
			}
			return runRecord(absDir, ttype, args[0], args[1], desc, dateStr)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&desc, "desc", "", "transaction description")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (YYYY-MM-DD, default today)")
	return cmd
}

// runRecord validates the raw input, then hands pre-validated values to the
// ledger: the core never sees unparsed amounts or malformed dates.
func runRecord(root string, ttype model.TransactionType, studentID, amountStr, desc, dateStr string) error {
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount %q: use numbers like 1500.50", amountStr)
	}
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}

	date := parseDateOrToday(dateStr)

	w, err := openWorkspace(root)
	if err != nil {
		return err
	}

	if desc == "" {
		if ttype == model.TypeIncome {
			desc = w.cfg.Defaults.IncomeDescription
		} else {
			desc = w.cfg.Defaults.ExpenseDescription
		}
	}

	if !w.ledger.RecordTransaction(studentID, ttype, amount, desc, date) {
		return fmt.Errorf("student %q not found", studentID)
	}

	details := fmt.Sprintf("%s %s", amount.Round(2).StringFixed(2), desc)
	if err := w.save("record-"+string(ttype), studentID, details); err != nil {
		return err
	}

	fmt.Printf("%s of %s recorded for %s.\n", titleCase(string(ttype)), amount.Round(2).StringFixed(2), studentID)
	return nil
}

// parseDateOrToday returns today's local date when dateStr is empty or
// malformed; a malformed value is reported on stderr first.
func parseDateOrToday(dateStr string) time.Time {
	today := func() time.Time {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	if dateStr == "" {
		return today()
	}

	date, err := time.Parse(dateFormat, dateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid date %q; using today's date\n", dateStr)
		return today()
	}
	return date
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
