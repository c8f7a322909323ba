package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusfin-dev/campusfin/internal/model"
)

func newReportCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "report <student-id>",
		Short: "Show a student's full statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := repoFlagValue(repoDir)
			if err != nil {
				return err
			}
			return runReport(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	return cmd
}

func runReport(root, studentID string) error {
	w, err := openWorkspace(root)
	if err != nil {
		return err
	}

	rep, ok := w.ledger.StudentReport(studentID)
	if !ok {
		return fmt.Errorf("student %q not found", studentID)
	}

	fmt.Println("--- Student Report ---")
	fmt.Printf("ID: %s\n", rep.StudentID)
	fmt.Printf("Name: %s\n", rep.Name)
	fmt.Printf("Balance: %s\n", rep.Balance.StringFixed(2))
	fmt.Println("Transactions:")
	if len(rep.Transactions) == 0 {
		fmt.Println("  (no transactions)")
		return nil
	}
	for i, t := range rep.Transactions {
		sign := "+"
		if t.Type == model.TypeExpense {
			sign = "-"
		}
		fmt.Printf(" %d. [%s] %-8s%s%s  %s\n", i+1, t.Date.Format(dateFormat), t.Type, sign, t.Amount.StringFixed(2), t.Description)
	}
	return nil
}
