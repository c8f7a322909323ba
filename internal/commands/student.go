package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStudentCommand() *cobra.Command {
	studentCmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students",
	}
	studentCmd.AddCommand(newStudentAddCommand())
	studentCmd.AddCommand(newStudentRemoveCommand())
	studentCmd.AddCommand(newStudentListCommand())
	return studentCmd
}

func newStudentAddCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "add <id> <name>",
		Short: "Add a student",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := repoFlagValue(repoDir)
			if err != nil {
				return err
			}
			return runStudentAdd(absDir, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	return cmd
}

func runStudentAdd(root, studentID, name string) error {
	studentID = strings.TrimSpace(studentID)
	name = strings.TrimSpace(name)
	if studentID == "" || name == "" {
		return fmt.Errorf("student ID and name must be non-empty")
	}

	w, err := openWorkspace(root)
	if err != nil {
		return err
	}

	if !w.ledger.AddStudent(studentID, name) {
		return fmt.Errorf("student ID %q already exists", studentID)
	}

	if err := w.save("student-add", studentID, name); err != nil {
		return err
	}

	fmt.Printf("Student %s (%s) added.\n", studentID, name)
	return nil
}

func newStudentRemoveCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a student and all their transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := repoFlagValue(repoDir)
			if err != nil {
				return err
			}
			return runStudentRemove(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	return cmd
}

func runStudentRemove(root, studentID string) error {
	w, err := openWorkspace(root)
	if err != nil {
		return err
	}

	if !w.ledger.RemoveStudent(studentID) {
		return fmt.Errorf("student %q not found", studentID)
	}

	if err := w.save("student-remove", studentID, ""); err != nil {
		return err
	}

	fmt.Printf("Student %s removed.\n", studentID)
	return nil
}

func newStudentListCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all students with balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := repoFlagValue(repoDir)
			if err != nil {
				return err
			}
			return runStudentList(absDir)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	return cmd
}

func runStudentList(root string) error {
	w, err := openWorkspace(root)
	if err != nil {
		return err
	}

	summary := w.ledger.AllStudentsSummary()
	if len(summary) == 0 {
		fmt.Println("No students.")
		return nil
	}

	fmt.Println("Students summary:")
	for _, s := range summary {
		fmt.Printf(" - %s: %s | Balance: %s | Tx: %d\n", s.StudentID, s.Name, s.Balance.StringFixed(2), s.TransactionCount)
	}
	return nil
}
