package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/campusfin-dev/campusfin/internal/importer"
)

func newImportCommand() *cobra.Command {
	var repoDir string
	var studentID string
	var format string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import transactions for a student from a statement CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := repoFlagValue(repoDir)
			if err != nil {
				return err
			}
			return runImport(absDir, args[0], studentID, format)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&studentID, "student", "", "student ID to record transactions under (required)")
	_ = cmd.MarkFlagRequired("student")
	cmd.Flags().StringVar(&format, "format", "statement", "statement format")

	return cmd
}

func runImport(root, file, studentID, format string) error {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", format)
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(file), err)
	}

	w, err := openWorkspace(root)
	if err != nil {
		return err
	}

	if _, ok := w.ledger.FindStudent(studentID); !ok {
		return fmt.Errorf("student %q not found", studentID)
	}

	for i, t := range txns {
		if !w.ledger.RecordTransaction(studentID, t.Type, t.Amount, t.Description, t.Date) {
			return fmt.Errorf("recording row %d failed", i+2)
		}
	}

	details := fmt.Sprintf("%d transactions from %s", len(txns), filepath.Base(file))
	if err := w.save("import", studentID, details); err != nil {
		return err
	}

	// Statements dropped into <repo>/import/ get filed away after ingest.
	absFile, err := filepath.Abs(file)
	if err == nil && filepath.Dir(absFile) == filepath.Join(root, "import") {
		if err := importer.MarkProcessed(root, filepath.Base(absFile)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	fmt.Printf("Imported %d transactions for %s.\n", len(txns), studentID)
	return nil
}
