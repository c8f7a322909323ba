package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/campusfin-dev/campusfin/internal/auditlog"
	"github.com/campusfin-dev/campusfin/internal/config"
	"github.com/campusfin-dev/campusfin/internal/gitops"
	"github.com/campusfin-dev/campusfin/internal/ledger"
	"github.com/campusfin-dev/campusfin/internal/store"
)

// workspace bundles a project directory's config and hydrated ledger for the
// duration of one command.
type workspace struct {
	root   string
	cfg    *config.Config
	ledger *ledger.Service
}

// openWorkspace loads campusfin.yaml and hydrates the ledger from the data
// file. An absent data file means a fresh ledger, not an error.
func openWorkspace(root string) (*workspace, error) {
	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a campusfin project (run 'campusfin init' first): %w", err)
	}

	svc := ledger.NewService()
	students, err := store.Load(filepath.Join(root, cfg.Data.File))
	switch {
	case err == nil:
		svc.Replace(students)
	case errors.Is(err, fs.ErrNotExist):
		// No prior state; start fresh.
	default:
		return nil, err
	}

	return &workspace{root: root, cfg: cfg, ledger: svc}, nil
}

func (w *workspace) dataPath() string {
	return filepath.Join(w.root, w.cfg.Data.File)
}

// save writes the whole data file back, commits it when auto-commit is on,
// and appends one audit-log entry for the mutation.
func (w *workspace) save(action, studentID, details string) error {
	if err := store.Save(w.dataPath(), w.ledger.Students()); err != nil {
		return err
	}

	entry := auditlog.Entry{
		Timestamp: time.Now(),
		Action:    action,
		StudentID: studentID,
		Details:   details,
	}

	if w.cfg.Git.AutoCommit && gitops.IsRepo(w.root) {
		message := fmt.Sprintf("%s: %s", action, studentID)
		hash, err := gitops.CommitPaths(w.root, []string{w.cfg.Data.File}, message, w.cfg.Git.AuthorName, w.cfg.Git.AuthorEmail)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: auto-commit failed: %v\n", err)
		} else {
			entry.CommitHash = hash
		}
	}

	if err := auditlog.Append(w.root, []auditlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write activity log: %v\n", err)
	}
	return nil
}

// repoFlagValue resolves the --repo flag to an absolute path.
func repoFlagValue(repoDir string) (string, error) {
	absDir, err := filepath.Abs(repoDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return absDir, nil
}
