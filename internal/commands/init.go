package commands

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/campusfin-dev/campusfin/internal/config"
	"github.com/campusfin-dev/campusfin/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var school string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new campusfin project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := repoFlagValue(dir)
			if err != nil {
				return err
			}

			return runInit(absDir, school)
		},
	}

	cmd.Flags().StringVar(&school, "school", "", "school name (required)")
	_ = cmd.MarkFlagRequired("school")

	return cmd
}

func runInit(dir, school string) error {
	dirs := []string{
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(school)
	if _, err := exec.LookPath("git"); err != nil {
		fmt.Fprintln(os.Stderr, "git not found; disabling auto-commit")
		cfg.Git.AutoCommit = false
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	gitignore := "logs/\nimport/processed/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if cfg.Git.AutoCommit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		paths := []string{config.FileName, ".gitignore"}
		if _, err := gitops.CommitPaths(dir, paths, "init: "+school, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	fmt.Printf("Initialized campusfin project at %s\n", dir)
	return nil
}
