package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/salesview-dev/salesview/internal/auditlog"
	"github.com/salesview-dev/salesview/internal/config"
	"github.com/salesview-dev/salesview/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var name string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new salesview project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, useGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "store name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&useGit, "git", false, "track the data directory with git and auto-commit imports")

	return cmd
}

func runInit(dir, name string, useGit bool) error {
	dirs := []string{
		"import",
		filepath.Join("import", "processed"),
		"exports",
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Empty backing file with canonical columns, so the first report runs
	// against a well-formed (if empty) ledger.
	dataPath := filepath.Join(dir, cfg.Data.File)
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		if err := os.WriteFile(dataPath, []byte("Date,Branch,Product,Quantity,UnitPrice,Total\n"), 0o644); err != nil {
			return fmt.Errorf("writing backing file: %w", err)
		}
	}

	gitignore := "exports/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if err := auditlog.Append(dir, []auditlog.Entry{{
		Timestamp: time.Now(),
		User:      "system",
		Action:    "init",
		Details:   name,
	}}); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized salesview project at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized salesview project at %s\n", dir)
	return nil
}
