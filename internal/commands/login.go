package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/salesview-dev/salesview/internal/auth"
	"github.com/salesview-dev/salesview/internal/config"
)

func newLoginCommand() *cobra.Command {
	var dir string
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Verify credentials against the project's user list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.Load(filepath.Join(root, config.FileName))
			if err != nil {
				return fmt.Errorf("not a salesview project (run 'salesview init' first): %w", err)
			}

			username := args[0]
			if !auth.Verify(cfg.Users, username, password) {
				return fmt.Errorf("invalid credentials")
			}

			fmt.Printf("Welcome, %s!\n", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
