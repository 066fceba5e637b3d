package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBranchesCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "branches",
		Short: "List the branches present in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openProject(dir)
			if err != nil {
				return err
			}
			for _, b := range proj.led.Branches() {
				fmt.Println(b)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	return cmd
}

func newProductsCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the products present in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openProject(dir)
			if err != nil {
				return err
			}
			for _, p := range proj.led.Products() {
				fmt.Println(p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	return cmd
}
