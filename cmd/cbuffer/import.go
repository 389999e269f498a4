/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var params CLIParams
	cmd := &cobra.Command{
		Use:   "import <component[.market]>...",
		Short: "Import components with their pages and records into definition store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Components = args
			_, cleanup, err := wireLoader(params)
			if err != nil {
				return fmt.Errorf("components not imported: %w", err)
			}
			cleanup()
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d component(s) into %s\n", len(args), params.DB)
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Defs, "defs", "", "directory with definition files")
	cmd.Flags().StringVar(&params.DB, "db", "", "definition store file")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}
