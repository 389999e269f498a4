/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voedger/cbuffer/pkg/component"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

func newLoadCmd() *cobra.Command {
	var params CLIParams
	var market string
	var keys []string
	var passLimit int
	var emissions bool
	cmd := &cobra.Command{
		Use:   "load <component>",
		Short: "Load component and print its buffer tree and scrolls",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []component.Option{component.WithDefaultPassLimit(passLimit)}
			for _, k := range keys {
				field, value, ok := strings.Cut(k, searchKeySeparator)
				if !ok {
					return ptypes.ErrUnsupported("search key «%s», expected FIELD%sVALUE", k, searchKeySeparator)
				}
				opts = append(opts, component.WithSearchKey(field, value))
			}
			params.Components = []string{args[0] + "." + market}

			wired, cleanup, err := wireLoader(params)
			if err != nil {
				return fmt.Errorf("loader not wired: %w", err)
			}
			defer cleanup()

			c, err := component.Load(cmd.Context(), wired.Config, args[0], market, opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c)
			fmt.Fprint(out, c.Dump())
			fmt.Fprint(out, c.EmitScrolls())
			if emissions {
				fmt.Fprint(out, wired.Recorder)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Defs, "defs", "", "directory with definition files")
	cmd.Flags().StringVar(&params.DB, "db", "", "definition store file, component is imported into it before load")
	cmd.Flags().StringVar(&market, "market", Default_Market, "component market")
	cmd.Flags().StringArrayVar(&keys, "key", []string{}, "search key value, FIELD=VALUE")
	cmd.Flags().IntVar(&passLimit, "pass-limit", component.DefaultPassLimit, "default processing passes limit")
	cmd.Flags().BoolVar(&emissions, "emissions", false, "print trace emissions")
	return cmd
}
