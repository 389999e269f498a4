/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/voedger/cbuffer/pkg/goutils/logger"
)

// Executes the command with a context cancelled on the first interrupt signal.
//
// A component load is not cancellable mid-way, so the context is only checked between commands' units of work
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	if ctx.Err() != nil {
		logger.Info("interrupted")
	}
	return err
}
