/*
* Copyright (c) 2023-present unTill Pro, Ltd.
 */

package cobrau

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/voedger/cbuffer/pkg/goutils/logger"
)

func TestPrepareRootCmd(t *testing.T) {
	defer logger.SetLogLevelWithRestore(logger.LogLevelInfo)()

	called := false
	newSub := func() *cobra.Command {
		return &cobra.Command{
			Use: "load",
			RunE: func(cmd *cobra.Command, args []string) error {
				called = true
				return nil
			},
		}
	}

	t.Run("version", func(t *testing.T) {
		require := require.New(t)
		out := bytes.NewBuffer(nil)
		root := PrepareRootCmd("cbuffer", "test", []string{"cbuffer", "version"}, "1.2.3", newSub())
		root.SetOut(out)
		require.NoError(root.Execute())
		require.Equal("cbuffer version 1.2.3\n", out.String())
	})

	t.Run("verbose flag sets log level", func(t *testing.T) {
		require := require.New(t)
		root := PrepareRootCmd("cbuffer", "test", []string{"cbuffer", "load", "-v"}, "1.2.3", newSub())
		require.NoError(root.Execute())
		require.True(called)
		require.True(logger.IsVerbose())
		require.False(logger.IsTrace())
	})

	t.Run("trace flag sets log level", func(t *testing.T) {
		require := require.New(t)
		root := PrepareRootCmd("cbuffer", "test", []string{"cbuffer", "load", "--trace"}, "1.2.3", newSub())
		require.NoError(root.Execute())
		require.True(logger.IsTrace())
	})
}
