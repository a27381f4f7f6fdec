/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package cobrau

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/untillpro/goutils/logger"
)

func TestPrepareRootCmd(t *testing.T) {
	require := require.New(t)

	t.Run("should be ok to print version", func(t *testing.T) {
		out := &bytes.Buffer{}
		cmd := PrepareRootCmd("tool", "test tool", []string{"tool", "ver"}, "1.2.3")
		cmd.SetOut(out)
		require.NoError(cmd.Execute())
		require.Equal("tool version 1.2.3\n", out.String())
	})

	t.Run("should be ok to run subcommand with verbose flag", func(t *testing.T) {
		defer logger.SetLogLevel(logger.LogLevelInfo)

		called := false
		sub := &cobra.Command{
			Use: "do",
			RunE: func(*cobra.Command, []string) error {
				called = true
				return nil
			},
		}
		cmd := PrepareRootCmd("tool", "test tool", []string{"tool", "do", "-v"}, "1.2.3", sub)
		require.NoError(ExecCommandAndCatchInterrupt(cmd))
		require.True(called)
		require.True(logger.IsVerbose())
	})

	t.Run("should be subcommand error returned", func(t *testing.T) {
		testErr := errors.New("test error")
		sub := &cobra.Command{
			Use:  "fail",
			RunE: func(*cobra.Command, []string) error { return testErr },
		}
		cmd := PrepareRootCmd("tool", "test tool", []string{"tool", "fail"}, "1.2.3", sub)
		require.ErrorIs(ExecCommandAndCatchInterrupt(cmd), testErr)
	})
}

func TestGoAndCatchInterrupt(t *testing.T) {
	require := require.New(t)

	ctxErr := errors.New("done")
	err := goAndCatchInterrupt(func(ctx context.Context) error {
		require.NoError(ctx.Err())
		return ctxErr
	})
	require.ErrorIs(err, ctxErr)
}
