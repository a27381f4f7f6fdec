/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

// Executes command with context which is cancelled on interrupt signal.
// Waits for command to finish and returns its error.
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	return goAndCatchInterrupt(cmd.ExecuteContext, os.Interrupt)
}

func goAndCatchInterrupt(f func(ctx context.Context) error, sigs ...os.Signal) (err error) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, sigs...)
	defer signal.Stop(signals)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = f(ctx)
		cancel()
	}()

	select {
	case sig := <-signals:
		logger.Info("signal received:", sig)
		cancel()
	case <-ctx.Done():
	}
	if logger.IsVerbose() {
		logger.Verbose("waiting for command to finish...")
	}
	wg.Wait()
	return err
}
