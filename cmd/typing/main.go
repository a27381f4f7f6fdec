/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voedger/typing/pkg/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return cobrau.ExecCommandAndCatchInterrupt(newRootCmd(args, ver))
}

func newRootCmd(args []string, ver string) *cobra.Command {
	rootCmd := cobrau.PrepareRootCmd(
		"typing",
		"runtime type system explorer",
		args,
		ver,
		newTypesCmd(),
		newShowCmd(),
		newEvalCmd(),
		newCheckCmd(),
		newSubCmd(),
	)
	rootCmd.PersistentFlags().String("config", "", "config file (default is ./.typing.yaml or $HOME/.typing.yaml)")
	return rootCmd
}
