/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package cobrau

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

/*

Flags of every command:

  -v, --verbose   Print verbose output (detailed level)
      --trace     Print trace output   (most detailed level)

*/

func addFlagsToCommands(cmd *cobra.Command) {
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("trace", false, "Enable extremely verbose output")
	cmd.InitDefaultHelpFlag()
	cmd.SilenceErrors = true

	for _, subCmd := range cmd.Commands() {
		addFlagsToCommands(subCmd)
	}
}

// Sets logger level from --trace and --verbose flags of command.
func setLogLevel(cmd *cobra.Command) {
	if ok, _ := cmd.Flags().GetBool("trace"); ok {
		logger.SetLogLevel(logger.LogLevelTrace)
		logger.Verbose("Using logger.LogLevelTrace...")
	} else if ok, _ := cmd.Flags().GetBool("verbose"); ok {
		logger.SetLogLevel(logger.LogLevelVerbose)
		logger.Verbose("Using logger.LogLevelVerbose...")
	}
}

// Returns root command with specified subcommands, version command and logging flags.
//
// Command line args are taken from args[1:], args[0] is the program name.
func PrepareRootCmd(use string, short string, args []string, version string, cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   use,
		Short: short,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogLevel(cmd)
		},
	}

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), version)
		},
	}

	if len(args) > 0 {
		rootCmd.SetArgs(args[1:])
	}
	rootCmd.AddCommand(cmds...)

	rootCmd.InitDefaultCompletionCmd()
	addFlagsToCommands(rootCmd)

	rootCmd.AddCommand(versionCmd)
	addFlagsToCommands(versionCmd)
	rootCmd.SilenceUsage = true
	return rootCmd
}
