// Package main provides the CLI entry point for doclint, a linter for Java
// documentation comments.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doclint/checks"
	"go.jacobcolvin.com/doclint/log"
	"go.jacobcolvin.com/doclint/profile"
)

// errFindings signals a completed run that reported findings.
var errFindings = errors.New("findings reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd, prof := newRootCmd()

	err := rootCmd.ExecuteContext(ctx)
	err = errors.Join(err, prof.Stop())

	stop()

	if err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}

		os.Exit(1)
	}
}

// newRootCmd returns the root command and the profiler its persistent
// flags configure. The caller stops the profiler after the command ran.
func newRootCmd() (*cobra.Command, *profile.Profiler) {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()
	prof := profCfg.NewProfiler()
	cfg := doclint.NewConfig()
	cfg.Registry = checks.DefaultRegistry()

	var watchFiles bool

	checkCmd := newCheckCmd(cfg, logCfg, &watchFiles)

	rootCmd := &cobra.Command{
		Use:   "doclint [flags] [path ...]",
		Short: "Lint documentation comments",
		Long: `doclint parses the documentation comments of Java source files into typed
trees and runs style checks over them. Paths may be files or directories;
directories are searched for files with the configured extensions. Without
paths, the current directory is checked. With --watch, doclint keeps running
and re-checks files as they change.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          checkCmd.RunE,
	}

	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return prof.Start()
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())
	cfg.RegisterFlags(rootCmd.Flags())
	registerWatchFlag(rootCmd.Flags(), &watchFiles)

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr == nil {
		completionErr = cfg.RegisterCompletions(rootCmd)
	}

	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(
		checkCmd,
		newTreeCmd(logCfg),
		newSchemaCmd(),
		newVersionCmd(),
	)

	return rootCmd, prof
}
