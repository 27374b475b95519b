package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/launchdarkly/factory-tests/fixturetests"
	"github.com/launchdarkly/factory-tests/framework"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "factory-tests",
		Short:        "Run factory-generated tests over a directory of YAML fixtures",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCommand(), newListCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var params commandParams
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the fixture tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			mainDebugLogger := framework.NullLogger()
			if params.debugAll {
				logger := logrus.New()
				logger.SetOutput(out)
				logger.SetLevel(logrus.DebugLevel)
				mainDebugLogger = logger
			}

			fmt.Fprintln(out)
			params.filters.Describe(out)
			fmt.Fprintln(out, "Running test suite")

			testLogger := &framework.ConsoleTestLogger{
				Out:                  out,
				DebugOutputOnFailure: params.debug || params.debugAll,
				DebugOutputOnSuccess: params.debugAll,
			}

			results := fixturetests.RunTestSuite(
				params.dir,
				params.pattern,
				params.filters.AsFilter,
				testLogger,
				mainDebugLogger,
			)

			fmt.Fprintln(out)
			framework.PrintResults(out, results)
			if !results.OK() {
				return fmt.Errorf("%d tests failed", len(results.Failures))
			}
			return nil
		},
	}
	params.addFixtureFlags(cmd)
	params.addRunFlags(cmd)
	return cmd
}

func newListCommand() *cobra.Command {
	var params commandParams
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the fixture tests and the command that reruns each one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := fixturetests.ListTests(params.dir, params.pattern)
			if err != nil {
				return err
			}
			program := filepath.Base(os.Args[0])
			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintf(out, "%s\n    %s\n", id, params.rerunCommand(program, id))
			}
			return nil
		},
	}
	params.addFixtureFlags(cmd)
	return cmd
}
