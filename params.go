package main

import (
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"

	"github.com/launchdarkly/factory-tests/fixturetests"
	"github.com/launchdarkly/factory-tests/framework"
)

type commandParams struct {
	dir      string
	pattern  string
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
}

func (c *commandParams) addFixtureFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.dir, "dir", "", "directory containing the fixture files")
	cmd.Flags().StringVar(&c.pattern, "pattern", fixturetests.DefaultPattern, "glob pattern selecting fixture files, relative to --dir")
	_ = cmd.MarkFlagRequired("dir")
}

func (c *commandParams) addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	cmd.Flags().Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	cmd.Flags().BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	cmd.Flags().BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
}

// rerunCommand builds a command line that runs only the test with the given ID.
func (c *commandParams) rerunCommand(program string, id framework.TestID) string {
	var b commandBuilder
	b.add(program, "run", "--dir", c.dir)
	if c.pattern != fixturetests.DefaultPattern {
		b.add("--pattern", c.pattern)
	}
	b.add("--run", "^"+regexp.QuoteMeta(id.String())+"$")
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
