package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/casefile/casefile/harness"
)

type commandParams struct {
	program    string
	data       string
	configFile string
	output     string
	filters    harness.RegexFilters
	list       bool
	debug      bool
	debugAll   bool
	noColor    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.data, "data", "", "test data file path or http(s) URL")
	fs.StringVar(&c.configFile, "config", "", "YAML run configuration file")
	fs.StringVar(&c.output, "output", "", "mirror the report, uncolored, into this file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.list, "list", false, "print the registered test names and exit")
	fs.BoolVar(&c.debug, "debug", false, "enable debug output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug output for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable color in the console report")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	c.program = args[0]

	cfg, err := loadRunConfig(c.configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	c.applyConfig(cfg, explicitFlags(fs))

	if c.data == "" && !c.list {
		fmt.Fprintln(os.Stderr, "-data is required (as a flag, in the config file, or as CASEFILE_DATA)")
		fs.Usage()
		return false
	}
	return true
}

// explicitFlags reports which flags were given on the command line, so that
// configuration values only fill the gaps.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func (c *commandParams) applyConfig(cfg runConfig, explicit map[string]bool) {
	if !explicit["data"] && cfg.Data != "" {
		c.data = cfg.Data
	}
	if !explicit["output"] && cfg.Output != "" {
		c.output = cfg.Output
	}
	if !explicit["debug"] && cfg.Debug {
		c.debug = true
	}
	if !explicit["debug-all"] && cfg.DebugAll {
		c.debugAll = true
	}
	if !explicit["no-color"] && cfg.NoColor {
		c.noColor = true
	}
	if !c.filters.MustMatch.IsDefined() {
		for _, name := range cfg.Tests {
			// QuoteMeta output always compiles.
			_ = c.filters.MustMatch.Set("^" + regexp.QuoteMeta(name) + "$")
		}
	}
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
