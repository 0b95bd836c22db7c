package main

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/casefile/casefile/harness"
	"github.com/casefile/casefile/selftest"
	"github.com/casefile/casefile/stream"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}
	if params.noColor {
		color.NoColor = true
		text.DisableColors()
	}

	registry := harness.NewRegistry()
	selftest.RegisterAll(registry)

	if params.list {
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
		return 0
	}

	src, closer, err := stream.OpenSource(params.data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open test data: %s\n", err)
		return 1
	}
	defer closer.Close()

	output := io.Writer(os.Stdout)
	if params.output != "" {
		f, err := os.Create(params.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot create output file: %s\n", err)
			return 1
		}
		defer f.Close()
		output = io.MultiWriter(os.Stdout, harness.NewStripWriter(f))
	}

	testLogger := &harness.ConsoleTestLogger{
		Output:               output,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	suite := harness.NewSuite(src, registry, testLogger)

	var results harness.Results
	if params.filters.IsDefined() {
		describeFilters(params.filters)
		names := params.filters.SelectNames(registry.Names())
		if len(names) == 0 {
			fmt.Fprintln(os.Stderr, "No registered tests match the filter patterns")
			return 1
		}
		results = suite.RunGroup(names)
	} else {
		results = suite.RunAll()
	}

	if !results.OK() {
		if hint := rerunHint(params, results); hint != "" {
			fmt.Println()
			fmt.Println(hint)
		}
		return 1
	}
	return 0
}

func describeFilters(filters harness.RegexFilters) {
	fmt.Println("Some tests will be skipped based on the filter criteria for this run:")
	if filters.MustMatch.IsDefined() {
		fmt.Printf("  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Printf("  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Println()
}

// rerunHint builds a copy-pasteable command line that reruns only the tests
// that failed, with debug output enabled.
func rerunHint(params commandParams, results harness.Results) string {
	var failed []string
	seen := make(map[string]bool)
	for _, tr := range results.Tests {
		if tr.CasesFailed > 0 && !seen[tr.Name] {
			seen[tr.Name] = true
			failed = append(failed, tr.Name)
		}
	}
	if len(failed) == 0 {
		return ""
	}
	var b commandBuilder
	b.add(params.program, "-data", params.data, "-debug")
	for _, name := range failed {
		b.add("-run", "^"+regexp.QuoteMeta(name)+"$")
	}
	return "To rerun just the failed tests: " + b.String()
}
