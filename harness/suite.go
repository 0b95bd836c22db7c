package harness

import (
	"io"

	"github.com/google/uuid"

	"github.com/casefile/casefile/stream"
)

// Suite binds a registry of tests to a test data stream and drives runs
// against it.
//
// A Suite owns its stream cursor, so a single Suite must not be shared
// between concurrent runs. The entry points may be called any number of
// times; each one rewinds the stream and starts fresh totals, so repeating
// a request reproduces its results.
type Suite struct {
	parser   *stream.Parser
	registry *Registry
	logger   TestLogger
}

// NewSuite creates a Suite reading test data from src. A nil registry is a
// programming error and panics. If logger is nil, report events are
// discarded.
func NewSuite(src io.ReadSeeker, registry *Registry, logger TestLogger) *Suite {
	if registry == nil {
		panic("harness: NewSuite called with a nil registry")
	}
	if logger == nil {
		logger = nullTestLogger{}
	}
	return &Suite{
		parser:   stream.NewParser(stream.NewReader(src)),
		registry: registry,
		logger:   logger,
	}
}

// RunOne runs the single named test: every section of cases marked with
// that name, in stream order.
func (s *Suite) RunOne(name string) Results {
	if name == "" {
		panic("harness: RunOne called with an empty test name")
	}
	return s.runRequested([]string{name})
}

// RunGroup runs the given set of named tests. Completion order follows the
// data stream, not the order of the names. Duplicate names in the request
// are resolved independently of each other.
func (s *Suite) RunGroup(names []string) Results {
	if len(names) == 0 {
		panic("harness: RunGroup called with no test names")
	}
	for _, name := range names {
		if name == "" {
			panic("harness: RunGroup called with an empty test name")
		}
	}
	return s.runRequested(names)
}

// RunAll runs every registered test.
func (s *Suite) RunAll() Results {
	s.mustHaveTests()
	return s.run(s.registry.All(), nil)
}

func (s *Suite) runRequested(names []string) Results {
	s.mustHaveTests()
	matched, unknown := s.registry.Resolve(names)
	return s.run(matched, unknown)
}

func (s *Suite) mustHaveTests() {
	if s.registry.Len() == 0 {
		panic("harness: run requested before any test was registered")
	}
}

// run is the common path for every entry point: rewind, report what did
// not resolve, scan the stream, report the results.
func (s *Suite) run(candidates []Test, unknown []string) Results {
	results := Results{RunID: uuid.New().String()}
	if err := s.parser.Reset(); err != nil {
		results.Err = err
		s.logger.RunStarted(results.RunID)
		s.logger.RunFinished(results)
		return results
	}
	s.logger.RunStarted(results.RunID)
	for _, name := range unknown {
		s.logger.UnknownTestName(name)
	}
	if len(candidates) == 0 {
		s.logger.NoTestsToRun()
	} else {
		s.scan(candidates, &results)
		results.Err = s.parser.Err()
	}
	s.logger.RunFinished(results)
	return results
}

// scan walks the stream section by section. Sections whose marker names no
// candidate are skipped: their case lines are discarded by the search for
// the next marker, and a later run can still reach them after a rewind.
func (s *Suite) scan(candidates []Test, results *Results) {
	for {
		name, ok := s.parser.ReadTestName()
		if !ok {
			return
		}
		test, found := lookup(candidates, name)
		if !found {
			continue
		}
		if !s.runTest(test, results) {
			results.Aborted = true
			return
		}
	}
}

// runTest applies one section of cases to test, returning false when the
// body asked for the whole run to stop. The section's results are recorded
// either way.
func (s *Suite) runTest(test Test, results *Results) bool {
	s.logger.TestStarted(test.Name)

	tr := TestResult{Name: test.Name}
	abortAll := false
	var captured CapturingLogger

	for {
		text, ok := s.parser.ReadTestCase()
		if !ok {
			break
		}
		tr.CasesApplied++
		c := NewCase(tr.CasesApplied, s.parser.LineCount(), text)
		t := &T{name: test.Name, testCase: c, data: s.parser.Raw(), log: &captured}

		severity := invoke(test, t)
		if severity == Pass {
			s.logger.CasePassed(test.Name, c)
			continue
		}
		tr.CasesFailed++
		s.logger.CaseFailed(test.Name, c)
		if severity == Fail {
			continue
		}
		tr.Aborted = true
		if severity == AbortAll {
			abortAll = true
			s.logger.AllTestsAborted()
		} else {
			s.logger.TestAborted(test.Name)
		}
		break
	}

	s.logger.TestFinished(test.Name, tr.CasesApplied, tr.CasesFailed, captured.Output())
	results.Tests = append(results.Tests, tr)
	results.CasesApplied += tr.CasesApplied
	results.CasesFailed += tr.CasesFailed
	return !abortAll
}
