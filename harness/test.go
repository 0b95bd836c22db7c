package harness

import (
	"fmt"
	"runtime/debug"

	"github.com/casefile/casefile/stream"
)

// Test is a named black-box test. The body is handed one case at a time and
// reports a Severity for it. A body that keeps state across cases must
// manage that state itself; the engine may apply any number of cases to it,
// in stream order, possibly across several sections.
type Test struct {
	Name string
	Run  func(*T) Severity
}

// T is everything a test body has to work with while one case is applied:
// the case itself, raw access to the data stream for extra payload lines,
// and a debug log sink.
type T struct {
	name     string
	testCase *Case
	data     stream.LineSource
	log      Logger
}

// Name returns the registered name of the test being run.
func (t *T) Name() string {
	return t.name
}

// Case returns the case currently being applied.
func (t *T) Case() *Case {
	return t.testCase
}

// ReadLine pulls one extra raw line from the data stream, for cases whose
// payload continues on subsequent lines. Such lines must not look like
// test-name markers or other tests' cases; the engine cannot detect that
// kind of misuse and the results would be indeterminate.
func (t *T) ReadLine() (string, error) {
	return t.data.ReadLine()
}

// LineCount returns the current line position in the data stream.
func (t *T) LineCount() int {
	return t.data.LineCount()
}

// Debug writes diagnostic output for this test. The output is captured and
// handed to the TestLogger along with the test's results; the console
// renderer shows it or not according to its debug settings.
func (t *T) Debug(message string, args ...interface{}) {
	t.log.Printf(message, args...)
}

// invoke runs the body with panic protection. A panicking body counts as a
// failed case that also aborts the rest of its section; the panic value and
// stack go to the captured debug output.
func invoke(test Test, t *T) (result Severity) {
	defer func() {
		if r := recover(); r != nil {
			t.Debug("unexpected panic in test body: %+v\n%s", r, string(debug.Stack()))
			result = AbortTest
		}
	}()
	return test.Run(t)
}

func describeTest(name string, c *Case) string {
	return fmt.Sprintf("%q%s", name, c)
}
