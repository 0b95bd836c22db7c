package selftest

import "github.com/casefile/casefile/harness"

// RegisterAll registers every self-test in r. It must be called before the
// suite's first run.
func RegisterAll(r *harness.Registry) {
	r.Register(harness.Test{Name: "basicRead", Run: basicRead})
	r.Register(harness.Test{Name: "caseNumber", Run: caseNumber})
	r.Register(harness.Test{Name: "testName", Run: testName})
	r.Register(harness.Test{Name: "severity", Run: severityProtocol})
	r.Register(harness.Test{Name: "multiLine", Run: multiLine})
	r.Register(harness.Test{Name: "jsonValues", Run: jsonValues})
}
