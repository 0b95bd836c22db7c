package selftest

import (
	"strings"

	"github.com/casefile/casefile/harness"
)

// basicRead checks that case text reaches the body intact: every case is a
// pair of equal integers. If even that does not hold, the harness is
// feeding us garbage and there is no point in further testing of any kind.
func basicRead(t *harness.T) harness.Severity {
	var first, second int
	if err := t.Case().Scan(&first, &second); err != nil {
		t.Debug("could not parse case %q: %s", t.Case().Text(), err)
		return harness.AbortAll
	}
	if first != second {
		t.Debug("expected two equal integers, got %d and %d", first, second)
		return harness.AbortAll
	}
	return harness.Pass
}

// caseNumber checks section-relative numbering: each case states the number
// it expects to be.
func caseNumber(t *harness.T) harness.Severity {
	var expected int
	if err := t.Case().Scan(&expected); err != nil {
		t.Debug("could not parse case %q: %s", t.Case().Text(), err)
		return harness.Fail
	}
	if expected != t.Case().Number() {
		t.Debug("case expected to be number %d but was number %d", expected, t.Case().Number())
		return harness.Fail
	}
	return harness.Pass
}

// testName checks that cases are routed to the right test: each case states
// the name of the test it should be applied to.
func testName(t *harness.T) harness.Severity {
	var expected string
	if err := t.Case().Scan(&expected); err != nil {
		t.Debug("could not parse case %q: %s", t.Case().Text(), err)
		return harness.Fail
	}
	if expected != t.Name() {
		t.Debug("case for test %q was applied to test %q", expected, t.Name())
		return harness.Fail
	}
	return harness.Pass
}

// multiLine reads extra payload lines directly from the stream: the case
// states how many lines follow and what they concatenate to.
func multiLine(t *harness.T) harness.Severity {
	var count int
	var expected string
	if err := t.Case().Scan(&count, &expected); err != nil {
		t.Debug("could not parse case %q: %s", t.Case().Text(), err)
		return harness.Fail
	}
	var joined strings.Builder
	for i := 0; i < count; i++ {
		line, err := t.ReadLine()
		if err != nil {
			// The stream position can no longer be trusted, so the rest of
			// this section has to go.
			t.Debug("expected %d continuation lines but the stream ended after %d", count, i)
			return harness.AbortTest
		}
		joined.WriteString(strings.TrimSpace(line))
	}
	if joined.String() != expected {
		t.Debug("continuation lines joined to %q, expected %q", joined.String(), expected)
		return harness.Fail
	}
	return harness.Pass
}
