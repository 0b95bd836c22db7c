package selftest

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/casefile/casefile/harness"
)

// jsonValues checks structured payloads: each case is a JSON type name
// followed by a document, which must parse as that type and survive a
// round trip. Parsing never reads past the case, so data authors can put
// whole documents on one case line.
func jsonValues(t *harness.T) harness.Severity {
	var kind string
	if err := t.Case().Scan(&kind); err != nil {
		t.Debug("could not parse case %q: %s", t.Case().Text(), err)
		return harness.Fail
	}
	doc := t.Case().Rest()

	value := ldvalue.Parse([]byte(doc))
	if value.Type().String() != kind {
		t.Debug("expected a %s value but %q parsed as %s", kind, doc, value.Type())
		return harness.Fail
	}
	reparsed := ldvalue.Parse([]byte(value.JSONString()))
	if !value.Equal(reparsed) {
		t.Debug("%q did not survive a JSON round trip (became %q)", doc, reparsed.JSONString())
		return harness.Fail
	}
	return harness.Pass
}
