// Package selftest contains the harness's own data-driven test suite: a
// small set of test objects whose cases, in testdata/selftest.txt, exercise
// the data format, the case parsing cursor, and the severity protocol end
// to end. The casefile command registers these at startup, which makes the
// binary both a working example and a self-check.
package selftest
