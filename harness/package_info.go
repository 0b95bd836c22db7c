// Package harness contains the core of the data-driven test harness: a
// registry of named test objects, and an execution engine that walks a test
// data stream and applies each section of cases to the matching test.
//
// The general model is:
//
// 1. The application registers uniquely named tests in a Registry during
// startup, before any run entry point is used. Each test is a name plus a
// body function that is handed one test case at a time.
//
// 2. A Suite binds the registry to a test data stream. Each run entry point
// (RunOne, RunGroup, RunAll) rewinds the stream and then follows stream
// order: every section whose marker names a requested test has its cases
// applied, one by one, numbered from 1 within the section.
//
// 3. A test body reports a Severity for each case. Fail records the case
// and moves on; AbortTest also skips the rest of the section; AbortAll ends
// the whole run. Totals for everything that did run are still reported.
//
// Rendering is entirely up to the TestLogger implementation that receives
// the report events; the engine itself produces no output.
// ConsoleTestLogger is the standard renderer.
//
// Reading and parsing of the data stream itself is in the lower-level
// stream package.
package harness
