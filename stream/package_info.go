// Package stream implements access to the line-oriented test data stream:
// a low-level line reader with reset semantics, and a parser that classifies
// lines and walks the stream one test-name marker or test-case payload at a
// time, with a single line of lookahead.
//
// The data grammar is deliberately small. After leading whitespace is
// removed, a line is one of:
//
//	//...          a comment; ignored
//	(blank)        ignored
//	:<name>        begins the section of cases for the named test
//	anything else  one test-case payload
//
// Test bodies may also read raw lines directly, for cases whose payload
// continues on subsequent lines. It is the data author's responsibility to
// keep such continuation lines from being mistaken for markers or cases;
// the parser has no way to detect that kind of misuse.
package stream
