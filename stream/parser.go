package stream

import (
	"strings"
	"unicode"
)

const (
	commentPrefix    = "//"
	nameMarkerPrefix = ':'
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineName
	lineCase
)

// classify reports what a raw line is, along with the meaningful text it
// carries: the name for a test-name marker (surrounding whitespace removed),
// or the payload for a test case (leading whitespace removed, the rest kept
// verbatim).
func classify(line string) (lineKind, string) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	switch {
	case trimmed == "":
		return lineBlank, ""
	case strings.HasPrefix(trimmed, commentPrefix):
		return lineComment, ""
	case trimmed[0] == nameMarkerPrefix:
		return lineName, strings.TrimSpace(trimmed[1:])
	default:
		return lineCase, trimmed
	}
}

// Parser walks a test data stream one test-name marker or test-case payload
// at a time. It holds at most one raw line of pushback, so that a case read
// which runs into the next section's marker can hand the marker back,
// unconsumed, to the following ReadTestName call.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	reader       *Reader
	pushback     string
	havePushback bool
}

// NewParser creates a Parser over r.
func NewParser(r *Reader) *Parser {
	return &Parser{reader: r}
}

// ReadTestName advances to the next test-name marker and returns the name
// it carries. Comments, blank lines, and stray case payloads in between are
// skipped. The second result is false when the stream is exhausted (or a
// read error occurred; see Err).
func (p *Parser) ReadTestName() (string, bool) {
	line, ok := p.takePushback()
	if !ok {
		line, ok = p.readLine()
	}
	for ok {
		if kind, name := classify(line); kind == lineName {
			return name, true
		}
		line, ok = p.readLine()
	}
	return "", false
}

// ReadTestCase returns the next test-case payload in the current section,
// skipping comments and blank lines. If the next meaningful line is a
// test-name marker, the marker is buffered for the next ReadTestName and
// ("", false) is returned; likewise at end of stream.
//
// Test names and cases alternate through the execution protocol, so a
// marker can never still be buffered when ReadTestCase is called. A call in
// that state is a programming error and panics.
func (p *Parser) ReadTestCase() (string, bool) {
	if p.havePushback {
		panic("stream: ReadTestCase called with an unconsumed test-name marker")
	}
	line, ok := p.readLine()
	for ok {
		kind, text := classify(line)
		switch kind {
		case lineName:
			p.pushback = line
			p.havePushback = true
			return "", false
		case lineCase:
			return text, true
		}
		line, ok = p.readLine()
	}
	return "", false
}

// Reset rewinds the stream to its beginning and discards any buffered
// marker.
func (p *Parser) Reset() error {
	p.pushback = ""
	p.havePushback = false
	return p.reader.Reset()
}

// LineCount returns the number of lines read so far. Immediately after a
// successful ReadTestCase, this is the line number the case came from.
func (p *Parser) LineCount() int {
	return p.reader.LineCount()
}

// Err returns the first I/O error, other than end of stream, seen by the
// underlying reader. For control flow such an error just ends the scan, so
// callers that care must check Err afterward.
func (p *Parser) Err() error {
	return p.reader.Err()
}

// Raw returns the line source that test bodies use to pull extra payload
// lines between cases.
func (p *Parser) Raw() LineSource {
	return p.reader
}

func (p *Parser) takePushback() (string, bool) {
	if !p.havePushback {
		return "", false
	}
	line := p.pushback
	p.pushback = ""
	p.havePushback = false
	return line, true
}

func (p *Parser) readLine() (string, bool) {
	line, err := p.reader.ReadLine()
	if err != nil {
		return "", false
	}
	return line, true
}
