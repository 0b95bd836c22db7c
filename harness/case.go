package harness

import (
	"fmt"
	"io/ioutil"
	"strings"
)

// Case is one test case taken from the data stream: its sequence number
// within the current section (starting at 1), the line it came from, and
// its text with leading whitespace removed. The case itself never changes;
// only the parsing cursor used by Scan and Rest advances.
type Case struct {
	number int
	line   int
	text   string
	cursor *strings.Reader
}

// NewCase creates a Case. The execution engine constructs cases as it walks
// the stream; tests of custom TestLogger implementations may also want to.
func NewCase(number, line int, text string) *Case {
	return &Case{number: number, line: line, text: text, cursor: strings.NewReader(text)}
}

// Number returns the case's position within its section, starting at 1.
func (c *Case) Number() int { return c.number }

// Line returns the line of the data stream the case came from.
func (c *Case) Line() int { return c.line }

// Text returns the whole case as it appeared in the stream, minus leading
// whitespace.
func (c *Case) Text() string { return c.text }

// Scan parses successive whitespace-delimited fields from the case text
// into dest, continuing from wherever the previous Scan stopped.
func (c *Case) Scan(dest ...interface{}) error {
	_, err := fmt.Fscan(c.cursor, dest...)
	return err
}

// Rest returns whatever of the case text Scan has not consumed, with
// leading whitespace removed.
func (c *Case) Rest() string {
	data, _ := ioutil.ReadAll(c.cursor) // strings.Reader cannot fail
	return strings.TrimLeft(string(data), " \t")
}

func (c *Case) String() string {
	return fmt.Sprintf("[%d] (line %d)", c.number, c.line)
}
