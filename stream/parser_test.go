package stream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleData = `// header comment
:first
case one
  case two

:second
// comment inside a section
payload
:third
`

func newTestParser(data string) *Parser {
	return NewParser(NewReader(strings.NewReader(data)))
}

func TestClassifyLine(t *testing.T) {
	for _, p := range []struct {
		line string
		kind lineKind
		text string
	}{
		{"", lineBlank, ""},
		{"   \t ", lineBlank, ""},
		{"// a comment", lineComment, ""},
		{"   // indented comment", lineComment, ""},
		{":name", lineName, "name"},
		{"  : spaced name\t", lineName, "spaced name"},
		{":", lineName, ""},
		{"payload", lineCase, "payload"},
		{"  payload with trailing  ", lineCase, "payload with trailing  "},
		{"/ not a comment", lineCase, "/ not a comment"},
		{"x:y", lineCase, "x:y"},
	} {
		kind, text := classify(p.line)
		assert.Equal(t, p.kind, kind, "line %q", p.line)
		assert.Equal(t, p.text, text, "line %q", p.line)
	}
}

func TestParserReadTestNameSkipsEverythingButMarkers(t *testing.T) {
	p := newTestParser("// comment\n\nstray payload\n:target\n")

	name, ok := p.ReadTestName()
	require.True(t, ok)
	assert.Equal(t, "target", name)

	_, ok = p.ReadTestName()
	assert.False(t, ok)
}

func TestParserTrimsWhitespaceAroundTestName(t *testing.T) {
	p := newTestParser("  :  padded name  \n")

	name, ok := p.ReadTestName()
	require.True(t, ok)
	assert.Equal(t, "padded name", name)
}

func TestParserReadTestCaseTrimsLeadingButNotTrailingWhitespace(t *testing.T) {
	p := newTestParser(":t\n\t  payload text  \n")

	_, ok := p.ReadTestName()
	require.True(t, ok)

	text, ok := p.ReadTestCase()
	require.True(t, ok)
	assert.Equal(t, "payload text  ", text)
}

func TestParserReadTestCaseSkipsCommentsAndBlankLines(t *testing.T) {
	p := newTestParser(":t\n// note\n\ncase A\n\ncase B\n")

	_, ok := p.ReadTestName()
	require.True(t, ok)

	text, ok := p.ReadTestCase()
	require.True(t, ok)
	assert.Equal(t, "case A", text)

	text, ok = p.ReadTestCase()
	require.True(t, ok)
	assert.Equal(t, "case B", text)

	_, ok = p.ReadTestCase()
	assert.False(t, ok)
}

func TestParserPushesMarkerBackForNextReadTestName(t *testing.T) {
	p := newTestParser(":first\ncase one\n:second\ncase two\n")

	name, ok := p.ReadTestName()
	require.True(t, ok)
	require.Equal(t, "first", name)

	text, ok := p.ReadTestCase()
	require.True(t, ok)
	require.Equal(t, "case one", text)

	// This read hits the ":second" marker; the marker must be held back.
	_, ok = p.ReadTestCase()
	require.False(t, ok)

	name, ok = p.ReadTestName()
	require.True(t, ok)
	assert.Equal(t, "second", name)

	text, ok = p.ReadTestCase()
	require.True(t, ok)
	assert.Equal(t, "case two", text)
}

func TestParserPanicsOnReadTestCaseWithBufferedMarker(t *testing.T) {
	p := newTestParser(":first\n:second\n")

	_, ok := p.ReadTestName()
	require.True(t, ok)
	_, ok = p.ReadTestCase() // buffers ":second"
	require.False(t, ok)

	assert.Panics(t, func() { p.ReadTestCase() })
}

func TestParserLineCountAfterReadTestCase(t *testing.T) {
	p := newTestParser("// line 1\n:t\n\ncase on line 4\ncase on line 5\n")

	_, ok := p.ReadTestName()
	require.True(t, ok)

	_, ok = p.ReadTestCase()
	require.True(t, ok)
	assert.Equal(t, 4, p.LineCount())

	_, ok = p.ReadTestCase()
	require.True(t, ok)
	assert.Equal(t, 5, p.LineCount())
}

func TestParserWalksWholeStream(t *testing.T) {
	p := newTestParser(sampleData)

	name, ok := p.ReadTestName()
	require.True(t, ok)
	assert.Equal(t, "first", name)

	var cases []string
	for {
		text, ok := p.ReadTestCase()
		if !ok {
			break
		}
		cases = append(cases, text)
	}
	assert.Equal(t, []string{"case one", "case two"}, cases)

	name, ok = p.ReadTestName()
	require.True(t, ok)
	assert.Equal(t, "second", name)

	text, ok := p.ReadTestCase()
	require.True(t, ok)
	assert.Equal(t, "payload", text)

	_, ok = p.ReadTestCase()
	require.False(t, ok)

	name, ok = p.ReadTestName()
	require.True(t, ok)
	assert.Equal(t, "third", name)

	_, ok = p.ReadTestCase()
	assert.False(t, ok)
	_, ok = p.ReadTestName()
	assert.False(t, ok)
	assert.NoError(t, p.Err())
}

func TestParserResetDiscardsBufferedMarker(t *testing.T) {
	p := newTestParser(":first\ncase\n:second\n")

	_, ok := p.ReadTestName()
	require.True(t, ok)
	_, ok = p.ReadTestCase()
	require.True(t, ok)
	_, ok = p.ReadTestCase() // buffers ":second"
	require.False(t, ok)

	require.NoError(t, p.Reset())

	name, ok := p.ReadTestName()
	require.True(t, ok)
	assert.Equal(t, "first", name)
	assert.Equal(t, 1, p.LineCount())
}

func TestParserRawSharesPositionWithParser(t *testing.T) {
	p := newTestParser(":t\ncase 1\nextra line\ncase 2\n")

	_, ok := p.ReadTestName()
	require.True(t, ok)
	_, ok = p.ReadTestCase()
	require.True(t, ok)

	line, err := p.Raw().ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "extra line", line)
	assert.Equal(t, 3, p.LineCount())

	text, ok := p.ReadTestCase()
	require.True(t, ok)
	assert.Equal(t, "case 2", text)
}

func TestParserSurfacesReadErrorThroughErr(t *testing.T) {
	src := &failingSource{data: []byte(":t\ncase\n"), failure: assert.AnError}
	p := NewParser(NewReader(src))

	_, ok := p.ReadTestName()
	require.True(t, ok)
	_, ok = p.ReadTestCase()
	require.True(t, ok)

	// The failure looks like end of stream to control flow...
	_, ok = p.ReadTestCase()
	require.False(t, ok)
	// ...but is reported here.
	assert.Equal(t, assert.AnError, p.Err())
}
