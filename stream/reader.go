package stream

import (
	"bufio"
	"io"
	"strings"
)

// LineSource is the read-only view of a Reader that is safe to hand to test
// bodies. It deliberately omits Reset: only the execution engine may rewind
// the stream.
type LineSource interface {
	// ReadLine returns the next line of text, or io.EOF at end of stream.
	ReadLine() (string, error)
	// LineCount returns the number of lines read so far.
	LineCount() int
}

// Reader reads a seekable character stream one line at a time, keeping a
// count of the lines it has produced. It is the lowest layer of test data
// access: Parser is built on it, and test bodies use it (as a LineSource)
// to pull extra payload lines.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src       io.ReadSeeker
	buf       *bufio.Reader
	lineCount int
	err       error
}

// NewReader creates a Reader positioned at the start of src.
func NewReader(src io.ReadSeeker) *Reader {
	return &Reader{src: src, buf: bufio.NewReader(src)}
}

// ReadLine returns the next line of text, excluding the line terminator.
// Both "\n" and "\r\n" terminators are recognized. A final line with no
// terminator is still returned and counted; the call after it returns
// io.EOF. Any other error from the underlying stream is returned as-is and
// retained for Err.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.buf.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			if r.err == nil {
				r.err = err
			}
			return "", err
		}
		if line == "" {
			return "", io.EOF
		}
	}
	r.lineCount++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Reset rewinds the stream to its beginning, zeroes the line counter, and
// clears any sticky error.
func (r *Reader) Reset() error {
	if _, err := r.src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.buf.Reset(r.src)
	r.lineCount = 0
	r.err = nil
	return nil
}

// LineCount returns the number of lines read since construction or the last
// Reset. Immediately after ReadLine returns a line, this is that line's
// position in the stream, starting at 1.
func (r *Reader) LineCount() int {
	return r.lineCount
}

// Err returns the first error other than io.EOF encountered by ReadLine, if
// any. End of stream is not an error.
func (r *Reader) Err() error {
	return r.err
}
