package harness

import (
	"io"

	"github.com/acarl005/stripansi"
)

// NewStripWriter wraps w so that ANSI escape sequences are removed from
// everything written through it. It is used to mirror the colored console
// report into a plain-text file. Each Write is stripped independently, so
// the writer above it must not split an escape sequence across two calls
// (the color and table renderers used here never do).
func NewStripWriter(w io.Writer) io.Writer {
	return stripWriter{w: w}
}

type stripWriter struct {
	w io.Writer
}

func (s stripWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(s.w, stripansi.Strip(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
