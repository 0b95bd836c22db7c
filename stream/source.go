package stream

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
)

// OpenSource opens a test data source. A local path opens as a file; an
// http:// or https:// URL is fetched once and served from memory, so that
// the execution engine can rewind it between runs just like a file.
//
// On success the returned Closer is never nil and must be closed by the
// caller when the run ends.
func OpenSource(pathOrURL string) (io.ReadSeeker, io.Closer, error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return fetchSource(pathOrURL)
	}
	f, err := os.Open(pathOrURL)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func fetchSource(url string) (io.ReadSeeker, io.Closer, error) {
	resp, err := http.DefaultClient.Get(url)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("test data request to %s returned HTTP %d", url, resp.StatusCode)
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return bytes.NewReader(data), noopCloser{}, nil
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }
