package httputil

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/require"
)

func response(encoding string, body []byte) *http.Response {
	h := http.Header{}
	if encoding != "" {
		h.Set("Content-Encoding", encoding)
	}
	return &http.Response{Header: h, Body: io.NopCloser(bytes.NewReader(body))}
}

func TestReadBody(t *testing.T) {
	const page = "<html><body>hello</body></html>"

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(page))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	var br bytes.Buffer
	bw := brotli.NewWriter(&br)
	_, err = bw.Write([]byte(page))
	require.NoError(t, err)
	require.NoError(t, bw.Close())

	for _, tc := range []struct {
		encoding string
		body     []byte
	}{
		{"", []byte(page)},
		{"gzip", gz.Bytes()},
		{"br", br.Bytes()},
	} {
		got, err := ReadBody(response(tc.encoding, tc.body))
		require.NoError(t, err, tc.encoding)
		require.Equal(t, page, string(got), tc.encoding)
	}
}

func TestReadBodyBadGzip(t *testing.T) {
	_, err := ReadBody(response("gzip", []byte("not gzip")))
	require.Error(t, err)
}

func TestBrowserHeaders(t *testing.T) {
	h := BrowserHeaders()
	for _, k := range []string{"User-Agent", "Accept", "Accept-Language", "Connection"} {
		require.NotEmpty(t, h.Get(k), k)
	}
}
