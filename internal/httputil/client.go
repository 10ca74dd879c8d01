package httputil

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
)

// NewTransport returns the base transport shared by storefront clients.
func NewTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
}

// ReadBody reads and decompresses an HTTP response body according to its
// Content-Encoding. Callers keep ownership of resp.Body.
func ReadBody(resp *http.Response) ([]byte, error) {
	return DecodeBody(resp.Header.Get("Content-Encoding"), resp.Body)
}

// DecodeBody reads r, undoing the given content encoding.
func DecodeBody(encoding string, r io.Reader) ([]byte, error) {
	switch encoding {
	case "gzip":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer gz.Close()
		return io.ReadAll(gz)
	case "br":
		return io.ReadAll(brotli.NewReader(r))
	default:
		return io.ReadAll(r)
	}
}
