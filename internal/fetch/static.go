package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/lukman83/jumia-reseller/internal/httputil"
	"go.uber.org/zap"
)

// StaticFetcher downloads raw server-rendered HTML.
type StaticFetcher struct {
	client *resty.Client
}

// NewStaticFetcher wraps hc, usually built on a stealth.Transport.
// Retries stay disabled.
func NewStaticFetcher(hc *http.Client) *StaticFetcher {
	client := resty.NewWithClient(hc).
		SetRetryCount(0).
		SetHeaders(flatten(httputil.BrowserHeaders()))
	return &StaticFetcher{client: client}
}

func (s *StaticFetcher) Fetch(ctx context.Context, url string) (string, error) {
	zap.L().Info("fetching page", zap.String("url", url))

	res, err := s.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}
	raw := res.RawResponse
	defer raw.Body.Close()

	if raw.StatusCode < 200 || raw.StatusCode > 299 {
		return "", &NetworkError{
			URL:        url,
			StatusCode: raw.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", raw.Status),
		}
	}

	body, err := httputil.ReadBody(raw)
	if err != nil {
		return "", &NetworkError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	return string(bytes.ToValidUTF8(body, []byte("�"))), nil
}

func flatten(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}
