// Package fetch retrieves storefront pages as HTML.
//
// Fetchers never retry: any failure is returned to the caller as a
// *NetworkError and is fatal for the request that triggered it.
package fetch

import (
	"context"
	"fmt"
)

// Fetcher retrieves the HTML of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// NetworkError reports a transport failure or a non-2xx upstream response.
type NetworkError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FetcherFunc adapts a plain function to Fetcher.
type FetcherFunc func(ctx context.Context, url string) (string, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}
