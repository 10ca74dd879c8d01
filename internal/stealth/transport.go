package stealth

import (
	"fmt"
	"net/http"

	"github.com/lukman83/jumia-reseller/internal/httputil"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Transport is an http.RoundTripper that applies the politeness pipeline
// in front of every storefront request:
// browser headers → robots.txt → rate limiter → jitter → proxy → send.
// Every stage is optional.
type Transport struct {
	Base        http.RoundTripper
	Robots      *RobotsChecker
	RateLimiter *rate.Limiter
	Delay       *HumanDelay
	Proxy       *ProxyRotator
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(ctx)
	for key, vals := range httputil.BrowserHeaders() {
		if req.Header.Get(key) == "" {
			req.Header[key] = vals
		}
	}

	if t.Robots != nil && !t.Robots.Allowed(ctx, req.Header.Get("User-Agent"), req.URL) {
		return nil, fmt.Errorf("blocked by robots.txt: %s", req.URL.Path)
	}

	if t.RateLimiter != nil {
		if err := t.RateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	if err := t.Delay.Wait(ctx); err != nil {
		return nil, fmt.Errorf("delay: %w", err)
	}

	transport := t.Base
	if t.Proxy.Len() > 0 {
		var label string
		transport, label = t.Proxy.Next()
		zap.L().Debug("routing through proxy", zap.String("proxy", label), zap.String("url", req.URL.String()))
	}
	if transport == nil {
		transport = http.DefaultTransport
	}

	return transport.RoundTrip(req)
}
