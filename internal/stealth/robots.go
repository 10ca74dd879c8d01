package stealth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/lukman83/jumia-reseller/internal/httputil"
	"github.com/temoto/robotstxt"
	"go.uber.org/zap"
)

// RobotsChecker fetches and caches robots.txt per origin.
type RobotsChecker struct {
	client   *http.Client
	cacheTTL time.Duration

	mu      sync.Mutex
	entries map[string]robotsEntry
}

type robotsEntry struct {
	data    *robotstxt.RobotsData
	expires time.Time
}

// NewRobotsChecker returns a checker that fetches robots.txt with client.
// The client must not itself route through a RobotsChecker.
func NewRobotsChecker(client *http.Client) *RobotsChecker {
	return &RobotsChecker{
		client:   client,
		cacheTTL: time.Hour,
		entries:  make(map[string]robotsEntry),
	}
}

// Allowed reports whether userAgent may fetch u. Unreachable or unparsable
// robots.txt files allow everything.
func (r *RobotsChecker) Allowed(ctx context.Context, userAgent string, u *url.URL) bool {
	data, err := r.rules(ctx, u.Scheme+"://"+u.Host)
	if err != nil {
		zap.L().Debug("robots.txt unavailable, allowing", zap.String("host", u.Host), zap.Error(err))
		return true
	}
	return data.FindGroup(userAgent).Test(u.EscapedPath())
}

func (r *RobotsChecker) rules(ctx context.Context, origin string) (*robotstxt.RobotsData, error) {
	r.mu.Lock()
	e, ok := r.entries[origin]
	r.mu.Unlock()
	if ok && time.Now().Before(e.expires) {
		return e.data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", httputil.DesktopUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer resp.Body.Close()

	// FromResponse maps 4xx to allow-all and 5xx to disallow-all.
	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	r.mu.Lock()
	r.entries[origin] = robotsEntry{data: data, expires: time.Now().Add(r.cacheTTL)}
	r.mu.Unlock()
	return data, nil
}
