package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/lukman83/jumia-reseller/internal/httputil"
	"go.uber.org/zap"
)

// HeadlessFetcher renders pages in a headless Chromium and returns the
// resulting DOM. It is only used when JUMIA_FETCH_MODE=headless.
type HeadlessFetcher struct {
	// ControlURL connects to an already running browser instead of
	// launching one per fetch.
	ControlURL string
	// Settle bounds how long to wait for the page to go idle.
	Settle time.Duration
}

func NewHeadlessFetcher(controlURL string) *HeadlessFetcher {
	return &HeadlessFetcher{ControlURL: controlURL, Settle: 15 * time.Second}
}

func (h *HeadlessFetcher) Fetch(ctx context.Context, url string) (string, error) {
	zap.L().Info("rendering page", zap.String("url", url))

	page, cleanup, err := h.openPage(ctx, url)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}
	defer cleanup()

	timed := page.Timeout(h.Settle)
	if err := timed.WaitLoad(); err != nil {
		return "", &NetworkError{URL: url, Err: fmt.Errorf("wait load: %w", err)}
	}
	if err := timed.WaitStable(time.Second); err == nil {
		_ = timed.WaitDOMStable(2*time.Second, 0.1)
	}

	content, err := page.HTML()
	if err != nil {
		return "", &NetworkError{URL: url, Err: fmt.Errorf("get page HTML: %w", err)}
	}
	return content, nil
}

func (h *HeadlessFetcher) openPage(ctx context.Context, pageURL string) (*rod.Page, func(), error) {
	controlURL := h.ControlURL
	var l *launcher.Launcher
	if controlURL == "" {
		l = launcher.New().Headless(true).Logger(io.Discard)
		if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
			l = l.Bin(bin)
		}
		var err error
		controlURL, err = l.Launch()
		if err != nil {
			return nil, nil, fmt.Errorf("launch browser: %w", err)
		}
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		if l != nil {
			l.Kill()
		}
		return nil, nil, fmt.Errorf("connect browser: %w", err)
	}

	closeAll := func() {
		browser.Close()
		if l != nil {
			l.Cleanup()
		}
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("open page: %w", err)
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      httputil.DesktopUserAgent,
		AcceptLanguage: "en-US,en;q=0.5",
	}); err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("set user agent: %w", err)
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  1920,
		Height: 1080,
	}); err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("set viewport: %w", err)
	}
	if err := page.Navigate(pageURL); err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("navigate: %w", err)
	}

	cleanup := func() {
		page.Close()
		closeAll()
	}
	return page, cleanup, nil
}
