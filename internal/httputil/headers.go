package httputil

import "net/http"

// DesktopUserAgent is the browser identity sent with every storefront fetch.
const DesktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// BrowserHeaders returns the fixed browser-like header set for page fetches.
func BrowserHeaders() http.Header {
	h := http.Header{}
	h.Set("User-Agent", DesktopUserAgent)
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	h.Set("Accept-Language", "en-US,en;q=0.5")
	h.Set("Accept-Encoding", "gzip, br")
	h.Set("Connection", "keep-alive")
	return h
}
