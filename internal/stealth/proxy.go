package stealth

import (
	"bufio"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
)

// ProxyRotator cycles upstream requests through a fixed list of proxies.
type ProxyRotator struct {
	transports []http.RoundTripper
	labels     []string
	mu         sync.Mutex
	idx        int
}

// NewProxyRotator builds one transport per proxy URL. It returns nil when
// rawURLs is empty so callers can treat "no proxies" as direct routing.
func NewProxyRotator(rawURLs []string) (*ProxyRotator, error) {
	if len(rawURLs) == 0 {
		return nil, nil
	}
	r := &ProxyRotator{}
	for _, raw := range rawURLs {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse proxy %q: %w", raw, err)
		}
		if u.Host == "" {
			return nil, fmt.Errorf("proxy %q has no host", raw)
		}
		r.transports = append(r.transports, &http.Transport{
			Proxy:             http.ProxyURL(u),
			DisableKeepAlives: true,
		})
		r.labels = append(r.labels, u.Redacted())
	}
	return r, nil
}

// LoadProxyFile reads one proxy URL per line. Blank lines and lines starting
// with '#' are skipped.
func LoadProxyFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// Next returns the next transport in round-robin order and its label.
func (p *ProxyRotator) Next() (http.RoundTripper, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.idx % len(p.transports)
	p.idx++
	return p.transports[i], p.labels[i]
}

// Len is the number of configured proxies.
func (p *ProxyRotator) Len() int {
	if p == nil {
		return 0
	}
	return len(p.transports)
}
