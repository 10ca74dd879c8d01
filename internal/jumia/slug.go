package jumia

import (
	"net/url"
	"strings"
)

// Slug derives a product slug from a listing href by dropping the origin,
// the leading path separator and the ".html" suffix. Applying it to a value
// that is already a slug returns it unchanged.
func Slug(href string) string {
	href = strings.TrimSpace(href)
	if u, err := url.Parse(href); err == nil && u.Host != "" {
		_, href, _ = strings.Cut(href, u.Host)
	}
	href, _, _ = strings.Cut(href, "#")
	href, _, _ = strings.Cut(href, "?")
	href = strings.TrimLeft(href, "/")
	return strings.TrimSuffix(href, ".html")
}

// ProductURL rebuilds the storefront URL for a slug.
func ProductURL(origin, slug string) string {
	return strings.TrimSuffix(origin, "/") + "/" + slug + ".html"
}

// absolute prefixes origin to u unless it already carries a scheme.
func absolute(origin, u string) string {
	if u == "" || strings.HasPrefix(u, "http") {
		return u
	}
	return strings.TrimSuffix(origin, "/") + u
}
