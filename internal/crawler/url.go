package crawler

import (
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a URL for visited-set comparison: the
// fragment is dropped, trailing slashes are stripped from the path, and
// the query string is kept. URLs that differ only by fragment or
// trailing slash normalize to the same string.
//
// Unparseable input is returned unchanged; a bad URL fails loudly at
// fetch time rather than silently here.
func NormalizeURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	// EscapedPath keeps percent-encoded octets intact: /a%2Fb and /a/b
	// are different resources and must not alias in the visited set.
	normalized := parsed.Scheme + "://" + parsed.Host + strings.TrimRight(parsed.EscapedPath(), "/")
	if parsed.RawQuery != "" {
		normalized += "?" + parsed.RawQuery
	}
	return normalized
}

// ResolveURL resolves a possibly relative href against a base URL.
// Absolute hrefs pass through untouched. Unparseable input is returned
// unchanged for the same reason as NormalizeURL.
func ResolveURL(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return baseURL.ResolveReference(ref).String()
}
