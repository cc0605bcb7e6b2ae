// Package fetcher provides the HTTP fetch capability for docfetch.
//
// The rest of the system treats fetching as fetch(url) -> {status, body}.
// This package owns the HTTP client configuration (timeout, User-Agent,
// body size limit) and charset handling so that callers always receive
// UTF-8 HTML regardless of the document's declared encoding.
package fetcher
