package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Page represents one documentation page after fetch, extraction, and
// conversion. It is ephemeral: the orchestrator builds it, persists it to
// the artifact, records it in the history database, and discards it.
//
// Design decision: We keep both the converted Markdown and the content hash
// because:
//  1. Markdown is what gets appended to the artifact
//  2. The hash lets the history database detect content changes across runs
//  3. Neither requires holding the raw response once conversion is done
type Page struct {
	// URL is the full URL the page was fetched from.
	URL string `json:"url"`

	// Title is the page title from the <title> tag. Empty when absent.
	Title string `json:"title,omitempty"`

	// StatusCode is the HTTP response status code.
	StatusCode int `json:"status_code"`

	// Extractor is the id of the strategy that produced the content
	// fragment, or "generic" when no detector matched.
	Extractor string `json:"extractor"`

	// Markdown is the converted page content. When conversion fails this
	// holds the wrapped raw markup instead (fidelity traded for
	// completeness).
	Markdown string `json:"markdown"`

	// ConversionFellBack reports whether Markdown holds the raw-markup
	// fallback rather than converter output.
	ConversionFellBack bool `json:"conversion_fell_back,omitempty"`

	// Hash is the SHA-256 hash of the converted content.
	Hash string `json:"hash"`

	// FetchedAt is when the page was fetched.
	FetchedAt time.Time `json:"fetched_at"`
}

// ComputeHash fills Hash from the current Markdown content.
func (p *Page) ComputeHash() {
	sum := sha256.Sum256([]byte(p.Markdown))
	p.Hash = hex.EncodeToString(sum[:])
}
