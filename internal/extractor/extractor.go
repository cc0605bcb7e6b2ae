package extractor

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// GenericID is the extractor id recorded when no strategy's detector
// matches the page. The artifact header uses it verbatim.
const GenericID = "generic"

// Strategy bundles format detection with the extraction logic for one
// documentation-generator template.
//
// All three methods operate on a parsed document. ExtractContent may prune
// the document in place (scripts, navigation chrome); the orchestrator
// parses each page fresh, so pruning never leaks across pages.
type Strategy interface {
	// ID returns the strategy's stable identifier (e.g., "webdoc").
	ID() string

	// Detect reports whether the page was produced by this strategy's
	// generator. Detection is read-only over the document.
	Detect(doc *goquery.Document) bool

	// ExtractContent returns the page's main content as a markup
	// fragment with boilerplate stripped. It never fails: the worst
	// case is the whole document serialized as-is.
	ExtractContent(doc *goquery.Document) string

	// ExtractLinks returns the navigation links found on the page as
	// raw href values, deduplicated in first-seen order. An empty
	// result is a valid terminal state, not an error.
	ExtractLinks(doc *goquery.Document) []string
}

// Registry holds the ordered list of known strategies.
type Registry struct {
	strategies []Strategy
}

// NewRegistry creates a Registry with the given strategies.
// Order matters: detectors run in the order given, first match wins,
// and the first strategy doubles as the fallback extractor.
func NewRegistry(strategies ...Strategy) *Registry {
	return &Registry{strategies: strategies}
}

// Detect runs each strategy's detector in registration order and returns
// the id of the first match. ok is false when nothing matched.
func (r *Registry) Detect(doc *goquery.Document) (id string, ok bool) {
	for _, s := range r.strategies {
		if s.Detect(doc) {
			return s.ID(), true
		}
	}
	return "", false
}

// Resolve returns the content and link extractors to use for the page.
// It always returns a usable pair even when no detector matches, and a
// nil pair when the registry is empty.
//
// The two legs fall back independently: content extraction falls back to
// the first registered strategy, and the link extractor is looked up
// through the detected-or-first id. This mirrors the original dispatch
// table exactly; content extraction degrades across templates more
// gracefully than link extraction does, so the asymmetry is intentional.
func (r *Registry) Resolve(doc *goquery.Document) (content, links Strategy) {
	if len(r.strategies) == 0 {
		return nil, nil
	}

	if id, ok := r.Detect(doc); ok {
		if s := r.byID(id); s != nil {
			return s, s
		}
	}

	first := r.strategies[0]
	links = r.byID(GenericID)
	if links == nil {
		links = first
	}
	return first, links
}

// byID returns the strategy with the given id, or nil.
func (r *Registry) byID(id string) Strategy {
	for _, s := range r.strategies {
		if s.ID() == id {
			return s
		}
	}
	return nil
}

// ParseHTML parses an HTML body into a queryable document.
func ParseHTML(body []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

// Title returns the page title from the <title> tag, or "".
func Title(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}
