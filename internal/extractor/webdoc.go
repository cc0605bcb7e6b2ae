package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Webdoc generator signature markers. Detection keys on the footer
// attribution line ("Documentation generated by Webdoc") and the
// generator's asset path rather than styling, which survives theme
// changes but breaks if the footer text is ever reworded. Acceptable:
// webdoc is one pluggable strategy among potentially many.
const (
	webdocID          = "webdoc"
	webdocHrefMarker  = "webdoc-js/webdoc"
	webdocDisplayName = "Webdoc"
	webdocFooterText  = "Documentation generated by"
)

// mainContentSelectors are tried in priority order for the main content
// container. The first existing element wins.
var mainContentSelectors = []string{
	"div.main",
}

// Webdoc extracts content and navigation links from pages generated by
// the Webdoc documentation generator. It is the reference implementation
// other strategies should follow.
type Webdoc struct{}

// NewWebdoc creates the webdoc strategy.
func NewWebdoc() *Webdoc {
	return &Webdoc{}
}

// ID returns "webdoc".
func (w *Webdoc) ID() string {
	return webdocID
}

// Detect reports whether the page was generated by Webdoc.
//
// Heuristic, short-circuiting on first success:
//  1. An anchor whose href contains the generator asset path, whose text
//     contains the display name, and whose nearest ancestor div carries
//     the footer attribution text.
//  2. A footer element with the content-size class containing both the
//     display name and the attribution text.
func (w *Webdoc) Detect(doc *goquery.Document) bool {
	found := false
	doc.Find(`a[href*="` + webdocHrefMarker + `"]`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if !strings.Contains(a.Text(), webdocDisplayName) {
			return true
		}
		parent := a.Closest("div")
		if parent.Length() > 0 && strings.Contains(parent.Text(), webdocFooterText) {
			found = true
			return false
		}
		return true
	})
	if found {
		return true
	}

	footer := doc.Find("footer.content-size").First()
	if footer.Length() > 0 &&
		strings.Contains(footer.Text(), webdocDisplayName) &&
		strings.Contains(footer.Text(), webdocFooterText) {
		return true
	}

	return false
}

// ExtractContent returns the main content of a Webdoc page as a markup
// fragment. It never fails.
//
// Policy, in order:
//  1. The first matching selector from mainContentSelectors, with
//     embedded script/style/footer elements stripped.
//  2. The document body with header/footer/nav elements and anything
//     class-marked as sidebar/menu/nav removed.
//  3. The entire document serialized as-is.
func (w *Webdoc) ExtractContent(doc *goquery.Document) string {
	for _, selector := range mainContentSelectors {
		main := doc.Find(selector).First()
		if main.Length() == 0 {
			continue
		}
		main.Find("script").Remove()
		main.Find("style").Remove()
		main.Find("footer").Remove()
		return outerHTML(main)
	}

	body := doc.Find("body").First()
	if body.Length() > 0 {
		body.Find("header, footer, nav").Remove()
		// Substring match on the class attribute: "navbar",
		// "left-sidebar", and similar all count as chrome.
		body.Find(`[class*="sidebar"], [class*="menu"], [class*="nav"]`).Remove()

		body.Find("script").Remove()
		body.Find("style").Remove()
		return outerHTML(body)
	}

	// No body at all. Serialize whatever we parsed.
	return outerHTML(doc.Selection)
}

// ExtractLinks returns the navigation links of a Webdoc page.
//
// Policy: a semantic <nav> element wins; otherwise a div with the
// navigation class; otherwise a sidebar/menu class-marked container.
// Fragment-only and script-protocol hrefs are always excluded.
func (w *Webdoc) ExtractLinks(doc *goquery.Document) []string {
	links := collectHrefs(firstOf(doc, "nav", "div.navigation"))

	// No dedicated navigation: fall back to sidebar or menu containers.
	if len(links) == 0 {
		links = collectHrefs(firstOf(doc, "div.sidebar", "div.menu", "div.side-nav"))
	}

	// Deduplicate while preserving first-seen order.
	seen := make(map[string]bool, len(links))
	unique := make([]string, 0, len(links))
	for _, link := range links {
		if !seen[link] {
			seen[link] = true
			unique = append(unique, link)
		}
	}

	return unique
}

// firstOf returns the first non-empty selection among the given selectors.
func firstOf(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, selector := range selectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// collectHrefs gathers anchor href values under root, excluding
// fragment-only ("#...") and script-protocol ("javascript:...") links.
func collectHrefs(root *goquery.Selection) []string {
	if root == nil {
		return nil
	}

	var hrefs []string
	root.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}
		hrefs = append(hrefs, href)
	})
	return hrefs
}

// outerHTML serializes a selection including its own tags. Serialization
// of a parsed tree does not fail in practice; an error yields "".
func outerHTML(sel *goquery.Selection) string {
	out, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}
