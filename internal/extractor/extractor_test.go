package extractor

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// stubStrategy is a minimal strategy for registry tests.
type stubStrategy struct {
	id      string
	matches bool
}

func (s *stubStrategy) ID() string                                { return s.id }
func (s *stubStrategy) Detect(_ *goquery.Document) bool           { return s.matches }
func (s *stubStrategy) ExtractContent(_ *goquery.Document) string { return "content:" + s.id }
func (s *stubStrategy) ExtractLinks(_ *goquery.Document) []string { return []string{"links:" + s.id} }

// TestRegistryDetect tests ordered detection.
func TestRegistryDetect(t *testing.T) {
	t.Parallel()

	doc, err := ParseHTML([]byte(`<html><body></body></html>`))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	t.Run("first matching detector wins", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry(
			&stubStrategy{id: "first", matches: false},
			&stubStrategy{id: "second", matches: true},
			&stubStrategy{id: "third", matches: true},
		)

		id, ok := r.Detect(doc)
		if !ok || id != "second" {
			t.Errorf("expected (second, true), got (%s, %v)", id, ok)
		}
	})

	t.Run("no match reports not ok", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry(&stubStrategy{id: "only", matches: false})
		if id, ok := r.Detect(doc); ok {
			t.Errorf("expected no detection, got %s", id)
		}
	})

	t.Run("webdoc page detects as webdoc", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<footer class="content-size">Documentation generated by Webdoc</footer>
		</body></html>`
		webdocDoc, err := ParseHTML([]byte(page))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		r := NewRegistry(NewWebdoc())
		id, ok := r.Detect(webdocDoc)
		if !ok || id != "webdoc" {
			t.Errorf("expected (webdoc, true), got (%s, %v)", id, ok)
		}
	})
}

// TestRegistryResolve tests extractor selection and fallback.
func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	doc, err := ParseHTML([]byte(`<html><body></body></html>`))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	t.Run("matched strategy serves both legs", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry(
			&stubStrategy{id: "a", matches: false},
			&stubStrategy{id: "b", matches: true},
		)

		content, links := r.Resolve(doc)
		if content.ID() != "b" || links.ID() != "b" {
			t.Errorf("expected both extractors from b, got %s/%s", content.ID(), links.ID())
		}
	})

	t.Run("empty registry resolves to nil pair", func(t *testing.T) {
		t.Parallel()

		content, links := NewRegistry().Resolve(doc)
		if content != nil || links != nil {
			t.Errorf("expected nil pair from empty registry, got %v/%v", content, links)
		}
	})

	t.Run("no match still returns a usable pair", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry(
			&stubStrategy{id: "a", matches: false},
			&stubStrategy{id: "b", matches: false},
		)

		content, links := r.Resolve(doc)
		if content == nil || links == nil {
			t.Fatal("expected non-nil extractor pair")
		}
		if content.ID() != "a" || links.ID() != "a" {
			t.Errorf("expected fallback to first registered strategy, got %s/%s", content.ID(), links.ID())
		}
	})
}

// TestTitle tests title extraction.
func TestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "plain title",
			html: `<html><head><title>My Docs</title></head><body></body></html>`,
			want: "My Docs",
		},
		{
			name: "title with surrounding whitespace",
			html: "<html><head><title>\n  Spaced  \n</title></head><body></body></html>",
			want: "Spaced",
		},
		{
			name: "missing title",
			html: `<html><body><p>no head</p></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseHTML([]byte(tt.html))
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}
			if got := Title(doc); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
