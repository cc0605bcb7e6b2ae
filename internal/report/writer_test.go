package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/docfetch/docfetch/internal/model"
)

// createTestResult creates a crawl result with sample data for testing.
func createTestResult() *model.CrawlResult {
	started := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	return &model.CrawlResult{
		SeedURL:         "https://docs.example.com",
		Site:            "docs.example.com",
		Extractor:       "webdoc",
		ArtifactPath:    "/data/docs_example_com/api_2026_03_14.md",
		LinksDiscovered: 3,
		Entries: []model.EntryResult{
			{URL: "https://docs.example.com/classes.html", Outcome: model.OutcomeFetched, Title: "Classes"},
			{URL: "https://docs.example.com/classes.html", Outcome: model.OutcomeSkipped},
			{URL: "https://docs.example.com/broken.html", Outcome: model.OutcomeFailed, Error: "unexpected status 500"},
		},
		Started:  started,
		Finished: started.Add(3 * time.Second),
	}
}

// TestSimpleWriter tests the plain-text summary format.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("default output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		n, err := w.Write(createTestResult())
		if err != nil {
			t.Fatalf("failed to write summary: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}

		got := buf.String()
		for _, want := range []string{
			"DOCFETCH CRAWL SUMMARY",
			"docs.example.com",
			"Extractor: webdoc",
			"Links discovered: 3",
			"Fetched:          1",
			"Skipped:          1",
			"Failed:           1",
			"TOTAL WRITTEN:    2 pages",
			"FAILED ENTRIES",
			"unexpected status 500",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, got)
			}
		}

		// The full entry listing only appears in verbose mode.
		if strings.Contains(got, "[+]") {
			t.Errorf("unexpected entry listing in default output:\n%s", got)
		}
	})

	t.Run("verbose lists every entry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("failed to write summary: %v", err)
		}

		got := buf.String()
		for _, want := range []string{
			"[+] https://docs.example.com/classes.html",
			"[-] https://docs.example.com/classes.html",
			"[x] https://docs.example.com/broken.html",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, got)
			}
		}
	})

	t.Run("clean run omits failures section", func(t *testing.T) {
		t.Parallel()

		result := createTestResult()
		result.Entries = result.Entries[:1]

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(result); err != nil {
			t.Fatalf("failed to write summary: %v", err)
		}

		if strings.Contains(buf.String(), "FAILED ENTRIES") {
			t.Errorf("unexpected failures section:\n%s", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown summary format.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("run with failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("failed to write summary: %v", err)
		}

		got := buf.String()
		for _, want := range []string{
			"# Docfetch Crawl Summary",
			"## Pages",
			"## Entries",
			"`docs.example.com`",
			"webdoc",
			"fetched",
			"failed",
			"unexpected status 500",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, got)
			}
		}
	})

	t.Run("empty frontier", func(t *testing.T) {
		t.Parallel()

		result := createTestResult()
		result.Entries = nil
		result.LinksDiscovered = 0

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(result); err != nil {
			t.Fatalf("failed to write summary: %v", err)
		}

		if !strings.Contains(buf.String(), "no unseen navigation links") {
			t.Errorf("expected empty-frontier notice, got:\n%s", buf.String())
		}
	})
}

// TestJSONWriter tests the JSON summary format.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact output round-trips", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		result := createTestResult()
		if _, err := w.Write(result); err != nil {
			t.Fatalf("failed to write summary: %v", err)
		}

		var decoded model.CrawlResult
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode output: %v", err)
		}
		if decoded.Site != result.Site || decoded.LinksDiscovered != result.LinksDiscovered {
			t.Errorf("round-trip mismatch: %+v", decoded)
		}
		if len(decoded.Entries) != len(result.Entries) {
			t.Errorf("expected %d entries, got %d", len(result.Entries), len(decoded.Entries))
		}
	})

	t.Run("pretty printed output is indented", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(createTestResult()); err != nil {
			t.Fatalf("failed to write summary: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"") {
			t.Errorf("expected indented output, got:\n%s", buf.String())
		}
	})
}

// TestMultiWriter tests fan-out to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, md bytes.Buffer
	w := NewMultiWriter(NewSimpleWriter(&text), NewMarkdownWriter(&md))

	n, err := w.Write(createTestResult())
	if err != nil {
		t.Fatalf("failed to write summary: %v", err)
	}
	if n == 0 {
		t.Error("expected bytes written")
	}
	if text.Len() == 0 || md.Len() == 0 {
		t.Error("expected both writers to receive output")
	}
}
