package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestPathFor tests artifact path derivation.
func TestPathFor(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	got := PathFor("/data", "docs.example.com", date)
	want := filepath.Join("/data", "docs_example_com", "api_2026_03_14.md")

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestArtifactCreateAndAppend tests the artifact block layout.
func TestArtifactCreateAndAppend(t *testing.T) {
	t.Parallel()

	t.Run("create writes header and seed block", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site", "api_2026_03_14.md")
		a := New(path)

		created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		if err := a.Create("webdoc", "https://docs.example.com", "# Seed\n\ncontent", created); err != nil {
			t.Fatalf("failed to create artifact: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read artifact: %v", err)
		}

		got := string(data)
		for _, want := range []string{
			"Created: 2026-03-14:09:26:53",
			"Extractor: webdoc",
			"https://docs.example.com",
			"# Seed",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("expected artifact to contain %q, got:\n%s", want, got)
			}
		}

		if !strings.HasPrefix(got, "----\n") {
			t.Errorf("expected artifact to start with separator, got:\n%s", got)
		}
		if !strings.HasSuffix(got, "----\n") {
			t.Errorf("expected artifact to end with separator, got:\n%s", got)
		}
	})

	t.Run("append adds page blocks in order", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "api.md")
		a := New(path)

		created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		if err := a.Create("generic", "https://docs.example.com", "seed content", created); err != nil {
			t.Fatalf("failed to create artifact: %v", err)
		}
		if err := a.Append("https://docs.example.com/one", "page one"); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
		if err := a.Append("https://docs.example.com/two", "page two"); err != nil {
			t.Fatalf("failed to append: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read artifact: %v", err)
		}

		got := string(data)
		seedIdx := strings.Index(got, "seed content")
		oneIdx := strings.Index(got, "page one")
		twoIdx := strings.Index(got, "page two")
		if seedIdx < 0 || oneIdx < 0 || twoIdx < 0 {
			t.Fatalf("missing page content in artifact:\n%s", got)
		}
		if !(seedIdx < oneIdx && oneIdx < twoIdx) {
			t.Errorf("expected append order preserved, got:\n%s", got)
		}

		// Header block carries 4 separators, each appended page 2 more.
		if n := strings.Count(got, "----"); n != 8 {
			t.Errorf("expected 8 separators, got %d:\n%s", n, got)
		}
	})

	t.Run("create fails in unwritable directory", func(t *testing.T) {
		t.Parallel()

		if os.Getuid() == 0 {
			t.Skip("directory permissions do not bind for root")
		}

		dir := t.TempDir()
		if err := os.Chmod(dir, 0500); err != nil {
			t.Fatalf("failed to chmod: %v", err)
		}
		t.Cleanup(func() { _ = os.Chmod(dir, 0700) })

		a := New(filepath.Join(dir, "sub", "api.md"))
		if err := a.Create("generic", "https://x", "c", time.Now()); err == nil {
			t.Error("expected error for unwritable directory")
		}
	})
}
