package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docfetch/docfetch/internal/database"
)

// seedHistory creates a history database with sample records and returns
// its directory.
func seedHistory(t *testing.T) string {
	t.Helper()

	dbDir := t.TempDir()
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	records := []database.CrawlRecord{
		{
			Site:       "docs.example.com",
			URL:        "https://docs.example.com/index.html",
			Title:      "Index",
			StatusCode: 200,
			Extractor:  "webdoc",
			FetchedAt:  time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		{
			Site:       "other.example.org",
			URL:        "https://other.example.org/",
			StatusCode: 200,
			Extractor:  "generic",
			FetchedAt:  time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	for i := range records {
		if _, err := db.InsertCrawlRecord(context.Background(), &records[i]); err != nil {
			t.Fatalf("failed to insert record: %v", err)
		}
	}

	return dbDir
}

// runHistory executes the history command with the given args and
// returns its output.
func runHistory(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewHistoryCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// TestHistoryCmd tests the history command.
func TestHistoryCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists sites most recent first", func(t *testing.T) {
		t.Parallel()

		dbDir := seedHistory(t)
		out, err := runHistory(t, "--db-dir", dbDir)
		if err != nil {
			t.Fatalf("history failed: %v", err)
		}

		if !strings.Contains(out, "docs.example.com") || !strings.Contains(out, "other.example.org") {
			t.Errorf("expected both sites listed, got:\n%s", out)
		}
		if strings.Index(out, "other.example.org") > strings.Index(out, "docs.example.com") {
			t.Errorf("expected most recently crawled site first, got:\n%s", out)
		}
	})

	t.Run("lists crawls for one site", func(t *testing.T) {
		t.Parallel()

		dbDir := seedHistory(t)
		out, err := runHistory(t, "--db-dir", dbDir, "docs.example.com")
		if err != nil {
			t.Fatalf("history failed: %v", err)
		}

		for _, want := range []string{
			"History for docs.example.com",
			"https://docs.example.com/index.html",
			"webdoc",
			"200",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("unknown site reports no crawls", func(t *testing.T) {
		t.Parallel()

		dbDir := seedHistory(t)
		out, err := runHistory(t, "--db-dir", dbDir, "never.example.com")
		if err != nil {
			t.Fatalf("history failed: %v", err)
		}
		if !strings.Contains(out, "No crawls recorded for never.example.com") {
			t.Errorf("expected no-crawls notice, got:\n%s", out)
		}
	})

	t.Run("missing database is an error", func(t *testing.T) {
		t.Parallel()

		emptyDir := filepath.Join(t.TempDir(), "empty")
		if _, err := runHistory(t, "--db-dir", emptyDir); err == nil {
			t.Error("expected error for missing database")
		}
	})
}
