package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestTruncateHandler tests attribute value truncation.
func TestTruncateHandler(t *testing.T) {
	t.Parallel()

	t.Run("short values pass through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 32))

		logger.Info("fetched", "url", "https://docs.example.com/")

		out := buf.String()
		if !strings.Contains(out, "https://docs.example.com/") {
			t.Errorf("expected full URL in output, got %q", out)
		}
		if strings.Contains(out, Ellipsis) {
			t.Errorf("short value should not be truncated: %q", out)
		}
	})

	t.Run("long values are truncated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 16))

		long := strings.Repeat("<div>content</div>", 50)
		logger.Info("extracted", "fragment", long)

		out := buf.String()
		if !strings.Contains(out, Ellipsis) {
			t.Errorf("expected ellipsis marker in output, got %q", out)
		}
		if strings.Contains(out, long) {
			t.Error("full value should not appear in output")
		}
	})

	t.Run("truncation preserves utf8 boundaries", func(t *testing.T) {
		t.Parallel()

		// 3-byte runes; a cut at 8 bytes would split a rune.
		got := truncate(strings.Repeat("あ", 10), 8)
		if !strings.HasPrefix(got, "ああ") {
			t.Errorf("expected cut on rune boundary, got %q", got)
		}
		if !strings.Contains(got, "(30 bytes)") {
			t.Errorf("expected original length marker, got %q", got)
		}
	})

	t.Run("group attributes are trimmed recursively", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 16))

		logger.Info("page",
			slog.Group("content",
				slog.String("body", strings.Repeat("x", 100)),
			),
		)

		if !strings.Contains(buf.String(), Ellipsis) {
			t.Errorf("expected truncation inside group, got %q", buf.String())
		}
	})
}

// TestNewLogger tests logger construction and level selection.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)
		logger.Debug("debug message")

		if !strings.Contains(buf.String(), "debug message") {
			t.Error("expected debug message in verbose mode")
		}
	})

	t.Run("quiet suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Info("info message")

		if buf.Len() != 0 {
			t.Errorf("expected no output at info level, got %q", buf.String())
		}
	})
}
