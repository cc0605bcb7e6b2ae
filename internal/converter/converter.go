package converter

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// tagEscaper escapes angle-bracket tokens that survive conversion.
// Generic type parameters rendered as <S> or <s> in documentation would
// otherwise be swallowed as markup by downstream Markdown renderers.
var tagEscaper = strings.NewReplacer(
	"<S>", `\<S>`,
	"<s>", `\<s>`,
)

// EscapeTagTokens applies the literal <S>/<s> substitutions to converted
// text.
func EscapeTagTokens(s string) string {
	return tagEscaper.Replace(s)
}

// Converter converts markup fragments to Markdown with a raw-markup
// fallback on failure.
type Converter struct {
	// logger receives conversion-failure diagnostics.
	logger *slog.Logger

	// tempDir is where scratch HTML files are created.
	// Empty means the OS default temporary directory.
	tempDir string
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets a custom logger for conversion diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithTempDir sets the directory for scratch files. Useful in tests.
func WithTempDir(dir string) Option {
	return func(c *Converter) {
		c.tempDir = dir
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// WrapFragment wraps an extracted fragment into a minimal standalone
// document. Extractors return bare fragments; the conversion engine
// expects a complete document.
func WrapFragment(fragment string) string {
	return "<html><body>" + fragment + "</body></html>"
}

// Convert wraps the fragment, runs it through the Markdown engine, and
// escapes tag-like tokens in the result. On any failure it logs and
// returns the wrapped markup verbatim; fellBack reports which happened.
// The scratch file is removed on every exit path.
func (c *Converter) Convert(pageURL, fragment string) (text string, fellBack bool) {
	wrapped := WrapFragment(fragment)

	path, err := c.writeScratch(wrapped)
	if err != nil {
		c.logger.Warn("conversion skipped, falling back to raw markup",
			"url", pageURL,
			"error", err,
		)
		return wrapped, true
	}
	defer func() {
		// Best effort; a leftover scratch file is not worth failing over.
		_ = os.Remove(path)
	}()

	markdown, err := ConvertFile(path)
	if err != nil {
		c.logger.Warn("conversion failed, falling back to raw markup",
			"url", pageURL,
			"error", err,
		)
		return wrapped, true
	}

	return EscapeTagTokens(markdown), false
}

// ConvertFile converts a standalone HTML file to Markdown.
func ConvertFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Scratch file created by this package
	if err != nil {
		return "", fmt.Errorf("read scratch file: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(string(data))
	if err != nil {
		return "", fmt.Errorf("convert html: %w", err)
	}

	return markdown, nil
}

// writeScratch persists the wrapped document to a scratch .html file and
// returns its path. The caller owns removal.
func (c *Converter) writeScratch(wrapped string) (string, error) {
	f, err := os.CreateTemp(c.tempDir, "docfetch-*.html")
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}

	if _, err := f.WriteString(wrapped); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write scratch file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close scratch file: %w", err)
	}

	return f.Name(), nil
}
