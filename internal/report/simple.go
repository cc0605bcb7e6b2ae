package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/docfetch/docfetch/internal/model"
)

// timeRound is the granularity durations are rounded to for display.
const timeRound = 100 * time.Millisecond

// SimpleWriter outputs human-readable text summaries.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables the per-entry listing in addition to the counts.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables the per-entry listing.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the crawl summary in human-readable format.
func (w *SimpleWriter) Write(result *model.CrawlResult) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	w.writeCounts(&sb, result)
	w.writeFailures(&sb, result)
	if w.verbose {
		w.writeEntries(&sb, result)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the summary header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *model.CrawlResult) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         DOCFETCH CRAWL SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Site:      %s\n", result.Site))
	sb.WriteString(fmt.Sprintf("Seed URL:  %s\n", result.SeedURL))
	sb.WriteString(fmt.Sprintf("Extractor: %s\n", result.Extractor))
	sb.WriteString(fmt.Sprintf("Artifact:  %s\n", result.ArtifactPath))
	sb.WriteString(fmt.Sprintf("Started:   %s\n", result.Started.Format("2006-01-02 15:04:05 MST")))
	if !result.Finished.IsZero() {
		sb.WriteString(fmt.Sprintf("Duration:  %s\n", result.Finished.Sub(result.Started).Round(timeRound)))
	}
	sb.WriteString("\n")
}

// writeCounts writes the page-count section.
func (w *SimpleWriter) writeCounts(sb *strings.Builder, result *model.CrawlResult) {
	fetched, skipped, failed := result.Counts()

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PAGES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Links discovered: %d\n", result.LinksDiscovered))
	sb.WriteString(fmt.Sprintf("  Fetched:          %d\n", fetched))
	sb.WriteString(fmt.Sprintf("  Skipped:          %d\n", skipped))
	sb.WriteString(fmt.Sprintf("  Failed:           %d\n", failed))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  TOTAL WRITTEN:    %d pages (including seed)\n", result.PagesWritten()))
	sb.WriteString("\n")
}

// writeFailures lists failed entries. Shown regardless of verbosity;
// failures are the part of a summary worth reading.
func (w *SimpleWriter) writeFailures(sb *strings.Builder, result *model.CrawlResult) {
	_, _, failed := result.Counts()
	if failed == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("FAILED ENTRIES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, entry := range result.Entries {
		if entry.Outcome != model.OutcomeFailed {
			continue
		}
		sb.WriteString(fmt.Sprintf("  [x] %s\n", entry.URL))
		if entry.Error != "" {
			sb.WriteString(fmt.Sprintf("      %s\n", entry.Error))
		}
	}
	sb.WriteString("\n")
}

// writeEntries lists every frontier entry with its outcome.
func (w *SimpleWriter) writeEntries(sb *strings.Builder, result *model.CrawlResult) {
	if len(result.Entries) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("ENTRIES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, entry := range result.Entries {
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", entryIndicator(entry.Outcome), entry.URL))
		if entry.Title != "" {
			sb.WriteString(fmt.Sprintf("      %s\n", entry.Title))
		}
	}
	sb.WriteString("\n")
}

// entryIndicator returns a one-character marker for an entry outcome.
func entryIndicator(outcome model.EntryOutcome) string {
	switch outcome {
	case model.OutcomeFetched:
		return "+"
	case model.OutcomeSkipped:
		return "-"
	case model.OutcomeFailed:
		return "x"
	default:
		return "?"
	}
}
