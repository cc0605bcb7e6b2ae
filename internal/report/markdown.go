package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/docfetch/docfetch/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs crawl summaries in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the crawl summary in Markdown format.
func (w *MarkdownWriter) Write(result *model.CrawlResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeCounts(md, result)
	w.writeEntries(md, result)

	return len(md.String()), md.Build()
}

// writeHeader writes the summary header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.CrawlResult) {
	md.H1("Docfetch Crawl Summary")
	md.PlainText("")

	duration := "-"
	if !result.Finished.IsZero() {
		duration = result.Finished.Sub(result.Started).Round(timeRound).String()
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Site", "`" + result.Site + "`"},
			{"Seed URL", "`" + result.SeedURL + "`"},
			{"Extractor", result.Extractor},
			{"Artifact", "`" + result.ArtifactPath + "`"},
			{"Started", result.Started.Format("2006-01-02 15:04:05 MST")},
			{"Duration", duration},
		},
	})
	md.PlainText("")
}

// writeCounts writes the page-count table and an alert reflecting how
// the run went.
func (w *MarkdownWriter) writeCounts(md *markdown.Markdown, result *model.CrawlResult) {
	fetched, skipped, failed := result.Counts()

	md.H2("Pages")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count"},
		Rows: [][]string{
			{"Links discovered", strconv.Itoa(result.LinksDiscovered)},
			{"Fetched", strconv.Itoa(fetched)},
			{"Skipped", strconv.Itoa(skipped)},
			{"Failed", strconv.Itoa(failed)},
			{"**Total written**", "**" + strconv.Itoa(result.PagesWritten()) + "**"},
		},
	})
	md.PlainText("")

	switch {
	case failed > 0 && fetched == 0:
		md.Warningf("Every frontier entry failed. The artifact only holds the seed page.")
	case failed > 0:
		md.Importantf("%d frontier %s failed and %s missing from the artifact.",
			failed, plural(failed, "entry", "entries"), plural(failed, "is", "are"))
	default:
		md.Tip(fmt.Sprintf("All %d pages were written.", result.PagesWritten()))
	}
	md.PlainText("")
}

// writeEntries writes the per-entry outcome table.
func (w *MarkdownWriter) writeEntries(md *markdown.Markdown, result *model.CrawlResult) {
	md.H2("Entries")
	md.PlainText("")

	if len(result.Entries) == 0 {
		md.PlainText("The seed page had no unseen navigation links.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(result.Entries))
	for i, entry := range result.Entries {
		detail := entry.Title
		if entry.Outcome == model.OutcomeFailed {
			detail = entry.Error
		}
		rows[i] = []string{
			string(entry.Outcome),
			"`" + entry.URL + "`",
			truncateString(detail, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "URL", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")
}

// plural selects the singular or plural form for a count.
func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
