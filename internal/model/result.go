package model

import "time"

// EntryOutcome describes what happened to a single frontier entry.
type EntryOutcome string

// Outcome values recorded per frontier entry. Skipped entries were
// deduplicated against the visited set; failed entries hit a fetch,
// extraction, or conversion error and were permanently dropped.
const (
	OutcomeFetched EntryOutcome = "fetched"
	OutcomeSkipped EntryOutcome = "skipped"
	OutcomeFailed  EntryOutcome = "failed"
)

// EntryResult is the per-frontier-entry record kept for the run summary.
type EntryResult struct {
	// URL is the raw (non-normalized) URL of the frontier entry.
	URL string `json:"url"`

	// Outcome is what happened to the entry.
	Outcome EntryOutcome `json:"outcome"`

	// Title is the page title when the entry was fetched.
	Title string `json:"title,omitempty"`

	// Error holds the failure text when Outcome is OutcomeFailed.
	Error string `json:"error,omitempty"`
}

// CrawlResult aggregates everything a single run produced. It backs the
// end-of-run summary report and is not persisted beyond that.
type CrawlResult struct {
	// SeedURL is the normalized URL the crawl started from.
	SeedURL string `json:"seed_url"`

	// Site is the host of the seed URL.
	Site string `json:"site"`

	// Extractor is the detected strategy id, or "generic" when no
	// detector matched the seed page.
	Extractor string `json:"extractor"`

	// ArtifactPath is where the output artifact was written.
	ArtifactPath string `json:"artifact_path"`

	// LinksDiscovered is the number of unique frontier entries built
	// from the seed page.
	LinksDiscovered int `json:"links_discovered"`

	// Entries holds the per-entry outcomes in processing order.
	// The seed page is not an entry; it is always the first artifact block.
	Entries []EntryResult `json:"entries,omitempty"`

	// Started and Finished bound the run.
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
}

// Counts returns the number of fetched, skipped, and failed entries.
func (r *CrawlResult) Counts() (fetched, skipped, failed int) {
	for _, e := range r.Entries {
		switch e.Outcome {
		case OutcomeFetched:
			fetched++
		case OutcomeSkipped:
			skipped++
		case OutcomeFailed:
			failed++
		}
	}
	return fetched, skipped, failed
}

// PagesWritten is the number of artifact entries including the seed page.
func (r *CrawlResult) PagesWritten() int {
	fetched, _, _ := r.Counts()
	return fetched + 1
}
