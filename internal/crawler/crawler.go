package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/docfetch/docfetch/internal/artifact"
	"github.com/docfetch/docfetch/internal/converter"
	"github.com/docfetch/docfetch/internal/database"
	"github.com/docfetch/docfetch/internal/extractor"
	"github.com/docfetch/docfetch/internal/fetcher"
	"github.com/docfetch/docfetch/internal/model"
)

// Crawler drives one documentation crawl from seed to finished artifact.
type Crawler struct {
	// fetcher retrieves pages over HTTP.
	fetcher *fetcher.Fetcher

	// registry resolves the extraction strategy for the seed page.
	registry *extractor.Registry

	// converter turns extracted fragments into Markdown.
	converter *converter.Converter

	// db records crawl history. Nil disables recording.
	db *database.CrawlDB

	// logger receives per-page progress and failure diagnostics.
	logger *slog.Logger

	// delay is the blocking wait before each frontier fetch.
	// The seed fetch is never delayed.
	delay time.Duration

	// maxPages caps how many frontier entries are fetched.
	// 0 means the whole frontier.
	maxPages int

	// outputDir is the directory artifacts are written under.
	outputDir string

	// now returns the current time. Overridable in tests so artifact
	// names and header timestamps are deterministic.
	now func() time.Time
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithDelay sets the inter-request delay between frontier fetches.
func WithDelay(d time.Duration) Option {
	return func(c *Crawler) {
		c.delay = d
	}
}

// WithMaxPages caps the number of frontier entries fetched.
func WithMaxPages(n int) Option {
	return func(c *Crawler) {
		c.maxPages = n
	}
}

// WithOutputDir sets the directory artifacts are written under.
func WithOutputDir(dir string) Option {
	return func(c *Crawler) {
		c.outputDir = dir
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) {
		c.logger = logger
	}
}

// WithDatabase enables crawl-history recording.
func WithDatabase(db *database.CrawlDB) Option {
	return func(c *Crawler) {
		c.db = db
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Crawler) {
		c.now = now
	}
}

// New creates a Crawler from its three capabilities plus options.
func New(f *fetcher.Fetcher, reg *extractor.Registry, conv *converter.Converter, opts ...Option) *Crawler {
	c := &Crawler{
		fetcher:   f,
		registry:  reg,
		converter: conv,
		delay:     time.Second,
		outputDir: ".",
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.now == nil {
		c.now = time.Now
	}

	return c
}

// Run executes one crawl starting from seedURL.
//
// The seed page is fetched, its format detected, and its converted
// content written as the first artifact entry. The frontier is the seed
// page's navigation links, resolved and deduplicated against the seed
// itself. Frontier entries are then drained one at a time: delay, mark
// visited, fetch, extract, convert, append. A failing entry is logged
// and skipped; only seed-fetch and artifact-write failures abort the
// run.
func (c *Crawler) Run(ctx context.Context, seedURL string) (*model.CrawlResult, error) {
	started := c.now()
	seed := NormalizeURL(seedURL)

	site, err := siteOf(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeedFetch, err)
	}

	c.logger.Info("starting crawl", "seed", seed, "site", site)

	resp, err := c.fetcher.Fetch(ctx, seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeedFetch, err)
	}

	doc, err := extractor.ParseHTML(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeedParse, err)
	}

	extractorID, ok := c.registry.Detect(doc)
	if !ok {
		extractorID = extractor.GenericID
	}
	contentStrategy, linkStrategy := c.registry.Resolve(doc)

	c.logger.Debug("detected documentation format", "extractor", extractorID)

	// Links first: content extraction prunes the document in place and
	// would take the navigation with it.
	visited := map[string]bool{seed: true}
	frontier := c.buildFrontier(resp.FinalURL, linkStrategy.ExtractLinks(doc), visited)

	result := &model.CrawlResult{
		SeedURL:         seed,
		Site:            site,
		Extractor:       extractorID,
		LinksDiscovered: len(frontier),
		Started:         started,
	}

	art := artifact.New(artifact.PathFor(c.outputDir, site, started))
	result.ArtifactPath = art.Path()

	seedPage := c.buildPage(seed, resp, doc, contentStrategy, extractorID)
	if err := art.Create(extractorID, seed, seedPage.Markdown, started); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArtifactWrite, err)
	}
	c.record(ctx, site, seedPage, art.Path())

	c.logger.Info("frontier built", "links", len(frontier), "artifact", art.Path())

	if err := c.drain(ctx, art, site, frontier, visited, contentStrategy, extractorID, result); err != nil {
		return nil, err
	}

	result.Finished = c.now()
	fetched, skipped, failed := result.Counts()
	c.logger.Info("crawl finished",
		"fetched", fetched,
		"skipped", skipped,
		"failed", failed,
	)

	return result, nil
}

// buildFrontier resolves and filters the seed page's links. Entries
// already in the visited set (the seed itself) are dropped; discovery
// order is preserved. Duplicates that survive here are caught again
// while draining.
func (c *Crawler) buildFrontier(base string, hrefs []string, visited map[string]bool) []string {
	var frontier []string
	for _, href := range hrefs {
		abs := ResolveURL(base, href)
		if visited[NormalizeURL(abs)] {
			continue
		}
		frontier = append(frontier, abs)
	}
	return frontier
}

// drain processes frontier entries sequentially until the frontier is
// exhausted, the page cap is reached, or the context is canceled.
func (c *Crawler) drain(ctx context.Context, art *artifact.Artifact, site string, frontier []string, visited map[string]bool, content extractor.Strategy, extractorID string, result *model.CrawlResult) error {
	processed := 0
	for _, entry := range frontier {
		if c.maxPages > 0 && processed >= c.maxPages {
			c.logger.Info("page cap reached, stopping", "cap", c.maxPages)
			break
		}

		normalized := NormalizeURL(entry)
		if visited[normalized] {
			c.logger.Debug("skipping already visited page", "url", entry)
			result.Entries = append(result.Entries, model.EntryResult{
				URL:     entry,
				Outcome: model.OutcomeSkipped,
			})
			continue
		}

		if err := c.wait(ctx); err != nil {
			return err
		}
		visited[normalized] = true
		processed++

		page, err := c.fetchPage(ctx, entry, content, extractorID)
		if err != nil {
			c.logger.Warn("failed to process page, skipping", "url", entry, "error", err)
			result.Entries = append(result.Entries, model.EntryResult{
				URL:     entry,
				Outcome: model.OutcomeFailed,
				Error:   err.Error(),
			})
			continue
		}

		if err := art.Append(entry, page.Markdown); err != nil {
			return fmt.Errorf("%w: %w", ErrArtifactWrite, err)
		}
		c.record(ctx, site, page, art.Path())

		c.logger.Debug("fetched page", "url", entry, "title", page.Title)
		result.Entries = append(result.Entries, model.EntryResult{
			URL:     entry,
			Outcome: model.OutcomeFetched,
			Title:   page.Title,
		})
	}

	return nil
}

// fetchPage retrieves and converts one frontier entry using the content
// strategy chosen on the seed page.
func (c *Crawler) fetchPage(ctx context.Context, pageURL string, content extractor.Strategy, extractorID string) (*model.Page, error) {
	resp, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := extractor.ParseHTML(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	return c.buildPage(pageURL, resp, doc, content, extractorID), nil
}

// buildPage extracts, converts, and hashes one parsed page.
func (c *Crawler) buildPage(pageURL string, resp *fetcher.Response, doc *goquery.Document, content extractor.Strategy, extractorID string) *model.Page {
	title := extractor.Title(doc)
	fragment := content.ExtractContent(doc)
	markdown, fellBack := c.converter.Convert(pageURL, fragment)

	page := &model.Page{
		URL:                pageURL,
		Title:              title,
		StatusCode:         resp.StatusCode,
		Extractor:          extractorID,
		Markdown:           markdown,
		ConversionFellBack: fellBack,
		FetchedAt:          c.now(),
	}
	page.ComputeHash()
	return page
}

// record writes one page to the history database. Recording is best
// effort: history must never abort a crawl that is otherwise producing
// its artifact.
func (c *Crawler) record(ctx context.Context, site string, page *model.Page, artifactPath string) {
	if c.db == nil {
		return
	}

	_, err := c.db.InsertCrawlRecord(ctx, &database.CrawlRecord{
		Site:         site,
		URL:          page.URL,
		Title:        page.Title,
		StatusCode:   page.StatusCode,
		Extractor:    page.Extractor,
		ContentHash:  page.Hash,
		ArtifactPath: artifactPath,
		FetchedAt:    page.FetchedAt,
	})
	if err != nil {
		c.logger.Warn("failed to record crawl history", "url", page.URL, "error", err)
	}
}

// wait blocks for the inter-request delay, returning early when the
// context is canceled.
func (c *Crawler) wait(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// siteOf returns the host of a URL.
func siteOf(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("url %q has no host", rawURL)
	}
	return parsed.Host, nil
}
