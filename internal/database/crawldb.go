package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// CrawlDB provides SQLite-based storage for crawl history.
// It manages connection pooling and provides methods for recording and
// querying past documentation crawls.
type CrawlDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// CrawlRecord is one persisted page from a crawl run.
type CrawlRecord struct {
	// ID is the auto-incremented record id.
	ID int64

	// Site is the documentation host the page belongs to.
	Site string

	// URL is the fetched page URL.
	URL string

	// Title is the page title, possibly empty.
	Title string

	// StatusCode is the HTTP status of the fetch.
	StatusCode int

	// Extractor is the strategy id that produced the content.
	Extractor string

	// ContentHash is the SHA-256 hash of the converted content.
	ContentHash string

	// ArtifactPath is the artifact file the page was appended to.
	ArtifactPath string

	// FetchedAt is when the page was fetched.
	FetchedAt time.Time
}

// Options configures CrawlDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a CrawlDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*CrawlDB, error) {
	dbPath := filepath.Join(dbDir, "docfetch.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; multiple readers don't help a
	// sequential crawler either.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cdb := &CrawlDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (cdb *CrawlDB) Close() error {
	return cdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (cdb *CrawlDB) createTables() error {
	schema := `
	-- Crawl records store individual persisted pages
	CREATE TABLE IF NOT EXISTS crawls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		site TEXT NOT NULL,
		url TEXT NOT NULL,
		title TEXT,
		status_code INTEGER,
		extractor TEXT,
		content_hash TEXT,
		artifact_path TEXT,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_crawls_site ON crawls(site);
	CREATE INDEX IF NOT EXISTS idx_crawls_url ON crawls(url);
	CREATE INDEX IF NOT EXISTS idx_crawls_fetched_at ON crawls(fetched_at);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// InsertCrawlRecord stores one persisted page and returns its id.
// History is append-only: re-crawling a page inserts a new row rather
// than updating the old one, so content changes remain visible.
func (cdb *CrawlDB) InsertCrawlRecord(ctx context.Context, record *CrawlRecord) (int64, error) {
	query := `
	INSERT INTO crawls (site, url, title, status_code, extractor, content_hash, artifact_path, fetched_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	fetchedAt := record.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	result, err := cdb.db.ExecContext(ctx, query,
		record.Site,
		record.URL,
		record.Title,
		record.StatusCode,
		record.Extractor,
		record.ContentHash,
		record.ArtifactPath,
		fetchedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert crawl record: %w", err)
	}

	return result.LastInsertId()
}

// ListSites returns the distinct sites present in the history,
// most recently crawled first.
func (cdb *CrawlDB) ListSites(ctx context.Context) ([]string, error) {
	query := `
	SELECT site FROM crawls
	GROUP BY site
	ORDER BY MAX(fetched_at) DESC
	`

	rows, err := cdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []string
	for rows.Next() {
		var site string
		if err := rows.Scan(&site); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, site)
	}

	return sites, rows.Err()
}

// ListCrawls returns the history rows for a site, newest first.
// A limit of 0 means no limit.
func (cdb *CrawlDB) ListCrawls(ctx context.Context, site string, limit int) ([]CrawlRecord, error) {
	query := `
	SELECT id, site, url, title, status_code, extractor, content_hash, artifact_path, fetched_at
	FROM crawls
	WHERE site = ?
	ORDER BY fetched_at DESC, id DESC
	`
	args := []any{site}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := cdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list crawls: %w", err)
	}
	defer rows.Close()

	var records []CrawlRecord
	for rows.Next() {
		record, err := scanCrawlRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// LastCrawl returns the most recent history row for a site, or nil when
// the site has never been crawled.
func (cdb *CrawlDB) LastCrawl(ctx context.Context, site string) (*CrawlRecord, error) {
	records, err := cdb.ListCrawls(ctx, site, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// scanCrawlRecord scans one crawls row.
func scanCrawlRecord(rows *sql.Rows) (CrawlRecord, error) {
	var record CrawlRecord
	var title, extractor, contentHash, artifactPath sql.NullString
	var timestamp string

	if err := rows.Scan(
		&record.ID,
		&record.Site,
		&record.URL,
		&title,
		&record.StatusCode,
		&extractor,
		&contentHash,
		&artifactPath,
		&timestamp,
	); err != nil {
		return CrawlRecord{}, fmt.Errorf("failed to scan crawl record: %w", err)
	}

	record.Title = title.String
	record.Extractor = extractor.String
	record.ContentHash = contentHash.String
	record.ArtifactPath = artifactPath.String
	record.FetchedAt = parseTimestamp(timestamp)

	return record, nil
}

// timestampFormats are the layouts SQLite may hand back depending on how
// the value was stored.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
