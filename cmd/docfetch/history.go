package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/docfetch/docfetch/internal/config"
	"github.com/docfetch/docfetch/internal/database"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [site]",
		Short: "Show past documentation crawls",
		Long: `History lists crawls recorded in the local database.

Without arguments, it lists every site that has been crawled, most recent
first. With a site argument, it lists the recorded pages for that site.

Examples:
  # List all crawled sites
  docfetch history

  # Show recorded pages for one site
  docfetch history docs.example.com

  # Show more rows
  docfetch history --limit 100 docs.example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20,
		"Maximum number of history rows to show (0 = no limit)")
	cmd.Flags().String("db-dir", "",
		"Database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	// Never create the database here: an empty history is not worth an
	// empty database file on disk.
	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: false})
	if err != nil {
		return fmt.Errorf("no crawl history found (run 'docfetch fetch' first): %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) == 0 {
		return listSites(ctx, cmd, db)
	}
	return listCrawls(ctx, cmd, db, args[0], limit)
}

// listSites prints every site present in the history.
func listSites(ctx context.Context, cmd *cobra.Command, db *database.CrawlDB) error {
	sites, err := db.ListSites(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(sites) == 0 {
		fmt.Fprintln(out, "No crawls recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "Crawled sites (%d):\n\n", len(sites))
	for _, site := range sites {
		last, err := db.LastCrawl(ctx, site)
		if err != nil {
			return fmt.Errorf("failed to read last crawl for %s: %w", site, err)
		}

		if last != nil && !last.FetchedAt.IsZero() {
			fmt.Fprintf(out, "  %-40s last crawled %s\n", site, last.FetchedAt.Format("2006-01-02 15:04"))
		} else {
			fmt.Fprintf(out, "  %s\n", site)
		}
	}
	return nil
}

// listCrawls prints the recorded pages for one site, newest first.
func listCrawls(ctx context.Context, cmd *cobra.Command, db *database.CrawlDB, site string, limit int) error {
	records, err := db.ListCrawls(ctx, site, limit)
	if err != nil {
		return fmt.Errorf("failed to list crawls: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintf(out, "No crawls recorded for %s.\n", site)
		return nil
	}

	fmt.Fprintf(out, "History for %s (%d rows):\n\n", site, len(records))
	fmt.Fprintf(out, "  %-16s  %-9s  %-6s  %s\n", "FETCHED", "EXTRACTOR", "STATUS", "URL")
	fmt.Fprintf(out, "  %s\n", strings.Repeat("-", 70))
	for _, record := range records {
		fetched := "-"
		if !record.FetchedAt.IsZero() {
			fetched = record.FetchedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %-16s  %-9s  %-6d  %s\n", fetched, record.Extractor, record.StatusCode, record.URL)
	}
	return nil
}
