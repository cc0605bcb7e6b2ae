package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/docfetch/docfetch/internal/config"
	"github.com/docfetch/docfetch/internal/converter"
	"github.com/docfetch/docfetch/internal/crawler"
	"github.com/docfetch/docfetch/internal/database"
	"github.com/docfetch/docfetch/internal/extractor"
	"github.com/docfetch/docfetch/internal/fetcher"
	"github.com/docfetch/docfetch/internal/log"
	"github.com/docfetch/docfetch/internal/model"
	"github.com/docfetch/docfetch/internal/report"
	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Crawl a documentation site into a Markdown artifact",
		Long: `Fetch crawls a documentation site starting from the given seed URL.

The seed page is fetched and its documentation generator detected. Navigation
links found on the seed page form the frontier; each frontier page is fetched
(one level deep only), stripped of boilerplate, converted to Markdown, and
appended to the run's artifact file:

  <output-dir>/<domain with dots as underscores>/api_<YYYY_MM_DD>.md

Examples:
  # Crawl a documentation site with defaults
  docfetch fetch https://docs.example.com/api/

  # Slow down and cap the number of pages
  docfetch fetch --delay 2s --max-pages 20 https://docs.example.com/api/

  # Write the artifact under a specific directory
  docfetch fetch -o ./artifacts https://docs.example.com/api/

  # Also write a Markdown run summary
  docfetch fetch -r summary.md https://docs.example.com/api/

Configuration file (.docfetch) example:
  defaults:
    delay: 1s
  sites:
    docs.example.com:
      delay: 3s
      maxPages: 50
      outputDir: ./example-docs`,
		Args: cobra.ExactArgs(1),
		RunE: runFetchCmd,
	}

	// Crawl behavior flags
	cmd.Flags().DurationP("delay", "d", config.DefaultDelay,
		"Delay between page requests (the seed fetch is never delayed)")
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum number of frontier pages to fetch (0 = no limit)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Connection timeout for each request")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent header to send")

	// Output flags
	cmd.Flags().StringP("output-dir", "o", "",
		"Directory artifacts are written under (default: XDG data directory)")
	cmd.Flags().StringP("report", "r", "",
		"Write a Markdown run summary to the specified file")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .docfetch in current or home directory)")

	return cmd
}

// runFetchCmd executes the fetch command.
func runFetchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runFetch(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
// Precedence, lowest to highest: built-in defaults, then the config
// file's site section for the target host, then flags the user
// explicitly set.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.TargetURL = args[0]
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load site-specific configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.SiteConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.SiteConfigs = &config.File{
			Sites: make(map[string]config.SiteConfig),
		}
	}

	// Apply the config file's settings for the target host before flags
	// so explicit flags always win.
	if host := targetHost(cfg.TargetURL); host != "" {
		cfg.Apply(cfg.SiteConfigs.GetSiteConfig(host))
	}

	if cmd.Flags().Changed("delay") {
		cfg.Delay, err = cmd.Flags().GetDuration("delay")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages, err = cmd.Flags().GetInt("max-pages")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, err = cmd.Flags().GetString("output-dir")
		if err != nil {
			return nil, err
		}
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}

	// Always record history using the XDG data directory.
	cfg.DBDir = config.XDGDataDir()

	return cfg, nil
}

// targetHost extracts the host from the target URL, or "".
func targetHost(target string) string {
	parsed, err := url.Parse(target)
	if err != nil {
		return ""
	}
	return parsed.Host
}

// runFetch executes the crawl.
func runFetch(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting fetch",
		"target", cfg.TargetURL,
		"delay", cfg.Delay,
		"maxPages", cfg.MaxPages,
		"outputDir", cfg.OutputDir,
	)

	// History recording is best effort: a broken database must not stop
	// a crawl that can still produce its artifact.
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		logger.Warn("failed to open history database, continuing without history", "error", err)
		db = nil
	} else {
		defer db.Close()
	}

	opts := []crawler.Option{
		crawler.WithDelay(cfg.Delay),
		crawler.WithMaxPages(cfg.MaxPages),
		crawler.WithOutputDir(cfg.OutputDir),
		crawler.WithLogger(logger),
	}
	if db != nil {
		opts = append(opts, crawler.WithDatabase(db))
	}

	c := crawler.New(
		fetcher.New(
			fetcher.WithTimeout(cfg.Timeout),
			fetcher.WithUserAgent(cfg.UserAgent),
			fetcher.WithMaxBodySize(cfg.MaxBodySize),
		),
		extractor.NewRegistry(extractor.NewWebdoc()),
		converter.New(converter.WithLogger(logger)),
		opts...,
	)

	fmt.Printf("Fetching %s...\n", cfg.TargetURL)
	startTime := time.Now()

	result, err := c.Run(ctx, cfg.TargetURL)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("Fetch completed in %s\n", elapsed.Round(time.Millisecond))

	return outputSummary(cfg, result)
}

// outputSummary prints the run summary and optionally writes the
// Markdown summary file.
func outputSummary(cfg *config.Config, result *model.CrawlResult) error {
	writer := report.NewSimpleWriter(os.Stdout, report.WithVerbose(cfg.Verbose))
	if _, err := writer.Write(result); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if cfg.ReportFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if _, err := report.NewMarkdownWriter(f).Write(result); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	fmt.Printf("Run summary written to %s\n", cfg.ReportFile)
	return nil
}
