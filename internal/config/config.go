package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values. The crawl-related defaults mirror the
// behavior documentation sites tolerate well: a polite one-second delay and
// a modest page budget.
const (
	// DefaultDelay is the blocking wait inserted before each non-seed
	// fetch. One second is conservative and respectful of server
	// resources while keeping a typical docs crawl under a few minutes.
	DefaultDelay = 1 * time.Second

	// DefaultTimeout is the per-request HTTP timeout. Documentation
	// pages are small static HTML; 30 seconds is generous.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxPages of 0 means "no cap": the crawl drains the whole
	// frontier discovered on the seed page.
	DefaultMaxPages = 0

	// DefaultMaxBodySize limits the response body size to read.
	// 5MB is far beyond any reasonable documentation page while
	// preventing memory exhaustion from unexpected responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultUserAgent identifies docfetch in HTTP requests.
	// A descriptive User-Agent lets site operators identify the traffic.
	DefaultUserAgent = "docfetch/1.0 (+https://github.com/docfetch/docfetch)"

	// AppName is the application name used for XDG directory paths.
	AppName = "docfetch"
)

// Config holds all configuration options for a docfetch run.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., CrawlConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// TargetURL is the seed URL the crawl starts from.
	TargetURL string

	// Delay is the inter-request delay between frontier fetches.
	// The seed fetch is never delayed.
	Delay time.Duration

	// MaxPages caps how many frontier entries are processed.
	// 0 means no cap. The seed page does not count against the cap.
	MaxPages int

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are truncated.
	MaxBodySize int64

	// OutputDir is the directory artifacts are written under.
	// The artifact path is <OutputDir>/<domain>/api_<date>.md.
	// Empty means the XDG data directory.
	OutputDir string

	// ReportFile, when set, is where the Markdown run summary is written.
	ReportFile string

	// ConfigFilePath is the path to the .docfetch configuration file.
	// If empty, the tool searches the current directory and then the
	// user's home directory.
	ConfigFilePath string

	// SiteConfigs holds per-site configurations loaded from the config
	// file. Never nil after CLI setup.
	SiteConfigs *File

	// DBDir is the directory for the SQLite crawl-history database.
	// Defaults to the XDG data directory.
	DBDir string

	// Verbose enables debug-level log output.
	Verbose bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (delay, timeout, body
// limit). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Delay:       DefaultDelay,
		MaxPages:    DefaultMaxPages,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		OutputDir:   XDGDataDir(),
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for docfetch.
// On Linux: ~/.local/share/docfetch
// On macOS: ~/Library/Application Support/docfetch
// On Windows: %LOCALAPPDATA%\docfetch
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for docfetch.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes
// subsequent ones irrelevant.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any fetching begins.
func (c *Config) Validate() error {
	if c.TargetURL == "" {
		return ErrNoTarget
	}
	if c.Delay < 0 {
		return ErrInvalidDelay
	}
	if c.MaxPages < 0 {
		return ErrInvalidMaxPages
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	return nil
}
