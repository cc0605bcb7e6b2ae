package config

// SiteConfig holds site-specific configuration for a single documentation
// host. This allows customizing crawl behavior per site without repeating
// flags on every invocation.
type SiteConfig struct {
	// Delay overrides the global inter-request delay for this site.
	// Zero means the global delay is used.
	Delay Duration `yaml:"delay,omitempty"`

	// MaxPages overrides the global frontier cap for this site.
	// Zero means the global cap is used.
	MaxPages int `yaml:"maxPages,omitempty"`

	// OutputDir overrides where this site's artifacts are written.
	OutputDir string `yaml:"outputDir,omitempty"`

	// UserAgent overrides the User-Agent header for this site.
	UserAgent string `yaml:"userAgent,omitempty"`
}

// File represents the structure of the .docfetch configuration file.
type File struct {
	// Sites maps documentation hosts to their site-specific
	// configurations. Keys are bare hosts (e.g., "docs.example.com").
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults contains default site configuration applied to all sites
	// unless overridden in the site-specific configuration.
	Defaults SiteConfig `yaml:"defaults,omitempty"`
}

// GetSiteConfig returns the configuration for a specific host.
// It merges the site-specific configuration with defaults.
func (cf *File) GetSiteConfig(host string) SiteConfig {
	// Start with defaults
	result := cf.Defaults

	// Override with site-specific configuration if present
	if siteConfig, ok := cf.Sites[host]; ok {
		if !siteConfig.Delay.IsZero() {
			result.Delay = siteConfig.Delay
		}
		if siteConfig.MaxPages != 0 {
			result.MaxPages = siteConfig.MaxPages
		}
		if siteConfig.OutputDir != "" {
			result.OutputDir = siteConfig.OutputDir
		}
		if siteConfig.UserAgent != "" {
			result.UserAgent = siteConfig.UserAgent
		}
	}

	return result
}

// Apply copies the non-zero site settings onto the run configuration.
// CLI flags are applied after this, so explicit flags always win.
func (c *Config) Apply(site SiteConfig) {
	if !site.Delay.IsZero() {
		c.Delay = site.Delay.Duration
	}
	if site.MaxPages != 0 {
		c.MaxPages = site.MaxPages
	}
	if site.OutputDir != "" {
		c.OutputDir = site.OutputDir
	}
	if site.UserAgent != "" {
		c.UserAgent = site.UserAgent
	}
}
