package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadConfigFile tests YAML config file loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads sites and defaults", func(t *testing.T) {
		t.Parallel()

		content := `
defaults:
  delay: 2s
  maxPages: 25
sites:
  docs.example.com:
    delay: 250ms
    outputDir: /srv/docs
`
		path := filepath.Join(t.TempDir(), ".docfetch")
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if cf.Defaults.Delay.Duration != 2*time.Second {
			t.Errorf("expected default delay 2s, got %v", cf.Defaults.Delay.Duration)
		}
		if cf.Defaults.MaxPages != 25 {
			t.Errorf("expected default max pages 25, got %d", cf.Defaults.MaxPages)
		}

		site, ok := cf.Sites["docs.example.com"]
		if !ok {
			t.Fatal("expected docs.example.com site entry")
		}
		if site.Delay.Duration != 250*time.Millisecond {
			t.Errorf("expected site delay 250ms, got %v", site.Delay.Duration)
		}
		if site.OutputDir != "/srv/docs" {
			t.Errorf("expected site output dir /srv/docs, got %q", site.OutputDir)
		}
	})

	t.Run("numeric delay is seconds", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".docfetch")
		if err := os.WriteFile(path, []byte("defaults:\n  delay: 3\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if cf.Defaults.Delay.Duration != 3*time.Second {
			t.Errorf("expected 3s, got %v", cf.Defaults.Delay.Duration)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".docfetch")
		if err := os.WriteFile(path, []byte("sites: [not a map"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests configuration file discovery.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path that exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("sites: {}\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty result, got %q", got)
		}
	})

	t.Run("implicit search covers cwd, xdg, and home", func(t *testing.T) {
		t.Parallel()

		paths := configSearchPaths()
		if len(paths) < 2 {
			t.Fatalf("expected at least cwd and xdg candidates, got %v", paths)
		}

		if filepath.Base(paths[0]) != DefaultConfigFile {
			t.Errorf("expected project dotfile first, got %q", paths[0])
		}

		want := filepath.Join(XDGConfigDir(), XDGConfigFile)
		found := false
		for _, p := range paths {
			if p == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %q among candidates %v", want, paths)
		}
	})
}
