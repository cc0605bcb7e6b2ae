package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampFormat is the header timestamp layout.
const TimestampFormat = "2006-01-02:15:04:05"

// separator delimits header, URLs, and page content inside the artifact.
const separator = "----"

// Artifact is the append-only output file for one crawl run.
type Artifact struct {
	// path is the artifact file location.
	path string
}

// PathFor returns the artifact path for a site and date:
// <outputDir>/<host with dots replaced by underscores>/api_<YYYY_MM_DD>.md
func PathFor(outputDir, host string, date time.Time) string {
	domain := strings.ReplaceAll(host, ".", "_")
	filename := fmt.Sprintf("api_%s.md", date.Format("2006_01_02"))
	return filepath.Join(outputDir, domain, filename)
}

// New creates an Artifact handle for the given path. Nothing is written
// until Create is called.
func New(path string) *Artifact {
	return &Artifact{path: path}
}

// Path returns the artifact file location.
func (a *Artifact) Path() string {
	return a.path
}

// Create writes the artifact header and the seed page block, creating
// parent directories as needed. An existing file at the path is
// truncated: each run owns its artifact from the header down.
func (a *Artifact) Create(extractorID, seedURL, content string, created time.Time) error {
	var b strings.Builder
	b.WriteString(separator + "\n\n")
	b.WriteString("Created: " + created.Format(TimestampFormat) + "\n")
	b.WriteString("Extractor: " + extractorID + "\n\n")
	b.WriteString(separator + "\n\n")
	b.WriteString(seedURL + "\n\n")
	b.WriteString(separator + "\n\n")
	b.WriteString(content + "\n\n")
	b.WriteString(separator + "\n")

	return a.write(b.String(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// Append adds one page block to the artifact.
func (a *Artifact) Append(pageURL, content string) error {
	var b strings.Builder
	b.WriteString("\n" + pageURL + "\n\n")
	b.WriteString(separator + "\n\n")
	b.WriteString(content + "\n\n")
	b.WriteString(separator + "\n")

	return a.write(b.String(), os.O_WRONLY|os.O_CREATE|os.O_APPEND)
}

// write persists data to the artifact file with the given flags.
func (a *Artifact) write(data string, flags int) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0750); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	f, err := os.OpenFile(a.path, flags, 0600) //nolint:gosec // Path derived from user configuration
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}

	if _, err := f.WriteString(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write artifact: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close artifact: %w", err)
	}

	return nil
}
