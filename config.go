package docscrape

import (
	"fmt"
	"strings"
	"time"
)

// Format identifies an output representation of a crawled page.
type Format string

// Supported output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
)

// ParseFormat converts a string to a Format.
// Returns EINVALID for unrecognized names.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatText:
		return FormatText, nil
	}
	return "", Errorf(EINVALID, "unknown format %q", s)
}

// Configuration bounds enforced by Config.Validate.
const (
	MinWorkers = 1
	MaxWorkers = 20
	MinTimeout = 5 * time.Second
	MaxTimeout = 60 * time.Second
	MaxRetries = 10
)

// Config holds everything needed to start a crawl. It is validated once
// at start time; an invalid config means the crawl never begins and no
// network activity occurs.
type Config struct {
	Target CrawlTarget `json:"target"`

	// Formats are the representations derived per page. Must be
	// non-empty; an empty set is a validation error, never a silent
	// default.
	Formats []Format `json:"formats"`

	// Workers is the extraction worker pool size (1-20).
	Workers int `json:"workers"`

	// Timeout applies per HTTP request, not per crawl (5s-60s).
	Timeout time.Duration `json:"timeout"`

	// Retries is the number of retry attempts after a transient fetch
	// failure (0-10). 4xx responses are never retried.
	Retries int `json:"retries"`
}

// Validate returns an error if the configuration is out of bounds.
func (c *Config) Validate() error {
	if err := c.Target.Validate(); err != nil {
		return err
	}
	if len(c.Formats) == 0 {
		return Errorf(EINVALID, "at least one output format required")
	}
	seen := make(map[Format]bool, len(c.Formats))
	for _, f := range c.Formats {
		switch f {
		case FormatMarkdown, FormatHTML, FormatText:
		default:
			return Errorf(EINVALID, "unknown format %q", f)
		}
		if seen[f] {
			return Errorf(EINVALID, "duplicate format %q", f)
		}
		seen[f] = true
	}
	if c.Workers < MinWorkers || c.Workers > MaxWorkers {
		return Errorf(EINVALID, "workers must be between %d and %d, got %d", MinWorkers, MaxWorkers, c.Workers)
	}
	if c.Timeout < MinTimeout || c.Timeout > MaxTimeout {
		return Errorf(EINVALID, "timeout must be between %s and %s, got %s", MinTimeout, MaxTimeout, c.Timeout)
	}
	if c.Retries < 0 || c.Retries > MaxRetries {
		return Errorf(EINVALID, "retries must be between 0 and %d, got %d", MaxRetries, c.Retries)
	}
	return nil
}

// HasFormat reports whether f is among the requested formats.
func (c *Config) HasFormat(f Format) bool {
	for _, have := range c.Formats {
		if have == f {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer for log output.
func (c *Config) String() string {
	return fmt.Sprintf("target=%s depth=%d workers=%d timeout=%s retries=%d formats=%v",
		c.Target.BaseURL, c.Target.MaxDepth, c.Workers, c.Timeout, c.Retries, c.Formats)
}
