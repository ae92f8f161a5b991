package docscrape

import (
	"net/url"
	"strings"
)

// CrawlTarget describes the documentation set a crawl is scoped to.
// It is immutable once a crawl starts.
type CrawlTarget struct {
	// BaseURL is the seed page discovery starts from. Its host defines
	// the crawl's domain scope.
	BaseURL string `json:"baseUrl"`

	// Language restricts the crawl to pages in one locale, matched either
	// as a path segment (/en/...) or an explicit locale query parameter
	// (hl=en). Empty or "any" disables language filtering.
	Language string `json:"language"`

	// BasePaths restricts the crawl to URLs whose path starts with at
	// least one entry. Empty means no path restriction.
	BasePaths []string `json:"basePaths"`

	// MaxDepth bounds link-following during HTML fallback discovery.
	// Depth 0 is the seed page; links are enqueued only while
	// depth+1 < MaxDepth. Must be >= 1.
	MaxDepth int `json:"maxDepth"`
}

// Validate returns an error if the target contains invalid fields.
func (t *CrawlTarget) Validate() error {
	if t.BaseURL == "" {
		return Errorf(EINVALID, "target base URL required")
	}
	u, err := url.Parse(t.BaseURL)
	if err != nil || u.Host == "" {
		return Errorf(EINVALID, "invalid target base URL %q", t.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "unsupported scheme %q in target base URL", u.Scheme)
	}
	if t.MaxDepth < 1 {
		return Errorf(EINVALID, "max depth must be at least 1, got %d", t.MaxDepth)
	}
	return nil
}

// Host returns the lower-cased host of the target's base URL.
// Returns an empty string if the base URL does not parse.
func (t *CrawlTarget) Host() string {
	u, err := url.Parse(t.BaseURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// IsRelevant reports whether a candidate URL belongs to the target
// documentation set. Rules apply in order, short-circuiting on the first
// failure: host equality, base-path prefix, language match.
//
// URLs rejected here are never enqueued and never counted toward
// progress totals.
func (t *CrawlTarget) IsRelevant(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	if !strings.EqualFold(u.Host, t.Host()) {
		return false
	}

	if len(t.BasePaths) > 0 {
		matched := false
		for _, prefix := range t.BasePaths {
			if matchesPathPrefix(u.Path, prefix) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return t.matchesLanguage(u)
}

// matchesLanguage applies the language rule: accept if a path segment
// equals the target language or a conventional locale query parameter
// does. An unset or "any" language passes unconditionally.
func (t *CrawlTarget) matchesLanguage(u *url.URL) bool {
	lang := strings.ToLower(t.Language)
	if lang == "" || lang == "any" {
		return true
	}

	for _, segment := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if strings.EqualFold(segment, lang) {
			return true
		}
	}

	q := u.Query()
	for _, param := range localeQueryParams {
		if strings.EqualFold(q.Get(param), lang) {
			return true
		}
	}

	return false
}

// localeQueryParams are query parameters conventionally used for locale
// selection (e.g., Google-style hl=en).
var localeQueryParams = []string{"hl", "lang", "locale"}

// matchesPathPrefix checks if a path starts with the given prefix,
// respecting path-segment boundaries: /docs matches /docs and /docs/intro
// but not /documentation.
func matchesPathPrefix(path, prefix string) bool {
	if prefix == "" || prefix == "/" {
		return true
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := path[len(prefix):]
	return rest == "" || strings.HasPrefix(rest, "/")
}
