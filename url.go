package docscrape

import (
	"net/url"
	"strings"
)

// trackingParams are query parameters that carry analytics state and never
// change page identity. They are stripped during normalization.
// Functional parameters (hl, lang, locale) are preserved for the
// relevance filter.
var trackingParams = map[string]bool{
	"gclid":   true,
	"fbclid":  true,
	"msclkid": true,
	"ref":     true,
	"mc_cid":  true,
	"mc_eid":  true,
}

// NormalizeURL canonicalizes a URL for deduplication. Relative references
// are resolved against base (which may be empty for absolute URLs). The
// result lower-cases scheme and host, strips default ports, removes the
// fragment, drops tracking query parameters, and trims the trailing slash.
//
// Two URLs that normalize identically are the same page for the whole
// crawl; this is the sole dedup mechanism. NormalizeURL is idempotent.
func NormalizeURL(rawURL, baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if baseURL != "" {
		base, err := url.Parse(baseURL)
		if err != nil {
			return "", Errorf(EINVALID, "invalid base URL %q: %v", baseURL, err)
		}
		u = base.ResolveReference(u)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "unsupported scheme %q in URL %q", u.Scheme, rawURL)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "URL %q has no host", rawURL)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.User = nil

	// Strip default ports
	switch {
	case u.Scheme == "http" && strings.HasSuffix(u.Host, ":80"):
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(u.Host, ":443"):
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	// Drop tracking parameters, keep the rest. Encode sorts keys so the
	// query string is stable across normalizations.
	if u.RawQuery != "" {
		q := u.Query()
		for param := range q {
			if trackingParams[param] || strings.HasPrefix(strings.ToLower(param), "utm_") {
				q.Del(param)
			}
		}
		u.RawQuery = q.Encode()
	}

	// Trailing slash is not significant for page identity. The bare
	// root normalizes to "/" so host and host-slash are one page.
	switch u.Path {
	case "":
		u.Path = "/"
	case "/":
	default:
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	return u.String(), nil
}
