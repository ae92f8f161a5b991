package docscrape

import "time"

// PageStatus reports the outcome of processing a single page.
type PageStatus string

// Page processing outcomes.
const (
	PageOK     PageStatus = "ok"
	PageFailed PageStatus = "error"
)

// PageRecord is the per-URL result of extraction. Records are owned by
// the crawl session until the crawl finishes; external consumers only
// ever see copies.
type PageRecord struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`

	// Formats maps a requested format to its derived content. Keys are a
	// subset of {markdown, html, text}. Empty when the page failed or no
	// formats were requested.
	Formats map[Format]string `json:"formats"`

	// ContentHash is a hash of the raw response body, used by stores to
	// skip pages that have not changed since a previous crawl.
	ContentHash string `json:"contentHash"`

	FetchedAt time.Time `json:"fetchedAt"`

	Status    PageStatus `json:"status"`
	ErrorCode string     `json:"errorCode,omitempty"`
	ErrorMsg  string     `json:"errorMessage,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *PageRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "page record URL required")
	}
	if r.Status != PageOK && r.Status != PageFailed {
		return Errorf(EINVALID, "page record status required")
	}
	return nil
}

// Clone returns a deep copy of the record.
func (r *PageRecord) Clone() *PageRecord {
	out := *r
	if r.Formats != nil {
		out.Formats = make(map[Format]string, len(r.Formats))
		for k, v := range r.Formats {
			out.Formats[k] = v
		}
	}
	return &out
}
