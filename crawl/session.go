package crawl

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/matthewmetros/docscrape"
)

// Status is the lifecycle state of a crawl session.
type Status string

const (
	StatusIdle        Status = "idle"
	StatusDiscovering Status = "discovering"
	StatusExtracting  Status = "extracting"
	StatusCompleted   Status = "completed"
	StatusStopped     Status = "stopped"
	StatusFailed      Status = "failed"
)

// ProgressType identifies the kind of progress event.
type ProgressType string

const (
	ProgressStarted   ProgressType = "started"
	ProgressCompleted ProgressType = "completed"
	ProgressFailed    ProgressType = "failed"
	ProgressFinished  ProgressType = "finished"
)

// ProgressEvent reports crawl progress. Completed counts pages
// processed so far, including failed ones; Total is the number of
// discovered pages.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     string
}

// ProgressFunc receives progress events. It may be nil, and is called
// from worker goroutines, so implementations must be safe for
// concurrent use.
type ProgressFunc func(ProgressEvent)

func emit(fn ProgressFunc, ev ProgressEvent) {
	if fn != nil {
		fn(ev)
	}
}

// Session tracks a single crawl: the set of discovered URLs, the
// records produced for them, progress counters and terminal state.
// All methods are safe for concurrent use.
type Session struct {
	ID     string
	Target docscrape.CrawlTarget

	mu         sync.Mutex
	status     Status
	discovered map[string]struct{}
	records    map[string]*docscrape.PageRecord
	processed  int
	err        error

	canceled atomic.Bool
	done     chan struct{}
}

func newSession(target docscrape.CrawlTarget) *Session {
	return &Session{
		ID:         uuid.New().String(),
		Target:     target,
		status:     StatusIdle,
		discovered: make(map[string]struct{}),
		records:    make(map[string]*docscrape.PageRecord),
		done:       make(chan struct{}),
	}
}

// Cancel requests a cooperative stop. In-flight pages finish; no new
// pages are started. Cancel is idempotent.
func (s *Session) Cancel() {
	s.canceled.Store(true)
}

// Canceled reports whether Cancel has been called.
func (s *Session) Canceled() bool {
	return s.canceled.Load()
}

// Done is closed when the session reaches a terminal status.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns the fatal error for a failed session, or nil.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Progress returns the number of processed pages, the total number of
// discovered pages, and the current status. Processed never decreases
// and never exceeds total.
func (s *Session) Progress() (processed, total int, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processed, len(s.discovered), s.status
}

// Results returns a snapshot of the records produced so far, keyed by
// canonical URL. The snapshot is a deep copy and safe to retain.
func (s *Session) Results() map[string]*docscrape.PageRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]*docscrape.PageRecord, len(s.records))
	for url, rec := range s.records {
		out[url] = rec.Clone()
	}
	return out
}

// Discovered returns the discovered URLs in stable sorted order.
func (s *Session) Discovered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	urls := make([]string, 0, len(s.discovered))
	for url := range s.discovered {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

func (s *Session) setStatus(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// addDiscovered adds a canonical URL to the discovered set and reports
// whether it was new. This is the sole dedup point for a crawl.
func (s *Session) addDiscovered(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.discovered[url]; ok {
		return false
	}
	s.discovered[url] = struct{}{}
	return true
}

func (s *Session) discoveredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.discovered)
}

// recordResult stores a finished record, advances the progress counter
// and returns its new value. A URL is counted once even if processed
// twice.
func (s *Session) recordResult(rec *docscrape.PageRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[rec.URL]; !ok {
		s.records[rec.URL] = rec
		s.processed++
	}
	return s.processed
}

func (s *Session) finish(status Status, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusCompleted || s.status == StatusStopped || s.status == StatusFailed {
		return
	}
	s.status = status
	s.err = err
	close(s.done)
}
