package crawl

import (
	"container/heap"

	dsbloom "github.com/matthewmetros/docscrape/bloom"

	"github.com/matthewmetros/docscrape"
)

// Frontier is a URL frontier ordered breadth-first: shallowest depth
// first, higher link priority first within a depth. A bloom filter
// deduplicates pushed URLs. Frontier is not safe for concurrent use;
// the discovery loop is single-threaded.
type Frontier struct {
	queue  entryHeap
	seen   *dsbloom.Filter
	pushed int
}

var _ docscrape.URLFrontier = (*Frontier)(nil)

// NewFrontier creates an empty frontier sized for a typical
// documentation site.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: dsbloom.NewFilter(10000, 0.01),
	}
}

// Push adds an entry unless its URL has already been seen.
func (f *Frontier) Push(entry docscrape.QueueEntry) bool {
	if f.seen.Test(entry.Link.URL) {
		return false
	}
	f.seen.Add(entry.Link.URL)
	heap.Push(&f.queue, frontierItem{entry: entry, order: f.pushed})
	f.pushed++
	return true
}

// Pop removes and returns the next entry in breadth-first order.
func (f *Frontier) Pop() (docscrape.QueueEntry, bool) {
	if f.queue.Len() == 0 {
		return docscrape.QueueEntry{}, false
	}
	item := heap.Pop(&f.queue).(frontierItem)
	return item.entry, true
}

// Len returns the number of queued entries.
func (f *Frontier) Len() int {
	return f.queue.Len()
}

// Seen reports whether a URL has been pushed. Bloom-backed, so it can
// rarely report true for a URL that was never pushed.
func (f *Frontier) Seen(url string) bool {
	return f.seen.Test(url)
}

// frontierItem carries an insertion counter so entries with equal
// depth and priority pop in FIFO order.
type frontierItem struct {
	entry docscrape.QueueEntry
	order int
}

type entryHeap []frontierItem

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].entry.Depth != h[j].entry.Depth {
		return h[i].entry.Depth < h[j].entry.Depth
	}
	if h[i].entry.Link.Priority != h[j].entry.Link.Priority {
		return h[i].entry.Link.Priority > h[j].entry.Link.Priority
	}
	return h[i].order < h[j].order
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(frontierItem))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
