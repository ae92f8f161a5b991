package crawl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewmetros/docscrape"
	"github.com/matthewmetros/docscrape/crawl"
)

func TestFrontier_BreadthFirstOrder(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	f.Push(entry("https://docs.example.com/deep", 2, docscrape.PriorityTOC))
	f.Push(entry("https://docs.example.com/", 0, docscrape.PriorityContent))
	f.Push(entry("https://docs.example.com/guide", 1, docscrape.PriorityContent))
	f.Push(entry("https://docs.example.com/api", 1, docscrape.PriorityNavigation))

	var got []string
	for f.Len() > 0 {
		e, ok := f.Pop()
		require.True(t, ok)
		got = append(got, e.Link.URL)
	}

	// Shallowest first, higher priority first within a depth.
	assert.Equal(t, []string{
		"https://docs.example.com/",
		"https://docs.example.com/api",
		"https://docs.example.com/guide",
		"https://docs.example.com/deep",
	}, got)
}

func TestFrontier_FIFOWithinEqualPriority(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	f.Push(entry("https://docs.example.com/a", 1, docscrape.PriorityContent))
	f.Push(entry("https://docs.example.com/b", 1, docscrape.PriorityContent))
	f.Push(entry("https://docs.example.com/c", 1, docscrape.PriorityContent))

	var got []string
	for f.Len() > 0 {
		e, _ := f.Pop()
		got = append(got, e.Link.URL)
	}
	assert.Equal(t, []string{
		"https://docs.example.com/a",
		"https://docs.example.com/b",
		"https://docs.example.com/c",
	}, got)
}

func TestFrontier_DeduplicatesPushes(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	assert.True(t, f.Push(entry("https://docs.example.com/a", 0, docscrape.PriorityContent)))
	assert.False(t, f.Push(entry("https://docs.example.com/a", 1, docscrape.PriorityTOC)))
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.Seen("https://docs.example.com/a"))
	assert.False(t, f.Seen("https://docs.example.com/b"))
}

func TestFrontier_PopEmpty(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	_, ok := f.Pop()
	assert.False(t, ok)
}

func entry(url string, depth int, priority docscrape.LinkPriority) docscrape.QueueEntry {
	return docscrape.QueueEntry{
		Link:  docscrape.DiscoveredLink{URL: url, Priority: priority},
		Depth: depth,
	}
}
