// Package docscrape discovers and extracts the pages of a documentation
// website into structured output formats (Markdown, plain text, raw HTML)
// for downstream ingestion. Discovery is sitemap-based with a bounded-depth
// recursive HTML fallback; extraction runs on a bounded worker pool with
// per-page progress reporting and cooperative cancellation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, trafilatura/).
package docscrape
