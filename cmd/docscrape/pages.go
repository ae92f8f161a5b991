package main

import (
	"fmt"

	"github.com/matthewmetros/docscrape"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	filter := docscrape.PageFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.URL != "" {
		filter.URL = &c.URL
	}
	if c.Status != "" {
		status := docscrape.PageStatus(c.Status)
		if status != docscrape.PageOK && status != docscrape.PageFailed {
			err := docscrape.Errorf(docscrape.EINVALID, "unknown status %q, expected ok or error", c.Status)
			fmt.Fprintf(deps.Stderr, "error: %s\n", docscrape.ErrorMessage(err))
			return err
		}
		filter.Status = &status
	}

	records, n, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscrape.ErrorMessage(err))
		return err
	}

	if n == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found. Use 'docscrape crawl' to crawl a site.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(deps.Stdout, "%s  %-5s  %s  %s\n", rec.ID, rec.Status, rec.URL, rec.Title)
		if c.Full {
			if md, ok := rec.Formats[docscrape.FormatMarkdown]; ok {
				fmt.Fprintln(deps.Stdout, md)
				fmt.Fprintln(deps.Stdout)
			}
		}
	}
	if len(records) < n {
		fmt.Fprintf(deps.Stdout, "Showing %d of %d pages\n", len(records), n)
	}

	return nil
}
