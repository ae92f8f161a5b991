package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/matthewmetros/docscrape/cmd/docscrape"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Name("docscrape"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	output := stdout.String()
	assert.Contains(t, output, "crawl")
	assert.Contains(t, output, "pages")
}

func TestCLI_CrawlDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"crawl", "https://docs.example.com"})
	require.NoError(t, err)

	assert.Equal(t, "https://docs.example.com", cli.Crawl.URL)
	assert.Equal(t, "any", cli.Crawl.Language)
	assert.Equal(t, 3, cli.Crawl.Depth)
	assert.Equal(t, 5, cli.Crawl.Workers)
	assert.Equal(t, "10s", cli.Crawl.Timeout)
	assert.Equal(t, 3, cli.Crawl.Retries)
	assert.Equal(t, []string{"markdown"}, cli.Crawl.Formats)
	assert.Equal(t, "docs", cli.Crawl.Out)
	assert.False(t, cli.Crawl.NoFiles)
}

func TestCLI_CrawlRepeatableFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"crawl", "https://docs.example.com",
		"--format", "markdown",
		"--format", "text",
		"--base-path", "/docs",
		"--base-path", "/api",
		"--language", "en",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"markdown", "text"}, cli.Crawl.Formats)
	assert.Equal(t, []string{"/docs", "/api"}, cli.Crawl.BasePaths)
	assert.Equal(t, "en", cli.Crawl.Language)
}

func TestCLI_CrawlRequiresURL(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"crawl"})
	require.Error(t, err)
}

func TestCLI_UnknownCommand(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"frobnicate"})
	require.Error(t, err)
}
