package readability_test

import (
	"testing"

	"github.com/matthewmetros/docscrape"
	"github.com/matthewmetros/docscrape/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Configuration Reference</title></head>
<body>
<article>
<h1>Configuration Reference</h1>
<p>Every option the daemon understands is listed below, together with
its default value and the environment variable that overrides it.</p>
<p>Options are read from the config file first, then the environment,
then command line flags, with later sources taking precedence.</p>
</article>
</body>
</html>`

	e := readability.NewExtractor()
	result, err := e.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Configuration Reference", result.Title)
	assert.Contains(t, result.ContentText, "later sources taking precedence")
	assert.NotEmpty(t, result.ContentHTML)
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	e := readability.NewExtractor()
	_, err := e.Extract("")

	require.Error(t, err)
	assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
}
