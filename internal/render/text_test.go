package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	html := `<html>
	<head><title>ignored</title><style>body { color: red }</style></head>
	<body>
		<script>alert("nope")</script>
		<h1>Jane Doe</h1>
		<p>Software Engineer</p>
		<noscript>enable js</noscript>
	</body>
	</html>`

	text, err := ExtractText(html)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSoftware Engineer", text)
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "enable js")
}

func TestExtractText_Fragment(t *testing.T) {
	text, err := ExtractText("<div>\n<p>  hello  </p>\n<p>world</p>\n</div>")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", text)
}

func TestExtractText_Empty(t *testing.T) {
	text, err := ExtractText("")
	require.NoError(t, err)
	assert.Empty(t, text)
}
