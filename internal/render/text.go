// Package render turns preview HTML into terminal text and, as an offline
// fallback, into local PDFs.
package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText parses preview markup and returns its readable text with
// scripts, styles and normal HTML noise stripped, one trimmed line per
// block. Used to show a preview inside the terminal.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("render: parse preview HTML: %w", err)
	}

	doc.Find("script, style, noscript, head").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}

	return cleanWhitespace(body.Text()), nil
}

// cleanWhitespace trims each line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
