package services

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlMarkup = regexp.MustCompile(`(?i)<(html|body|div|p|li|ul|ol|br|h[1-6]|span|section|article|table)\b[^>]*>`)
	whitespace = regexp.MustCompile(`[ \t]+`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// CleanJobPost reduces a job posting pasted as HTML to readable text.
// Plain-text postings are returned unchanged.
func CleanJobPost(raw string) string {
	if !htmlMarkup.MatchString(raw) {
		return raw
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()

	var blocks []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(whitespace.ReplaceAllString(s.Text(), " ")); text != "" {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) > 0 {
		return strings.Join(blocks, "\n")
	}

	text := whitespace.ReplaceAllString(doc.Text(), " ")
	return strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n"))
}
