package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// boilerplate nodes stripped before text extraction
const unwantedNodes = "script, style, nav, header, footer, aside, form, iframe, noscript"

var unwantedClasses = []string{"sidebar", "widget", "advertisement", "social-share"}

var whitespaceRE = regexp.MustCompile(`\s+`)

// SelectText returns the trimmed text of every node matching the CSS
// selector, skipping nodes whose text is empty.
func SelectText(doc *goquery.Document, selector string) []string {
	out := []string{}
	doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// CleanHTML strips boilerplate markup from raw HTML and returns the
// remaining text with normalized whitespace. Unparseable input yields
// an empty string.
func CleanHTML(htmlStr string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	doc.Find(unwantedNodes).Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})
	for _, cls := range unwantedClasses {
		doc.Find("." + cls).Each(func(i int, s *goquery.Selection) { s.Remove() })
	}

	text := strings.TrimSpace(doc.Text())
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}
