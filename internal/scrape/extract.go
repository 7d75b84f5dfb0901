// Package scrape extracts text and links from pre-fetched documents via
// XPath or CSS queries. It never fetches anything itself: callers hand
// it a parsed document (or raw markup) obtained upstream.
package scrape

import (
	"log"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"

	"scrapekit/internal/errors"
)

// ExtractText evaluates the XPath query against doc and returns the
// matched text fragments: inner text for element and text nodes, the
// value for attribute selections. An empty query is a validation error.
// A malformed query or a nil document is logged and yields a nil result
// rather than an error, so callers must treat extraction as best-effort:
// an absent result may mean "no match" or "query failed".
func ExtractText(doc *html.Node, query string) ([]string, error) {
	expr, err := compileQuery(query)
	if err != nil {
		return nil, err
	}
	if expr == nil || doc == nil {
		return nil, nil
	}

	nodes := htmlquery.QuerySelectorAll(doc, expr)
	if len(nodes) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, htmlquery.InnerText(n))
	}
	return out, nil
}

// ExtractTextXML is ExtractText over an XML document (sitemaps, feeds).
func ExtractTextXML(doc *xmlquery.Node, query string) ([]string, error) {
	expr, err := compileQuery(query)
	if err != nil {
		return nil, err
	}
	if expr == nil || doc == nil {
		return nil, nil
	}

	nodes := xmlquery.QuerySelectorAll(doc, expr)
	if len(nodes) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.InnerText())
	}
	return out, nil
}

// ExtractURLs runs the query against doc, joins each match onto root,
// and returns the resulting URL set. A nil map means the query matched
// nothing (or failed); an empty map means every match was dropped by
// the join rules.
func ExtractURLs(doc *html.Node, query, root string) (map[string]struct{}, error) {
	matches, err := ExtractText(doc, query)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	urls, err := JoinURLs(root, matches)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		set[u] = struct{}{}
	}
	return set, nil
}

// compileQuery validates and compiles an XPath expression. A compile
// failure is part of the best-effort contract: logged, nil returned.
func compileQuery(query string) (*xpath.Expr, error) {
	if query == "" {
		return nil, errors.NewValidationError("query", "xpath query is required")
	}
	expr, err := xpath.Compile(query)
	if err != nil {
		log.Printf("could not compile xpath %q: %v", query, err)
		return nil, nil
	}
	return expr, nil
}
