package scrape

import (
	goerrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"

	"scrapekit/internal/errors"
)

// Parse builds an HTML document from pre-fetched markup.
func Parse(r io.Reader) (*html.Node, error) {
	return htmlquery.Parse(r)
}

// ParseFile parses the HTML file at path.
func ParseFile(path string) (*html.Node, error) {
	f, err := openDocument(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return htmlquery.Parse(f)
}

// ParseXML builds an XML document from pre-fetched markup.
func ParseXML(r io.Reader) (*xmlquery.Node, error) {
	return xmlquery.Parse(r)
}

// ParseXMLFile parses the XML file at path.
func ParseXMLFile(path string) (*xmlquery.Node, error) {
	f, err := openDocument(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return xmlquery.Parse(f)
}

func openDocument(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if goerrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError(path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
