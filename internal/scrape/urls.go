package scrape

import (
	"strings"

	"scrapekit/internal/errors"
)

// JoinURLs builds full URLs by appending each relative entry to root.
// Root is normalized to end with exactly one slash; each entry is
// trimmed of leading and trailing slashes and dropped if nothing
// remains. Order and duplicates are otherwise preserved.
func JoinURLs(root string, relatives []string) ([]string, error) {
	if root == "" {
		return nil, errors.NewValidationError("root", "root URL is required")
	}

	root = strings.TrimRight(root, "/") + "/"

	urls := make([]string, 0, len(relatives))
	for _, rel := range relatives {
		rel = strings.Trim(rel, "/")
		if rel == "" {
			continue
		}
		urls = append(urls, root+rel)
	}
	return urls, nil
}
