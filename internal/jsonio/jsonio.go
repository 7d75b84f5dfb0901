// Package jsonio persists arbitrary values as human-readable JSON files.
package jsonio

import (
	"bytes"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"scrapekit/internal/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Save writes data to path as an indented JSON document, wrapped under
// label (or "data" when label is empty). An empty path is a validation
// error; any other failure is logged and swallowed so callers can treat
// the write as fire-and-forget.
func Save(path string, data any, label string) error {
	if path == "" {
		return errors.NewValidationError("path", "output file path is required")
	}

	if label == "" {
		label = "data"
	}
	payload := map[string]any{label: data}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(payload); err != nil {
		log.Printf("could not encode JSON file %s: %v", path, err)
		return nil
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		log.Printf("could not save JSON file %s: %v", path, err)
		return nil
	}

	log.Printf("JSON file %s saved", path)
	return nil
}

// Load reads and decodes the JSON document at path. The file must exist;
// a UTF-8 byte-order mark is tolerated.
func Load(path string) (any, error) {
	var data any
	if err := LoadInto(path, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// LoadInto decodes the JSON document at path into dest.
func LoadInto(path string, dest any) error {
	if _, err := os.Stat(path); err != nil {
		if goerrors.Is(err, fs.ErrNotExist) {
			return errors.NewNotFoundError(path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	b = bytes.TrimPrefix(b, utf8BOM)

	if err := json.Unmarshal(b, dest); err != nil {
		return errors.NewDecodeError(path, err)
	}

	log.Printf("JSON file %s loaded", path)
	return nil
}
