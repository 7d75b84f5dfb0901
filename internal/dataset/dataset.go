// Package dataset loads, splits, and merges headered CSV files.
package dataset

import (
	"bytes"
	"encoding/csv"
	goerrors "errors"
	"fmt"
	"io/fs"
	"os"

	"scrapekit/internal/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Dataset is an in-memory table: a header row plus ordered data rows.
// Row identity is positional; written files never carry an index column.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Slice returns a view over rows [start, end).
func (d *Dataset) Slice(start, end int) *Dataset {
	return &Dataset{
		Columns: d.Columns,
		Rows:    d.Rows[start:end],
	}
}

// Read loads the CSV file at path. The first record is the header.
func Read(path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		if goerrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError(path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	b = bytes.TrimPrefix(b, utf8BOM)

	records, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	if err != nil {
		return nil, errors.NewDecodeError(path, err)
	}
	if len(records) == 0 {
		return &Dataset{}, nil
	}

	return &Dataset{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}

// Write saves the dataset to path: header first, then data rows.
func (d *Dataset) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if len(d.Columns) > 0 {
		if err := w.Write(d.Columns); err != nil {
			f.Close()
			return fmt.Errorf("write header to %s: %w", path, err)
		}
	}
	if err := w.WriteAll(d.Rows); err != nil {
		f.Close()
		return fmt.Errorf("write rows to %s: %w", path, err)
	}

	return f.Close()
}
