package dataset

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"scrapekit/internal/errors"
)

// SplitIntoN partitions the CSV at path into n contiguous, roughly equal
// slices written to sibling files named {stem}_{i}{ext} (1-based). Slice
// boundaries fall at floor(i*rows/n), so when n exceeds the row count
// some outputs are header-only. Returns the written paths in order.
func SplitIntoN(path string, n int) ([]string, error) {
	if n < 1 {
		return nil, errors.NewValidationError("parts", "number of output files must be at least 1")
	}

	ds, err := Read(path)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	outputs := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		start := (i - 1) * ds.Len() / n
		end := i * ds.Len() / n
		out := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if err := ds.Slice(start, end).Write(out); err != nil {
			return nil, err
		}
		log.Printf("%s saved (%d rows)", out, end-start)
		outputs = append(outputs, out)
	}

	return outputs, nil
}

// SplitByRatio splits the CSV at path at row floor(rows*ratio): the head
// goes to out1, the tail to out2. Ratio must be within [0, 1].
func SplitByRatio(path, out1, out2 string, ratio float64) error {
	if ratio < 0 || ratio > 1 {
		return errors.NewValidationError("ratio", "split ratio must be between 0 and 1")
	}

	ds, err := Read(path)
	if err != nil {
		return err
	}

	splitIdx := int(float64(ds.Len()) * ratio)
	if err := ds.Slice(0, splitIdx).Write(out1); err != nil {
		return err
	}
	if err := ds.Slice(splitIdx, ds.Len()).Write(out2); err != nil {
		return err
	}

	log.Printf("split %s: %d rows to %s, %d rows to %s", path, splitIdx, out1, ds.Len()-splitIdx, out2)
	return nil
}
