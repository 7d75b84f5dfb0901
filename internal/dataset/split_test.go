package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "scrapekit/internal/errors"
)

func fixtureCSV(t *testing.T, dir string, rows int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("id,name\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%d,row%d\n", i, i)
	}
	path := filepath.Join(dir, "data.csv")
	writeCSV(t, path, sb.String())
	return path
}

func TestSplitIntoN_PreservesOrderAndCount(t *testing.T) {
	dir := t.TempDir()
	path := fixtureCSV(t, dir, 7)

	outputs, err := SplitIntoN(path, 3)
	require.NoError(t, err)
	require.Len(t, outputs, 3)
	assert.Equal(t, filepath.Join(dir, "data_1.csv"), outputs[0])
	assert.Equal(t, filepath.Join(dir, "data_3.csv"), outputs[2])

	var combined [][]string
	for _, out := range outputs {
		part, err := Read(out)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, part.Columns)
		combined = append(combined, part.Rows...)
	}

	original, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, original.Rows, combined)
}

func TestSplitIntoN_SliceSizes(t *testing.T) {
	dir := t.TempDir()
	path := fixtureCSV(t, dir, 7)

	outputs, err := SplitIntoN(path, 3)
	require.NoError(t, err)

	sizes := make([]int, 0, len(outputs))
	for _, out := range outputs {
		part, err := Read(out)
		require.NoError(t, err)
		sizes = append(sizes, part.Len())
	}
	assert.Equal(t, []int{2, 2, 3}, sizes)
}

func TestSplitIntoN_MoreSlicesThanRows(t *testing.T) {
	dir := t.TempDir()
	path := fixtureCSV(t, dir, 2)

	outputs, err := SplitIntoN(path, 4)
	require.NoError(t, err)
	require.Len(t, outputs, 4)

	total := 0
	for _, out := range outputs {
		part, err := Read(out)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, part.Columns)
		total += part.Len()
	}
	assert.Equal(t, 2, total)
}

func TestSplitIntoN_InvalidParts(t *testing.T) {
	path := fixtureCSV(t, t.TempDir(), 3)

	_, err := SplitIntoN(path, 0)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSplitIntoN_NotFound(t *testing.T) {
	_, err := SplitIntoN(filepath.Join(t.TempDir(), "missing.csv"), 2)

	var nfErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestSplitByRatio_Sizes(t *testing.T) {
	tests := []struct {
		name       string
		ratio      float64
		head, tail int
	}{
		{"half", 0.5, 2, 3},
		{"all tail", 0.0, 0, 5},
		{"all head", 1.0, 5, 0},
		{"third", 0.34, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := fixtureCSV(t, dir, 5)
			out1 := filepath.Join(dir, "head.csv")
			out2 := filepath.Join(dir, "tail.csv")

			require.NoError(t, SplitByRatio(path, out1, out2, tt.ratio))

			head, err := Read(out1)
			require.NoError(t, err)
			tail, err := Read(out2)
			require.NoError(t, err)
			assert.Equal(t, tt.head, head.Len())
			assert.Equal(t, tt.tail, tail.Len())
		})
	}
}

func TestSplitByRatio_InvalidRatio(t *testing.T) {
	dir := t.TempDir()
	path := fixtureCSV(t, dir, 3)

	for _, ratio := range []float64{-0.1, 1.5} {
		err := SplitByRatio(path, filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv"), ratio)

		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr)
	}
}

func TestSplitByRatio_NotFound(t *testing.T) {
	dir := t.TempDir()
	err := SplitByRatio(filepath.Join(dir, "missing.csv"),
		filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv"), 0.5)

	var nfErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}
