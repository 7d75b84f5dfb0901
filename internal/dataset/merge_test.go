package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "scrapekit/internal/errors"
)

func TestReadMany_DropsEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	full := filepath.Join(dir, "full.csv")
	empty := filepath.Join(dir, "empty.csv")
	writeCSV(t, full, "id,name\n0,a\n1,b\n2,c\n")
	writeCSV(t, empty, "id,name\n")

	ds, err := ReadMany(context.Background(), []string{full, empty})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, ds.Columns)
	assert.Equal(t, [][]string{{"0", "a"}, {"1", "b"}, {"2", "c"}}, ds.Rows)
}

func TestReadMany_PreservesFileOrder(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 20)
	var want [][]string
	for i := 0; i < 20; i++ {
		path := filepath.Join(dir, fmt.Sprintf("part_%d.csv", i))
		writeCSV(t, path, fmt.Sprintf("id,name\n%d,first%d\n%d,second%d\n", i, i, i, i))
		paths = append(paths, path)
		want = append(want,
			[]string{fmt.Sprintf("%d", i), fmt.Sprintf("first%d", i)},
			[]string{fmt.Sprintf("%d", i), fmt.Sprintf("second%d", i)})
	}

	ds, err := ReadMany(context.Background(), paths)
	require.NoError(t, err)
	assert.Equal(t, want, ds.Rows)
}

func TestReadMany_NotFoundFailsWhole(t *testing.T) {
	dir := t.TempDir()
	full := filepath.Join(dir, "full.csv")
	writeCSV(t, full, "id,name\n0,a\n")

	_, err := ReadMany(context.Background(), []string{full, filepath.Join(dir, "missing.csv")})

	var nfErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestReadMany_NoInputs(t *testing.T) {
	ds, err := ReadMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}
