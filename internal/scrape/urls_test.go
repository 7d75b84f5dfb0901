package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "scrapekit/internal/errors"
)

func TestJoinURLs_DropsEmptyEntries(t *testing.T) {
	got, err := JoinURLs("https://x.com", []string{"a/", "/b", "", "/"})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://x.com/a", "https://x.com/b"}, got)
}

func TestJoinURLs_NormalizesRoot(t *testing.T) {
	for _, root := range []string{"https://x.com", "https://x.com/", "https://x.com///"} {
		got, err := JoinURLs(root, []string{"page"})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://x.com/page"}, got)
	}
}

func TestJoinURLs_PreservesOrderAndDuplicates(t *testing.T) {
	got, err := JoinURLs("https://x.com", []string{"b", "a", "b"})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://x.com/b", "https://x.com/a", "https://x.com/b"}, got)
}

func TestJoinURLs_EmptyRoot(t *testing.T) {
	_, err := JoinURLs("", []string{"a"})

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestJoinURLs_NoRelatives(t *testing.T) {
	got, err := JoinURLs("https://x.com", nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}
