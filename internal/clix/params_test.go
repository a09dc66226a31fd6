package clix

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette/internal/models"
)

func searchFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("search", pflag.ContinueOnError)
	fs.IntP("limit", "l", 0, "")
	fs.StringP("tags", "T", "", "")
	fs.StringP("kinds", "k", "", "")
	fs.String("from", "", "")
	fs.String("to", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestParsePagination(t *testing.T) {
	p, err := ParsePagination(searchFlags(t, "-l", "5"))
	require.NoError(t, err)
	assert.Equal(t, 5, p.Limit)

	p, err = ParsePagination(searchFlags(t))
	require.NoError(t, err)
	assert.Zero(t, p.Limit)

	_, err = ParsePagination(searchFlags(t, "--limit=-1"))
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestParseTags(t *testing.T) {
	tags, err := ParseTags(searchFlags(t, "--tags", " seo, ,Marketing ,"))
	require.NoError(t, err)
	assert.Equal(t, []string{"seo", "Marketing"}, tags)

	tags, err = ParseTags(searchFlags(t))
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds(searchFlags(t, "-k", "Article,event,article"))
	require.NoError(t, err)
	assert.Equal(t, []models.ContentKind{models.KindArticle, models.KindEvent}, kinds)

	_, err = ParseKinds(searchFlags(t, "-k", "podcast"))
	assert.ErrorIs(t, err, models.ErrUnknownKind)
}

func TestParseDateBounds(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		r, err := ParseDateBounds("", " ")
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("both dates cover whole end day", func(t *testing.T) {
		r, err := ParseDateBounds("2025-01-01", "2025-01-31")
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.True(t, r.Contains(time.Date(2025, 1, 31, 18, 0, 0, 0, time.UTC)))
		assert.False(t, r.Contains(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("open upper bound", func(t *testing.T) {
		r, err := ParseDateBounds("2025-03-01", "")
		require.NoError(t, err)
		assert.True(t, r.Contains(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.False(t, r.Contains(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("open lower bound rfc3339", func(t *testing.T) {
		r, err := ParseDateBounds("", "2025-03-01T12:00:00Z")
		require.NoError(t, err)
		assert.True(t, r.Contains(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.False(t, r.Contains(time.Date(2025, 3, 1, 12, 0, 1, 0, time.UTC)))
	})

	t.Run("reversed", func(t *testing.T) {
		_, err := ParseDateBounds("2025-02-01", "2025-01-01")
		assert.ErrorIs(t, err, models.ErrInvalidDateRange)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDateBounds("last week", "")
		assert.ErrorIs(t, err, models.ErrInvalidDateRange)
	})
}

func TestParseSearchFilters(t *testing.T) {
	f, err := ParseSearchFilters(searchFlags(t, "-k", "resource", "-T", "seo", "--from", "2025-01-01"))
	require.NoError(t, err)
	assert.Equal(t, []models.ContentKind{models.KindResource}, f.Kinds)
	assert.Equal(t, []string{"seo"}, f.Tags)
	require.NotNil(t, f.DateRange)
}
