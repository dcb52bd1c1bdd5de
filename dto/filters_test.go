package dto

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsegayberhanu/echodash/apperr"
)

func asAppErr(t *testing.T, err error) *apperr.Error {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperr.Error)
	require.True(t, ok, "expected *apperr.Error, got %T", err)
	return appErr
}

func details(t *testing.T, appErr *apperr.Error) []apperr.FieldError {
	t.Helper()
	list, ok := appErr.Details.([]apperr.FieldError)
	require.True(t, ok, "expected []apperr.FieldError details, got %T", appErr.Details)
	return list
}

func fields(t *testing.T, appErr *apperr.Error) []string {
	list := details(t, appErr)
	names := make([]string, 0, len(list))
	for _, d := range list {
		names = append(names, d.Field)
	}
	return names
}

func TestParseSongFilterDefaults(t *testing.T) {
	f, err := ParseSongFilter(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 100, f.Limit)
	assert.Equal(t, "", f.Sort)
	assert.Equal(t, "desc", f.Order)
}

func TestParseArtistFilterDefaults(t *testing.T) {
	f, err := ParseArtistFilter(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, "songCount", f.Sort)
	assert.Equal(t, "desc", f.Order)
	assert.Nil(t, f.MinSongs)
}

func TestParseGenreDetailFilterDefaults(t *testing.T) {
	f, err := ParseGenreDetailFilter(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, "title", f.Sort)
	assert.Equal(t, "asc", f.Order)
}

func TestParsePageMustBePositive(t *testing.T) {
	q := url.Values{"_page": {"0"}}
	_, err := ParseSongFilter(q)

	appErr := asAppErr(t, err)
	assert.Equal(t, 422, appErr.Status)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, fields(t, appErr), "_page")
}

func TestParseLimitBounds(t *testing.T) {
	for _, raw := range []string{"0", "101", "-3"} {
		q := url.Values{"_limit": {raw}}
		_, err := ParseArtistFilter(q)
		appErr := asAppErr(t, err)
		assert.Contains(t, fields(t, appErr), "_limit", "limit=%s", raw)
	}
}

func TestParseRejectsNonNumericPage(t *testing.T) {
	q := url.Values{"_page": {"abc"}}
	_, err := ParseSongFilter(q)

	appErr := asAppErr(t, err)
	list := details(t, appErr)
	require.Len(t, list, 1)
	assert.Equal(t, "_page", list[0].Field)
	assert.Equal(t, "Must be a number", list[0].Message)
}

func TestParseOrderWhitelist(t *testing.T) {
	q := url.Values{"_order": {"sideways"}}
	_, err := ParseSongFilter(q)

	appErr := asAppErr(t, err)
	assert.Contains(t, fields(t, appErr), "_order")
}

func TestParseSortWhitelistPerEntity(t *testing.T) {
	q := url.Values{"_sort": {"albumCount"}}

	if _, err := ParseArtistFilter(q); err != nil {
		t.Fatalf("albumCount is valid for artists: %v", err)
	}

	_, err := ParseGenreFilter(q)
	appErr := asAppErr(t, err)
	assert.Contains(t, fields(t, appErr), "_sort")
}

func TestParseNegativeRangeBound(t *testing.T) {
	q := url.Values{"minSongs": {"-1"}}
	_, err := ParseArtistFilter(q)

	appErr := asAppErr(t, err)
	list := details(t, appErr)
	require.Len(t, list, 1)
	assert.Equal(t, "minSongs", list[0].Field)
	assert.Equal(t, "Must be a positive number", list[0].Message)
}

func TestParseMinGreaterThanMax(t *testing.T) {
	q := url.Values{"minSongs": {"5"}, "maxSongs": {"2"}}
	_, err := ParseAlbumFilter(q)

	appErr := asAppErr(t, err)
	list := details(t, appErr)
	require.Len(t, list, 1)
	assert.Equal(t, "minSongs", list[0].Field)
}

func TestParseAccumulatesEveryFailure(t *testing.T) {
	q := url.Values{
		"_page":    {"0"},
		"_limit":   {"500"},
		"minSongs": {"abc"},
	}
	_, err := ParseArtistFilter(q)

	appErr := asAppErr(t, err)
	names := fields(t, appErr)
	assert.Contains(t, names, "_page")
	assert.Contains(t, names, "_limit")
	assert.Contains(t, names, "minSongs")
}

func TestParseIgnoresUnknownParams(t *testing.T) {
	q := url.Values{"color": {"blue"}, "artist": {"Queen"}}
	f, err := ParseSongFilter(q)

	require.NoError(t, err)
	assert.Equal(t, "Queen", f.Artist)
}

func TestParseLimitKey(t *testing.T) {
	n, err := ParseLimit(url.Values{}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = ParseLimit(url.Values{"limit": {"7"}}, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = ParseLimit(url.Values{"limit": {"0"}}, 5)
	asAppErr(t, err)

	_, err = ParseLimit(url.Values{"limit": {"abc"}}, 5)
	asAppErr(t, err)
}
