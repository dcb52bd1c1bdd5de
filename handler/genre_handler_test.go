package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsegayberhanu/echodash/domain"
	"github.com/tsegayberhanu/echodash/dto"
)

type fakeGenreService struct {
	genres  []domain.GenreSummary
	total   int
	detail  *domain.GenreDetail
	artists []string
	top     []domain.TopGenre
	err     error

	detailName   string
	detailFilter dto.GenreDetailFilter
}

func (f *fakeGenreService) GetGenres(_ context.Context, _ dto.GenreFilter) ([]domain.GenreSummary, int, error) {
	return f.genres, f.total, f.err
}

func (f *fakeGenreService) GetGenreDetail(_ context.Context, name string, filter dto.GenreDetailFilter) (*domain.GenreDetail, error) {
	f.detailName = name
	f.detailFilter = filter
	return f.detail, f.err
}

func (f *fakeGenreService) GetGenreArtists(_ context.Context) ([]string, error) {
	return f.artists, f.err
}

func (f *fakeGenreService) GetTopGenres(_ context.Context, _ int) ([]domain.TopGenre, error) {
	return f.top, f.err
}

func genreRouter(svc *fakeGenreService) *gin.Engine {
	r := gin.New()
	NewGenreHandler(svc).RegisterRoutes(r)
	return r
}

func TestListGenresEnvelope(t *testing.T) {
	r := genreRouter(&fakeGenreService{
		genres: []domain.GenreSummary{{Genre: "Rock", SongCount: 3, ArtistCount: 2, Artists: []string{"X", "Y"}}},
		total:  1,
	})

	w, body := doJSON(t, r, http.MethodGet, "/api/genres", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PAGINATED_RESULT", body["code"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	row := data[0].(map[string]any)
	assert.Equal(t, "Rock", row["genre"])
	assert.Equal(t, []any{"X", "Y"}, row["artists"])
}

func TestGenreArtistsIsFlatList(t *testing.T) {
	r := genreRouter(&fakeGenreService{artists: []string{"Kiss", "Queen"}})

	w, body := doJSON(t, r, http.MethodGet, "/api/genres/artists", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUCCESS", body["code"])
	assert.Equal(t, []any{"Kiss", "Queen"}, body["data"])
}

func TestGenreDetailPaginatesBySongTotal(t *testing.T) {
	svc := &fakeGenreService{
		detail: &domain.GenreDetail{
			Genre:      "Rock",
			SongCount:  25,
			Songs:      []domain.Song{{ID: "1", Title: "A", Genre: "Rock"}},
			TotalSongs: 25,
		},
	}
	r := genreRouter(svc)

	w, body := doJSON(t, r, http.MethodGet, "/api/genres/Rock?_page=2&_limit=10", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rock", svc.detailName)
	assert.Equal(t, 2, svc.detailFilter.Page)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Rock", data["genre"])

	p := body["meta"].(map[string]any)["pagination"].(map[string]any)
	assert.Equal(t, float64(25), p["totalItems"])
	assert.Equal(t, float64(3), p["totalPages"])
}

func TestGenreDetailDefaultSort(t *testing.T) {
	svc := &fakeGenreService{detail: &domain.GenreDetail{Genre: "Jazz"}}
	r := genreRouter(svc)

	w, _ := doJSON(t, r, http.MethodGet, "/api/genres/Jazz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "title", svc.detailFilter.Sort)
	assert.Equal(t, "asc", svc.detailFilter.Order)
}

func TestGenreDetailRejectsBadSort(t *testing.T) {
	r := genreRouter(&fakeGenreService{})

	w, body := doJSON(t, r, http.MethodGet, "/api/genres/Rock?_sort=songCount", "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}
