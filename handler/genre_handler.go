package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tsegayberhanu/echodash/apperr"
	"github.com/tsegayberhanu/echodash/dto"
	"github.com/tsegayberhanu/echodash/service"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler { return &GenreHandler{svc: svc} }

func (h *GenreHandler) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/api/genres")

	g.GET("", h.ListGenres)
	g.GET("/artists", h.GetGenreArtists)
	g.GET("/:genreName", h.GetGenreDetail)
}

func (h *GenreHandler) ListGenres(c *gin.Context) {
	f, err := dto.ParseGenreFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	genres, total, err := h.svc.GetGenres(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPaginated(c, genres, f.Page, f.Limit, total)
}

func (h *GenreHandler) GetGenreArtists(c *gin.Context) {
	artists, err := h.svc.GetGenreArtists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, artists)
}

// GetGenreDetail answers through the paginated envelope: the detail object
// is the data, its song total drives the pagination meta.
func (h *GenreHandler) GetGenreDetail(c *gin.Context) {
	name := c.Param("genreName")
	if name == "" {
		respondError(c, apperr.NewValidation("Genre name is required", nil))
		return
	}
	f, err := dto.ParseGenreDetailFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	detail, err := h.svc.GetGenreDetail(c.Request.Context(), name, f)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPaginated(c, detail, f.Page, f.Limit, detail.TotalSongs)
}
