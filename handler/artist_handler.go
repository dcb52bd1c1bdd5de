package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tsegayberhanu/echodash/apperr"
	"github.com/tsegayberhanu/echodash/dto"
	"github.com/tsegayberhanu/echodash/service"
)

type ArtistHandler struct {
	svc service.ArtistService
}

func NewArtistHandler(svc service.ArtistService) *ArtistHandler { return &ArtistHandler{svc: svc} }

func (h *ArtistHandler) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/api/artists")

	g.GET("", h.ListArtists)
	g.GET("/:artistName", h.GetArtist)
}

func (h *ArtistHandler) ListArtists(c *gin.Context) {
	f, err := dto.ParseArtistFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	artists, total, err := h.svc.GetArtists(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPaginated(c, artists, f.Page, f.Limit, total)
}

func (h *ArtistHandler) GetArtist(c *gin.Context) {
	name := c.Param("artistName")
	if name == "" {
		respondError(c, apperr.NewValidation("Artist name is required", nil))
		return
	}
	detail, err := h.svc.GetArtistDetail(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, detail)
}
