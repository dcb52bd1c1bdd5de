package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tsegayberhanu/echodash/apperr"
	"github.com/tsegayberhanu/echodash/dto"
	"github.com/tsegayberhanu/echodash/service"
)

type AlbumHandler struct {
	svc service.AlbumService
}

func NewAlbumHandler(svc service.AlbumService) *AlbumHandler { return &AlbumHandler{svc: svc} }

func (h *AlbumHandler) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/api/albums")

	g.GET("", h.ListAlbums)
	g.GET("/:albumName", h.GetAlbum)
}

func (h *AlbumHandler) ListAlbums(c *gin.Context) {
	f, err := dto.ParseAlbumFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	albums, total, err := h.svc.GetAlbums(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPaginated(c, albums, f.Page, f.Limit, total)
}

func (h *AlbumHandler) GetAlbum(c *gin.Context) {
	name := c.Param("albumName")
	if name == "" {
		respondError(c, apperr.NewValidation("Album name is required", nil))
		return
	}
	detail, err := h.svc.GetAlbumDetail(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, detail)
}
