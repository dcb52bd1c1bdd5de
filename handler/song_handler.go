package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tsegayberhanu/echodash/apperr"
	"github.com/tsegayberhanu/echodash/dto"
	"github.com/tsegayberhanu/echodash/service"
)

type SongHandler struct {
	svc service.SongService
}

func NewSongHandler(svc service.SongService) *SongHandler { return &SongHandler{svc: svc} }

func (h *SongHandler) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/api/songs")

	g.GET("", h.ListSongs)
	g.POST("", h.CreateSong)
	g.GET("/:id", h.GetSong)
	g.PATCH("/:id", h.UpdateSong)
	g.DELETE("/:id", h.DeleteSong)
}

func (h *SongHandler) ListSongs(c *gin.Context) {
	f, err := dto.ParseSongFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	songs, total, err := h.svc.GetSongs(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPaginated(c, songs, f.Page, f.Limit, total)
}

func (h *SongHandler) CreateSong(c *gin.Context) {
	var req dto.CreateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.NewValidation("Invalid request body", nil))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}
	song, err := h.svc.CreateSong(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, song)
}

func (h *SongHandler) GetSong(c *gin.Context) {
	song, err := h.svc.GetSongByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, song)
}

func (h *SongHandler) UpdateSong(c *gin.Context) {
	var req dto.UpdateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.NewValidation("Invalid request body", nil))
		return
	}
	song, err := h.svc.UpdateSong(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, song)
}

func (h *SongHandler) DeleteSong(c *gin.Context) {
	if err := h.svc.DeleteSong(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c)
}
