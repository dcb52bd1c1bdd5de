package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tsegayberhanu/echodash/dto"
	"github.com/tsegayberhanu/echodash/service"
)

// StatsHandler serves the dashboard surface: global counts, flat per-entity
// stats, top-N rankings and the recent-songs strip.
type StatsHandler struct {
	stats   service.StatsService
	songs   service.SongService
	artists service.ArtistService
	albums  service.AlbumService
	genres  service.GenreService
}

func NewStatsHandler(
	stats service.StatsService,
	songs service.SongService,
	artists service.ArtistService,
	albums service.AlbumService,
	genres service.GenreService,
) *StatsHandler {
	return &StatsHandler{stats: stats, songs: songs, artists: artists, albums: albums, genres: genres}
}

func (h *StatsHandler) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/api/stats")

	g.GET("", h.HomeStats)

	g.GET("/artists", h.AllArtistStats)
	g.GET("/artists/top-artists", h.TopArtists)
	g.GET("/artists/:artist", h.ArtistStats)

	g.GET("/albums", h.AllAlbumStats)
	g.GET("/albums/top-albums", h.TopAlbums)
	g.GET("/albums/:album", h.AlbumStats)

	g.GET("/genres", h.AllGenreStats)
	g.GET("/genres/top-genres", h.TopGenres)
	g.GET("/genres/:genre", h.GenreStats)

	g.GET("/songs/recent-songs", h.RecentSongs)
}

func (h *StatsHandler) HomeStats(c *gin.Context) {
	stats, err := h.stats.HomeStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

func (h *StatsHandler) AllArtistStats(c *gin.Context) {
	stats, err := h.stats.GetAllArtistStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

func (h *StatsHandler) ArtistStats(c *gin.Context) {
	stats, err := h.stats.GetArtistStats(c.Request.Context(), c.Param("artist"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

func (h *StatsHandler) AllAlbumStats(c *gin.Context) {
	stats, err := h.stats.GetAllAlbumStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

func (h *StatsHandler) AlbumStats(c *gin.Context) {
	stats, err := h.stats.GetAlbumStats(c.Request.Context(), c.Param("album"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

func (h *StatsHandler) AllGenreStats(c *gin.Context) {
	stats, err := h.stats.GetAllGenreStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

func (h *StatsHandler) GenreStats(c *gin.Context) {
	stats, err := h.stats.GetGenreStats(c.Request.Context(), c.Param("genre"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

func (h *StatsHandler) TopArtists(c *gin.Context) {
	limit, err := dto.ParseLimit(c.Request.URL.Query(), 5)
	if err != nil {
		respondError(c, err)
		return
	}
	top, err := h.artists.GetTopArtists(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, top)
}

func (h *StatsHandler) TopAlbums(c *gin.Context) {
	limit, err := dto.ParseLimit(c.Request.URL.Query(), 5)
	if err != nil {
		respondError(c, err)
		return
	}
	top, err := h.albums.GetTopAlbums(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, top)
}

func (h *StatsHandler) TopGenres(c *gin.Context) {
	limit, err := dto.ParseLimit(c.Request.URL.Query(), 5)
	if err != nil {
		respondError(c, err)
		return
	}
	top, err := h.genres.GetTopGenres(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, top)
}

func (h *StatsHandler) RecentSongs(c *gin.Context) {
	limit, err := dto.ParseLimit(c.Request.URL.Query(), 10)
	if err != nil {
		respondError(c, err)
		return
	}
	songs, err := h.songs.GetRecentSongs(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, songs)
}
