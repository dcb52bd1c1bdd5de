package dto

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tsegayberhanu/echodash/apperr"
)

// Pagination is the canonical query-parameter shape shared by every list
// endpoint. Entity filters embed it and add their own fields. Unknown query
// keys are ignored.
type Pagination struct {
	Page   int    `form:"_page" validate:"gt=0"`
	Limit  int    `form:"_limit" validate:"gte=1,lte=100"`
	Search string `form:"_search"`
	Sort   string `form:"_sort"`
	Order  string `form:"_order" validate:"oneof=asc desc"`
}

type SongFilter struct {
	Pagination
	Artist string `form:"artist"`
	Genre  string `form:"genre"`
}

type ArtistFilter struct {
	Pagination
	MinSongs  *int `form:"minSongs" validate:"omitempty,gte=0"`
	MaxSongs  *int `form:"maxSongs" validate:"omitempty,gte=0"`
	MinAlbums *int `form:"minAlbums" validate:"omitempty,gte=0"`
	MaxAlbums *int `form:"maxAlbums" validate:"omitempty,gte=0"`
	MinGenres *int `form:"minGenres" validate:"omitempty,gte=0"`
	MaxGenres *int `form:"maxGenres" validate:"omitempty,gte=0"`
}

type AlbumFilter struct {
	Pagination
	MinSongs *int   `form:"minSongs" validate:"omitempty,gte=0"`
	MaxSongs *int   `form:"maxSongs" validate:"omitempty,gte=0"`
	Artist   string `form:"artist"`
}

type GenreFilter struct {
	Pagination
	MinSongs   *int `form:"minSongs" validate:"omitempty,gte=0"`
	MaxSongs   *int `form:"maxSongs" validate:"omitempty,gte=0"`
	MinArtists *int `form:"minArtists" validate:"omitempty,gte=0"`
	MaxArtists *int `form:"maxArtists" validate:"omitempty,gte=0"`
}

// GenreDetailFilter paginates the song list inside a single genre view,
// independently of the top-level genre listing.
type GenreDetailFilter struct {
	Pagination
}

var (
	SongSortFields        = []string{"title", "artist", "album", "genre"}
	ArtistSortFields      = []string{"artist", "songCount", "albumCount", "genreCount"}
	AlbumSortFields       = []string{"album", "songCount", "genreCount", "artist"}
	GenreSortFields       = []string{"genre", "songCount", "artistCount"}
	GenreDetailSortFields = []string{"title", "artist", "album"}
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func ParseSongFilter(q url.Values) (SongFilter, error) {
	p := parser{q: q}
	f := SongFilter{
		Pagination: p.pagination(100, "", "desc"),
		Artist:     q.Get("artist"),
		Genre:      q.Get("genre"),
	}
	p.sortWhitelist(f.Sort, SongSortFields)
	return f, p.finish(f)
}

func ParseArtistFilter(q url.Values) (ArtistFilter, error) {
	p := parser{q: q}
	f := ArtistFilter{
		Pagination: p.pagination(10, "songCount", "desc"),
		MinSongs:   p.number("minSongs"),
		MaxSongs:   p.number("maxSongs"),
		MinAlbums:  p.number("minAlbums"),
		MaxAlbums:  p.number("maxAlbums"),
		MinGenres:  p.number("minGenres"),
		MaxGenres:  p.number("maxGenres"),
	}
	p.sortWhitelist(f.Sort, ArtistSortFields)
	p.rangePair("minSongs", f.MinSongs, "maxSongs", f.MaxSongs)
	p.rangePair("minAlbums", f.MinAlbums, "maxAlbums", f.MaxAlbums)
	p.rangePair("minGenres", f.MinGenres, "maxGenres", f.MaxGenres)
	return f, p.finish(f)
}

func ParseAlbumFilter(q url.Values) (AlbumFilter, error) {
	p := parser{q: q}
	f := AlbumFilter{
		Pagination: p.pagination(10, "songCount", "desc"),
		MinSongs:   p.number("minSongs"),
		MaxSongs:   p.number("maxSongs"),
		Artist:     q.Get("artist"),
	}
	p.sortWhitelist(f.Sort, AlbumSortFields)
	p.rangePair("minSongs", f.MinSongs, "maxSongs", f.MaxSongs)
	return f, p.finish(f)
}

func ParseGenreFilter(q url.Values) (GenreFilter, error) {
	p := parser{q: q}
	f := GenreFilter{
		Pagination: p.pagination(10, "songCount", "desc"),
		MinSongs:   p.number("minSongs"),
		MaxSongs:   p.number("maxSongs"),
		MinArtists: p.number("minArtists"),
		MaxArtists: p.number("maxArtists"),
	}
	p.sortWhitelist(f.Sort, GenreSortFields)
	p.rangePair("minSongs", f.MinSongs, "maxSongs", f.MaxSongs)
	p.rangePair("minArtists", f.MinArtists, "maxArtists", f.MaxArtists)
	return f, p.finish(f)
}

func ParseGenreDetailFilter(q url.Values) (GenreDetailFilter, error) {
	p := parser{q: q}
	f := GenreDetailFilter{Pagination: p.pagination(10, "title", "asc")}
	p.sortWhitelist(f.Sort, GenreDetailSortFields)
	return f, p.finish(f)
}

// ParseLimit reads the bare `limit` key used by the top-N and recent-songs
// endpoints.
func ParseLimit(q url.Values, fallback int) (int, error) {
	raw := q.Get("limit")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 100 {
		return 0, apperr.NewValidation("Invalid Data", []apperr.FieldError{
			{Field: "limit", Message: "Limit must be 1-100"},
		})
	}
	return n, nil
}

// parser accumulates coercion failures and cross-field rule violations so a
// single response can report every failed rule.
type parser struct {
	q       url.Values
	details []apperr.FieldError
}

func (p *parser) pagination(defaultLimit int, defaultSort, defaultOrder string) Pagination {
	pg := Pagination{
		Page:   p.intOr("_page", 1),
		Limit:  p.intOr("_limit", defaultLimit),
		Search: p.q.Get("_search"),
		Sort:   p.q.Get("_sort"),
		Order:  p.q.Get("_order"),
	}
	if pg.Sort == "" {
		pg.Sort = defaultSort
	}
	if pg.Order == "" {
		pg.Order = defaultOrder
	}
	return pg
}

func (p *parser) intOr(name string, fallback int) int {
	raw := p.q.Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.details = append(p.details, apperr.FieldError{Field: name, Message: "Must be a number"})
		return fallback
	}
	return n
}

func (p *parser) number(name string) *int {
	raw := p.q.Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.details = append(p.details, apperr.FieldError{Field: name, Message: "Must be a positive number"})
		return nil
	}
	return &n
}

func (p *parser) sortWhitelist(sort string, allowed []string) {
	if sort == "" {
		return
	}
	for _, f := range allowed {
		if sort == f {
			return
		}
	}
	p.details = append(p.details, apperr.FieldError{
		Field:   "_sort",
		Message: "Sort field must be one of: " + strings.Join(allowed, ", "),
	})
}

func (p *parser) rangePair(minName string, min *int, maxName string, max *int) {
	if min != nil && max != nil && *min > *max {
		p.details = append(p.details, apperr.FieldError{
			Field:   minName,
			Message: fmt.Sprintf("%s cannot be greater than %s", minName, maxName),
		})
	}
}

// finish runs tag validation on the fully-parsed struct and folds the
// resulting rule failures into the accumulated details.
func (p *parser) finish(f any) error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return apperr.NewInternal("")
		}
		for _, fe := range verrs {
			p.details = append(p.details, apperr.FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
		}
	}
	if len(p.details) > 0 {
		return apperr.NewValidation("Invalid Data", p.details)
	}
	return nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "_page":
		return "Page must be greater than 0"
	case "_limit":
		return "Limit must be 1-100"
	case "_order":
		return "Order must be asc or desc"
	}
	if fe.Tag() == "gte" {
		return "Must be a positive number"
	}
	return "Invalid value"
}
