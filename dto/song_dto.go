package dto

import (
	"strings"

	"github.com/tsegayberhanu/echodash/apperr"
)

type CreateSongRequest struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	Genre  string `json:"genre"`
}

// Validate trims every field and checks the required ones.
func (r *CreateSongRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Artist = strings.TrimSpace(r.Artist)
	r.Album = strings.TrimSpace(r.Album)
	r.Genre = strings.TrimSpace(r.Genre)

	var details []apperr.FieldError
	if r.Title == "" {
		details = append(details, apperr.FieldError{Field: "title", Message: "Title is required"})
	}
	if r.Artist == "" {
		details = append(details, apperr.FieldError{Field: "artist", Message: "Artist is required"})
	}
	if len(details) > 0 {
		return apperr.NewValidation("Invalid Data", details)
	}
	return nil
}

// UpdateSongRequest is a partial update: nil fields are left untouched.
type UpdateSongRequest struct {
	Title  *string `json:"title"`
	Artist *string `json:"artist"`
	Album  *string `json:"album"`
	Genre  *string `json:"genre"`
}

// Updates trims the provided fields and returns them keyed by their stored
// field names. Title and artist may not be cleared.
func (r *UpdateSongRequest) Updates() (map[string]string, error) {
	var details []apperr.FieldError
	updates := make(map[string]string)

	set := func(name string, v *string, required bool) {
		if v == nil {
			return
		}
		trimmed := strings.TrimSpace(*v)
		if required && trimmed == "" {
			details = append(details, apperr.FieldError{Field: name, Message: name + " cannot be empty"})
			return
		}
		updates[name] = trimmed
	}
	set("title", r.Title, true)
	set("artist", r.Artist, true)
	set("album", r.Album, false)
	set("genre", r.Genre, false)

	if len(details) > 0 {
		return nil, apperr.NewValidation("Invalid Data", details)
	}
	return updates, nil
}
