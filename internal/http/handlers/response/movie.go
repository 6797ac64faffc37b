package response

import (
	"time"

	"dodoensemble/internal/core/domain/movie"
)

type Movie struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	PosterURL *string   `json:"poster_url"`
	AddedBy   int64     `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Movie) FromDomainMovie(dm movie.Movie) {
	m.ID = int64(dm.ID)
	m.Title = dm.Title
	if dm.PosterURL.IsPresent {
		m.PosterURL = &dm.PosterURL.Value
	}
	m.AddedBy = int64(dm.AddedBy)
	m.CreatedAt = dm.CreatedAt
}
