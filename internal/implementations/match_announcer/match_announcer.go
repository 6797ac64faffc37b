package matchannouncer

import (
	"context"
	"encoding/json"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/movie"

	"github.com/r3labs/sse/v2"
)

const STREAM_ID = "movie-matches"

// SSE broadcasts movie matches to every open browser tab over a
// server-sent events stream so both partners see the match instantly.
type SSE struct {
	server *sse.Server
}

func NewSSE(server *sse.Server) *SSE {
	if server == nil {
		panic(e.NewNilArgumentError("server"))
	}
	server.CreateStream(STREAM_ID)
	return &SSE{server: server}
}

type matchEvent struct {
	MovieID   int64  `json:"movieId"`
	Title     string `json:"title"`
	PosterURL string `json:"posterUrl,omitempty"`
}

func (a *SSE) AnnounceMatch(ctx context.Context, m movie.Movie) error {
	data, err := json.Marshal(matchEvent{
		MovieID:   int64(m.ID),
		Title:     m.Title,
		PosterURL: m.PosterURL.Value,
	})
	if err != nil {
		return err
	}
	a.server.Publish(STREAM_ID, &sse.Event{
		Event: []byte("match"),
		Data:  data,
	})
	return nil
}
