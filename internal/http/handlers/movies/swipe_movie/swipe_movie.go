package swipemovie

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/movie"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/swipe_movie"
	"dodoensemble/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Liked bool `json:"liked"`
}

type Result struct {
	IsMatch bool           `json:"is_match"`
	Movie   response.Movie `json:"movie"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawMovieID := chi.URLParam(r, "movieID")
	movieID, err := strconv.ParseInt(rawMovieID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid movie ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{MovieID: movie.ID(movieID), Liked: input.Liked},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist), errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, movie.ErrMovieDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	var m response.Movie
	m.FromDomainMovie(result.Movie)
	response.Render(rw, Result{IsMatch: result.IsMatch, Movie: m}, http.StatusOK)
}
