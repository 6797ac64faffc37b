package createsecretnote

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/create_secret_note"
	"dodoensemble/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
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
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	UnlocksAt *time.Time `json:"unlocks_at"`
}

type Result struct {
	Note response.Note `json:"note"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Body, validation.Required, validation.Length(1, 8192)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	var unlocksAt c.Optional[time.Time]
	if input.UnlocksAt != nil {
		unlocksAt = c.NewOptional(input.UnlocksAt.UTC(), true)
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{Title: input.Title, Body: input.Body, UnlocksAt: unlocksAt},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist), errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	var n response.Note
	n.FromDomainNote(result.Note, false)
	response.Render(rw, Result{Note: n}, http.StatusCreated)
}
