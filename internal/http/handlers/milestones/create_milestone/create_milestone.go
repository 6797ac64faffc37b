package createmilestone

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/create_milestone"
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
	Date        string  `json:"date"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type Result struct {
	Milestone response.Milestone `json:"milestone"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Date, validation.Required, validation.Length(0, 10)),
		validation.Field(&i.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Description, validation.Length(0, 2048)),
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

	var description c.Optional[string]
	if input.Description != nil {
		description = c.NewOptional(*input.Description, true)
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{Date: input.Date, Title: input.Title, Description: description},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist), errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, event.ErrInvalidDate):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	var m response.Milestone
	m.FromDomainMilestone(result.Milestone)
	response.Render(rw, Result{Milestone: m}, http.StatusCreated)
}
