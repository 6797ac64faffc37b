package answercheckin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/answer_checkin"
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
	Date   string `json:"date"`
	Answer bool   `json:"answer"`
}

type Result struct {
	Checkin response.Checkin `json:"checkin"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Date, validation.Length(0, 10)),
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

	result, err := h.service.Run(r.Context(), service.Input{Date: input.Date, Answer: input.Answer})
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

	var ch response.Checkin
	ch.FromDomainCheckin(result.Checkin)
	response.Render(rw, Result{Checkin: ch}, http.StatusOK)
}
