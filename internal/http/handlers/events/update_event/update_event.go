package updateevent

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/update_event"
	"dodoensemble/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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
	Time        *string `json:"time"`
	Title       string  `json:"title"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	IsMystery   bool    `json:"is_mystery"`
}

type Result struct {
	Event response.Event `json:"event"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Date, validation.Required, validation.Length(0, 10)),
		validation.Field(&i.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Location, validation.Length(0, 256)),
		validation.Field(&i.Description, validation.Length(0, 2048)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawEventID := chi.URLParam(r, "eventID")
	eventID, err := strconv.ParseInt(rawEventID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid event ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			EventID:     event.ID(eventID),
			Date:        input.Date,
			Time:        optionalFromPtr(input.Time),
			Title:       input.Title,
			Location:    optionalFromPtr(input.Location),
			Description: optionalFromPtr(input.Description),
			IsMystery:   input.IsMystery,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist), errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, event.ErrEventDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, event.ErrInvalidDate), errors.Is(err, event.ErrInvalidTime):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	var ev response.Event
	ev.FromDomainEvent(result.Event)
	response.Render(rw, Result{Event: ev}, http.StatusOK)
}

func optionalFromPtr(s *string) c.Optional[string] {
	if s == nil {
		return c.Optional[string]{}
	}
	return c.NewOptional(*s, true)
}
