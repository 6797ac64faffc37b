package saveplanning

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/planning"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/save_planning"
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

type inputDay struct {
	Weekday int    `json:"weekday"`
	Slot    string `json:"slot"`
}

type Input struct {
	WeekStart string     `json:"week_start"`
	Days      []inputDay `json:"days"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.WeekStart, validation.Required, validation.Length(0, 10)),
		validation.Field(&i.Days, validation.Required, validation.Length(1, 7)),
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

	days := make([]service.DayInput, len(input.Days))
	for ix, day := range input.Days {
		days[ix] = service.DayInput{Weekday: day.Weekday, Slot: day.Slot}
	}

	_, err := h.service.Run(r.Context(), service.Input{WeekStart: input.WeekStart, Days: days})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist), errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, planning.ErrInvalidWeekday), errors.Is(err, event.ErrInvalidDate):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
