package getcheckin

import (
	"errors"
	"net/http"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/get_checkin"
	"dodoensemble/internal/http/handlers/response"
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

type Result struct {
	Checkins []response.Checkin `json:"checkins"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.service.Run(r.Context(), service.Input{Date: date})
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

	checkins := make([]response.Checkin, len(result.Checkins))
	for ix, ch := range result.Checkins {
		checkins[ix].FromDomainCheckin(ch)
	}
	response.Render(rw, Result{Checkins: checkins}, http.StatusOK)
}
