package getplanning

import (
	"errors"
	"net/http"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/get_planning"
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
	Entries []response.PlanningEntry `json:"entries"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	weekStart := r.URL.Query().Get("week_start")
	if weekStart == "" {
		response.RenderError(rw, "week_start is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{WeekStart: weekStart})
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

	entries := make([]response.PlanningEntry, len(result.Entries))
	for ix, entry := range result.Entries {
		entries[ix].FromDomainEntry(entry)
	}
	response.Render(rw, Result{Entries: entries}, http.StatusOK)
}
