package deletemilestone

import (
	"errors"
	"net/http"
	"strconv"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/milestone"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/delete_milestone"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawMilestoneID := chi.URLParam(r, "milestoneID")
	milestoneID, err := strconv.ParseInt(rawMilestoneID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid milestone ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{MilestoneID: milestone.ID(milestoneID)})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist), errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, milestone.ErrMilestoneDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
