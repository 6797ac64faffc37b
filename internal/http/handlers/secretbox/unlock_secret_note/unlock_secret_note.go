package unlocksecretnote

import (
	"errors"
	"net/http"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/secretbox"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/unlock_secret_note"
	"dodoensemble/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
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
	Note response.Note `json:"note"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawNoteID := chi.URLParam(r, "noteID")
	noteID, err := uuid.Parse(rawNoteID)
	if err != nil {
		response.RenderError(rw, "invalid note ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{NoteID: noteID})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist), errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, secretbox.ErrNoteDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, secretbox.ErrNoteStillLocked):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	var n response.Note
	n.FromDomainNote(result.Note, true)
	response.Render(rw, Result{Note: n}, http.StatusOK)
}
