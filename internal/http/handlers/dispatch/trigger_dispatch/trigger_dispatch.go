package triggerdispatch

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/dispatch_reminders"
	"dodoensemble/internal/http/handlers/response"
)

const SECRET_HEADER = "X-Dispatch-Secret"

// Handler triggers a reminder dispatch run. The endpoint is meant for
// an external cron caller and is guarded by a shared secret instead of
// a user session.
type Handler struct {
	service services.Service[service.Input, service.Result]
	secret  string
}

func New(
	service services.Service[service.Input, service.Result],
	secret string,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if secret == "" {
		panic(e.NewNilArgumentError("secret"))
	}
	return &Handler{service: service, secret: secret}
}

type Result struct {
	Success           bool   `json:"success"`
	NotificationsSent int    `json:"notificationsSent"`
	Message           string `json:"message"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.RenderError(rw, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	given := r.Header.Get(SECRET_HEADER)
	if subtle.ConstantTimeCompare([]byte(given), []byte(h.secret)) != 1 {
		response.RenderError(rw, "invalid dispatch secret", http.StatusUnauthorized)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{
		Success:           true,
		NotificationsSent: result.NotificationsSent,
		Message:           fmt.Sprintf("%d notification(s) envoyée(s)", result.NotificationsSent),
	}, http.StatusOK)
}
