package matchevents

import (
	"errors"
	"net/http"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/get_user_by_session_token"
	"dodoensemble/internal/http/handlers/auth"
	"dodoensemble/internal/http/handlers/response"
	matchannouncer "dodoensemble/internal/implementations/match_announcer"

	"github.com/r3labs/sse/v2"
)

// Handler attaches the client to the movie match event stream. The
// session token may come from the Authorization header or from the
// "token" query parameter, since EventSource cannot set headers.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
	service   services.Service[service.Input, service.Result]
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	service services.Service[service.Input, service.Result],
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{log: log, sseServer: sseServer, service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		token = user.SessionToken(r.URL.Query().Get("token"))
	}
	if token == "" {
		response.RenderUnauthorized(rw)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Token: token})
	if errors.Is(err, user.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	h.log.Info(
		r.Context(),
		"Subscribed to movie match events.",
		logging.Entry("userID", result.User.ID),
	)

	q := r.URL.Query()
	q.Set("stream", matchannouncer.STREAM_ID)
	r.URL.RawQuery = q.Encode()
	h.sseServer.ServeHTTP(rw, r)
}
