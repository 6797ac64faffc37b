package savesubscription

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	service "dodoensemble/internal/core/services/save_subscription"
	"dodoensemble/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
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

type inputKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// Input mirrors the serialized PushSubscription produced by the
// browser's Push API.
type Input struct {
	Endpoint string    `json:"endpoint"`
	Keys     inputKeys `json:"keys"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	if err := validation.ValidateStruct(&i,
		validation.Field(&i.Endpoint, validation.Required, is.URL, validation.Length(0, 2048)),
	); err != nil {
		return err
	}
	return validation.ValidateStruct(&i.Keys,
		validation.Field(&i.Keys.P256dh, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Keys.Auth, validation.Required, validation.Length(0, 512)),
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

	_, err := h.service.Run(
		r.Context(),
		service.Input{
			Endpoint: input.Endpoint,
			P256dh:   input.Keys.P256dh,
			Auth:     input.Keys.Auth,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist), errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, struct{}{}, http.StatusCreated)
}
