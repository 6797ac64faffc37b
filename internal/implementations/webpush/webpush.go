package webpush

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/push"
	"dodoensemble/internal/core/domain/subscription"

	webpush "github.com/SherClockHolmes/webpush-go"
)

const SEND_TIMEOUT = 10 * time.Second

// Sender delivers Web Push messages through the browser push services
// using VAPID authentication.
type Sender struct {
	vapidPublicKey  string
	vapidPrivateKey string
	subscriber      string
}

func NewSender(vapidPublicKey, vapidPrivateKey, subscriber string) *Sender {
	if vapidPublicKey == "" {
		panic(e.NewNilArgumentError("vapidPublicKey"))
	}
	if vapidPrivateKey == "" {
		panic(e.NewNilArgumentError("vapidPrivateKey"))
	}
	return &Sender{
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
		subscriber:      subscriber,
	}
}

func (s *Sender) SendNotification(
	ctx context.Context,
	sub subscription.Subscription,
	notification push.Notification,
) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		TTL:             int(24 * time.Hour / time.Second),
		HTTPClient:      &http.Client{Timeout: SEND_TIMEOUT},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("push service responded with status %d", resp.StatusCode)
	}
	return nil
}
