package push

import (
	"context"

	"dodoensemble/internal/core/domain/subscription"
)

// NotificationData rides along with the payload so the Service Worker
// can open the right page when the notification is clicked.
type NotificationData struct {
	URL     string `json:"url"`
	EventID int64  `json:"eventId,omitempty"`
}

type Notification struct {
	Title string           `json:"title"`
	Body  string           `json:"body"`
	Icon  string           `json:"icon,omitempty"`
	Badge string           `json:"badge,omitempty"`
	Tag   string           `json:"tag,omitempty"`
	Data  NotificationData `json:"data"`
}

type Sender interface {
	SendNotification(ctx context.Context, sub subscription.Subscription, notification Notification) error
}
