package dispatchreminders

import (
	"fmt"

	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/push"

	"github.com/golang-module/carbon/v2"
)

const NOTIFICATION_ICON = "/icon-192.png"
const NOTIFICATION_BADGE = "/badge-72.png"
const NOTIFICATION_URL = "/agenda"

const DAY_BEFORE_TAG = "event-reminder"
const THREE_HOUR_TAG = "event-reminder-3h"

// dayBeforeNotification builds the "tomorrow" reminder. The date is
// spelled out in long French form, the way the app displays it.
func dayBeforeNotification(ev event.Event) push.Notification {
	date := carbon.Parse(ev.Date).SetLocale("fr")
	body := fmt.Sprintf("Demain %s %d %s : %s", date.ToWeekString(), date.Day(), date.ToMonthString(), ev.Title)
	if ev.Time.IsPresent {
		body += " à " + ev.Time.Value
	}
	return push.Notification{
		Title: "Rappel événement demain !",
		Body:  body,
		Icon:  NOTIFICATION_ICON,
		Badge: NOTIFICATION_BADGE,
		Tag:   DAY_BEFORE_TAG,
		Data:  push.NotificationData{URL: NOTIFICATION_URL, EventID: int64(ev.ID)},
	}
}

func threeHourNotification(ev event.Event) push.Notification {
	body := fmt.Sprintf("Dans 3h : %s à %s", ev.Title, ev.Time.Value)
	if ev.Location.IsPresent {
		body += " - " + ev.Location.Value
	}
	return push.Notification{
		Title: "Événement dans 3h !",
		Body:  body,
		Icon:  NOTIFICATION_ICON,
		Badge: NOTIFICATION_BADGE,
		Tag:   THREE_HOUR_TAG,
		Data:  push.NotificationData{URL: NOTIFICATION_URL, EventID: int64(ev.ID)},
	}
}
