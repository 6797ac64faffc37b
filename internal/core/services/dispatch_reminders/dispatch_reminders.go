package dispatchreminders

import (
	"context"
	"time"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/push"
	"dodoensemble/internal/core/domain/subscription"
	"dodoensemble/internal/core/services"
)

// The three-hour reminder fires when now falls inside a ±30 minute
// window centered three hours before the event start, which tolerates
// the dispatcher being invoked on a 30 minute cadence instead of
// continuously.
const REMINDER_LEAD = 3 * time.Hour
const FIRING_WINDOW = 30 * time.Minute

type Input struct{}

type Result struct {
	NotificationsSent int
}

type service struct {
	log           logging.Logger
	events        event.Repository
	subscriptions subscription.Repository
	sender        push.Sender
	now           func() time.Time
}

func New(
	log logging.Logger,
	events event.Repository,
	subscriptions subscription.Repository,
	sender push.Sender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	if subscriptions == nil {
		panic(e.NewNilArgumentError("subscriptions"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:           log,
		events:        events,
		subscriptions: subscriptions,
		sender:        sender,
		now:           now,
	}
}

// Run scans every stored event against the current clock and fans the
// due reminders out to every registered subscription. It keeps no state
// between invocations: calling it twice inside an event's firing window
// sends the three-hour reminder twice. Duplicate suppression is the
// scheduling cadence's job.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	events, err := s.events.ReadAll(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	subscriptions, err := s.subscriptions.ReadAll(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	now := s.now()
	today := now.Format(event.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(event.DateLayout)

	sent := 0
	for _, ev := range events {
		if ev.Date == tomorrow {
			sent += s.fanOut(ctx, subscriptions, dayBeforeNotification(ev))
		}
		if ev.Date == today && ev.Time.IsPresent {
			startsAt, parseErr := ev.StartsAt(now.Location())
			if parseErr != nil {
				s.log.Warning(
					ctx,
					"Event has an unparsable time, skipped.",
					logging.Entry("eventID", ev.ID),
					logging.Entry("time", ev.Time.Value),
				)
				continue
			}
			delta := now.Sub(startsAt.Add(-REMINDER_LEAD))
			if delta < 0 {
				delta = -delta
			}
			if delta < FIRING_WINDOW {
				sent += s.fanOut(ctx, subscriptions, threeHourNotification(ev))
			}
		}
	}

	s.log.Info(
		ctx,
		"Reminder dispatch finished.",
		logging.Entry("events", len(events)),
		logging.Entry("subscriptions", len(subscriptions)),
		logging.Entry("notificationsSent", sent),
	)
	result.NotificationsSent = sent
	return result, nil
}

// fanOut attempts one delivery per subscription and returns the number
// of successful ones. A failed endpoint never stops the loop.
func (s *service) fanOut(
	ctx context.Context,
	subscriptions []subscription.Subscription,
	notification push.Notification,
) int {
	sent := 0
	for _, sub := range subscriptions {
		if err := s.sender.SendNotification(ctx, sub, notification); err != nil {
			s.log.Warning(
				ctx,
				"Push delivery failed.",
				logging.Entry("userID", sub.UserID),
				logging.Entry("tag", notification.Tag),
				logging.Entry("err", err),
			)
			continue
		}
		sent++
	}
	return sent
}
