package dispatchreminders

import (
	"context"
	"errors"
	"testing"
	"time"

	c "dodoensemble/internal/core/domain/common"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/push"
	"dodoensemble/internal/core/domain/subscription"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"

	"github.com/stretchr/testify/suite"
)

// 17:00 on a Monday; "today" is 2025-09-01, "tomorrow" is 2025-09-02.
var Now = time.Date(2025, 9, 1, 17, 0, 0, 0, time.UTC)

const Today = "2025-09-01"
const Tomorrow = "2025-09-02"

var Sub1 = subscription.Subscription{
	ID:       1,
	UserID:   user.ID(1),
	Endpoint: "https://push.example.com/sub-1",
	Keys:     subscription.Keys{P256dh: "p256dh-1", Auth: "auth-1"},
}
var Sub2 = subscription.Subscription{
	ID:       2,
	UserID:   user.ID(2),
	Endpoint: "https://push.example.com/sub-2",
	Keys:     subscription.Keys{P256dh: "p256dh-2", Auth: "auth-2"},
}

type testSuite struct {
	suite.Suite
	logger        *logging.FakeLogger
	events        *event.TestEventRepository
	subscriptions *subscription.TestSubscriptionRepository
	sender        *push.TestSender
}

func TestDispatchRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.logger = logging.NewFakeLogger()
	s.events = event.NewTestEventRepository()
	s.subscriptions = subscription.NewTestSubscriptionRepository()
	s.sender = push.NewTestSender()
}

func (s *testSuite) newService(now time.Time) services.Service[Input, Result] {
	return New(
		s.logger,
		s.events,
		s.subscriptions,
		s.sender,
		func() time.Time { return now },
	)
}

func (s *testSuite) TestDayBeforeReminderForTomorrowEvent() {
	s.events.Events = []event.Event{
		{ID: 10, Date: Tomorrow, Title: "Dîner"},
	}
	s.subscriptions.Subscriptions = []subscription.Subscription{Sub1}

	result, err := s.newService(Now).Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(1, result.NotificationsSent)
	assert.Len(s.sender.Sent, 1)
	sent := s.sender.Sent[0]
	assert.Equal(Sub1, sent.Subscription)
	assert.Equal("event-reminder", sent.Notification.Tag)
	assert.Equal("Rappel événement demain !", sent.Notification.Title)
	assert.Contains(sent.Notification.Body, "Demain")
	assert.Contains(sent.Notification.Body, "Dîner")
	assert.NotContains(sent.Notification.Body, " à ")
	assert.Equal(int64(10), sent.Notification.Data.EventID)
	assert.Equal("/agenda", sent.Notification.Data.URL)
}

func (s *testSuite) TestDayBeforeReminderIncludesTimeWhenPresent() {
	s.events.Events = []event.Event{
		{ID: 11, Date: Tomorrow, Time: c.NewOptional("19:30", true), Title: "Concert"},
	}
	s.subscriptions.Subscriptions = []subscription.Subscription{Sub1}

	result, err := s.newService(Now).Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(1, result.NotificationsSent)
	assert.Contains(s.sender.Sent[0].Notification.Body, "Concert à 19:30")
}

func (s *testSuite) TestNoDayBeforeReminderForOtherDates() {
	cases := []struct {
		id   string
		date string
	}{
		{id: "today", date: Today},
		{id: "two days ahead", date: "2025-09-03"},
		{id: "yesterday", date: "2025-08-31"},
		{id: "next month", date: "2025-10-02"},
	}
	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			s.SetupTest()
			s.events.Events = []event.Event{{ID: 1, Date: testcase.date, Title: "Brunch"}}
			s.subscriptions.Subscriptions = []subscription.Subscription{Sub1}

			result, err := s.newService(Now).Run(context.Background(), Input{})

			s.Nil(err)
			s.Equal(0, result.NotificationsSent)
			s.Equal(0, s.sender.Attempts)
		})
	}
}

func (s *testSuite) TestThreeHourReminderWindow() {
	cases := []struct {
		id         string
		now        time.Time
		shouldFire bool
	}{
		{id: "exactly three hours before", now: Now, shouldFire: true},
		{id: "29 minutes early", now: Now.Add(-29 * time.Minute), shouldFire: true},
		{id: "29 minutes late", now: Now.Add(29 * time.Minute), shouldFire: true},
		{id: "30 minutes early", now: Now.Add(-30 * time.Minute), shouldFire: false},
		{id: "30 minutes late", now: Now.Add(30 * time.Minute), shouldFire: false},
		{id: "one hour early", now: Now.Add(-time.Hour), shouldFire: false},
		{id: "61 minutes early", now: Now.Add(-61 * time.Minute), shouldFire: false},
	}
	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			s.SetupTest()
			s.events.Events = []event.Event{
				{ID: 2, Date: Today, Time: c.NewOptional("20:00", true), Title: "Ciné"},
			}
			s.subscriptions.Subscriptions = []subscription.Subscription{Sub1}

			result, err := s.newService(testcase.now).Run(context.Background(), Input{})

			s.Nil(err)
			if testcase.shouldFire {
				s.Equal(1, result.NotificationsSent)
				s.Require().Len(s.sender.Sent, 1)
				s.Equal("event-reminder-3h", s.sender.Sent[0].Notification.Tag)
			} else {
				s.Equal(0, result.NotificationsSent)
				s.Equal(0, s.sender.Attempts)
			}
		})
	}
}

func (s *testSuite) TestNoThreeHourReminderWithoutTime() {
	for _, hour := range []int{0, 8, 17, 23} {
		now := time.Date(2025, 9, 1, hour, 0, 0, 0, time.UTC)
		s.SetupTest()
		s.events.Events = []event.Event{{ID: 3, Date: Today, Title: "Journée off"}}
		s.subscriptions.Subscriptions = []subscription.Subscription{Sub1, Sub2}

		result, err := s.newService(now).Run(context.Background(), Input{})

		s.Nil(err)
		s.Equal(0, result.NotificationsSent)
		s.Equal(0, s.sender.Attempts)
	}
}

func (s *testSuite) TestThreeHourReminderFansOutToAllSubscriptions() {
	// Scenario: "Ciné" at 20:00, invoked at 17:00 with two subscriptions.
	s.events.Events = []event.Event{
		{ID: 4, Date: Today, Time: c.NewOptional("20:00", true), Title: "Ciné"},
	}
	s.subscriptions.Subscriptions = []subscription.Subscription{Sub1, Sub2}

	result, err := s.newService(Now).Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(2, result.NotificationsSent)
	assert.Len(s.sender.Sent, 2)
	for _, sent := range s.sender.Sent {
		assert.Equal("event-reminder-3h", sent.Notification.Tag)
		assert.Equal("Événement dans 3h !", sent.Notification.Title)
		assert.Equal("Dans 3h : Ciné à 20:00", sent.Notification.Body)
	}
}

func (s *testSuite) TestThreeHourReminderIncludesLocation() {
	s.events.Events = []event.Event{
		{
			ID:       5,
			Date:     Today,
			Time:     c.NewOptional("20:00", true),
			Title:    "Ciné",
			Location: c.NewOptional("Pathé Bellecour", true),
		},
	}
	s.subscriptions.Subscriptions = []subscription.Subscription{Sub1}

	_, err := s.newService(Now).Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Require().Len(s.sender.Sent, 1)
	s.Equal("Dans 3h : Ciné à 20:00 - Pathé Bellecour", s.sender.Sent[0].Notification.Body)
}

func (s *testSuite) TestDeliveryFailureDoesNotStopFanOut() {
	sub3 := subscription.Subscription{
		ID:       3,
		UserID:   user.ID(1),
		Endpoint: "https://push.example.com/sub-3",
	}
	s.events.Events = []event.Event{{ID: 6, Date: Tomorrow, Title: "Dîner"}}
	s.subscriptions.Subscriptions = []subscription.Subscription{Sub1, Sub2, sub3}
	s.sender.ErrorByEndpoint[Sub2.Endpoint] = errors.New("410 gone")

	result, err := s.newService(Now).Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(3, s.sender.Attempts)
	assert.Equal(2, result.NotificationsSent)
	assert.Len(s.sender.Sent, 2)
	assert.Equal(Sub1.Endpoint, s.sender.Sent[0].Subscription.Endpoint)
	assert.Equal(sub3.Endpoint, s.sender.Sent[1].Subscription.Endpoint)
}

func (s *testSuite) TestPoliciesNeverDoubleFireForOneInvocation() {
	// A dated event cannot be both "tomorrow" and "today in the window"
	// at once, but it gets each reminder on the matching invocation.
	ev := event.Event{ID: 7, Date: Tomorrow, Time: c.NewOptional("20:00", true), Title: "Ciné"}
	s.events.Events = []event.Event{ev}
	s.subscriptions.Subscriptions = []subscription.Subscription{Sub1}

	// Invoked the day before: only the day-before reminder.
	result, err := s.newService(Now).Run(context.Background(), Input{})
	s.Require().Nil(err)
	s.Equal(1, result.NotificationsSent)
	s.Require().Len(s.sender.Sent, 1)
	s.Equal("event-reminder", s.sender.Sent[0].Notification.Tag)

	// Invoked on the event day at 17:00: only the three-hour reminder.
	s.sender = push.NewTestSender()
	dayOf := time.Date(2025, 9, 2, 17, 0, 0, 0, time.UTC)
	result, err = s.newService(dayOf).Run(context.Background(), Input{})
	s.Require().Nil(err)
	s.Equal(1, result.NotificationsSent)
	s.Require().Len(s.sender.Sent, 1)
	s.Equal("event-reminder-3h", s.sender.Sent[0].Notification.Tag)
}

func (s *testSuite) TestRepeatedInvocationInsideWindowSendsTwice() {
	// The dispatcher keeps no "already sent" state, so overlapping runs
	// duplicate the three-hour reminder. That is the documented contract.
	s.events.Events = []event.Event{
		{ID: 8, Date: Today, Time: c.NewOptional("20:00", true), Title: "Ciné"},
	}
	s.subscriptions.Subscriptions = []subscription.Subscription{Sub1}
	service := s.newService(Now)

	first, err := service.Run(context.Background(), Input{})
	s.Require().Nil(err)
	second, err := service.Run(context.Background(), Input{})
	s.Require().Nil(err)

	s.Equal(1, first.NotificationsSent)
	s.Equal(1, second.NotificationsSent)
	s.Len(s.sender.Sent, 2)
}

func (s *testSuite) TestNoEvents() {
	s.subscriptions.Subscriptions = []subscription.Subscription{Sub1}

	result, err := s.newService(Now).Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Equal(0, result.NotificationsSent)
	s.Equal(0, s.sender.Attempts)
}

func (s *testSuite) TestNoSubscriptions() {
	s.events.Events = []event.Event{{ID: 9, Date: Tomorrow, Title: "Dîner"}}

	result, err := s.newService(Now).Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Equal(0, result.NotificationsSent)
	s.Equal(0, s.sender.Attempts)
}

func (s *testSuite) TestEventsFetchFailureAbortsInvocation() {
	s.events.ReadError = errors.New("connection refused")
	s.subscriptions.Subscriptions = []subscription.Subscription{Sub1}

	_, err := s.newService(Now).Run(context.Background(), Input{})

	assert := s.Require()
	assert.ErrorIs(err, s.events.ReadError)
	assert.Equal(0, s.subscriptions.ReadCount)
	assert.Equal(0, s.sender.Attempts)
}

func (s *testSuite) TestSubscriptionsFetchFailureAbortsInvocation() {
	s.events.Events = []event.Event{{ID: 1, Date: Tomorrow, Title: "Dîner"}}
	s.subscriptions.ReadError = errors.New("connection refused")

	_, err := s.newService(Now).Run(context.Background(), Input{})

	assert := s.Require()
	assert.ErrorIs(err, s.subscriptions.ReadError)
	assert.Equal(0, s.sender.Attempts)
}

func (s *testSuite) TestBothPoliciesAcrossSeveralEvents() {
	s.events.Events = []event.Event{
		{ID: 1, Date: Tomorrow, Title: "Dîner"},
		{ID: 2, Date: Today, Time: c.NewOptional("20:00", true), Title: "Ciné"},
		{ID: 3, Date: Today, Title: "Sans heure"},
		{ID: 4, Date: "2025-09-10", Title: "Plus tard"},
	}
	s.subscriptions.Subscriptions = []subscription.Subscription{Sub1, Sub2}

	result, err := s.newService(Now).Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	// Day-before for event 1 and three-hour for event 2, to both subs.
	assert.Equal(4, result.NotificationsSent)
	tags := make(map[string]int)
	for _, sent := range s.sender.Sent {
		tags[sent.Notification.Tag]++
	}
	assert.Equal(2, tags["event-reminder"])
	assert.Equal(2, tags["event-reminder-3h"])
}
