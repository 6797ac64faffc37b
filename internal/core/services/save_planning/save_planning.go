package saveplanning

import (
	"context"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/planning"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type DayInput struct {
	Weekday int
	Slot    string
}

type Input struct {
	UserID    user.ID
	WeekStart string
	Days      []DayInput
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct{}

type service struct {
	log                logging.Logger
	planningRepository planning.Repository
}

func New(
	log logging.Logger,
	planningRepository planning.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if planningRepository == nil {
		panic(e.NewNilArgumentError("planningRepository"))
	}
	return &service{log: log, planningRepository: planningRepository}
}

// Run replaces the user's grid for the week with the submitted days.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := event.ValidateDate(input.WeekStart); err != nil {
		return result, err
	}
	for _, day := range input.Days {
		if day.Weekday < 1 || day.Weekday > 7 {
			return result, planning.ErrInvalidWeekday
		}
	}

	entries := make([]planning.Entry, 0, len(input.Days))
	for _, day := range input.Days {
		entries = append(entries, planning.Entry{
			UserID:    input.UserID,
			WeekStart: input.WeekStart,
			Weekday:   day.Weekday,
			Slot:      day.Slot,
		})
	}
	err = s.planningRepository.SaveWeek(ctx, input.UserID, input.WeekStart, entries)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	s.log.Info(
		ctx,
		"Week planning saved.",
		logging.Entry("userID", input.UserID),
		logging.Entry("weekStart", input.WeekStart),
		logging.Entry("days", len(entries)),
	)
	return result, nil
}
