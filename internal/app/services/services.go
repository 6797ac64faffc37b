package services

import (
	"dodoensemble/internal/app/deps"
	drl "dodoensemble/internal/core/domain/rate_limiter"
	"dodoensemble/internal/core/services"
	addmovie "dodoensemble/internal/core/services/add_movie"
	answercheckin "dodoensemble/internal/core/services/answer_checkin"
	"dodoensemble/internal/core/services/auth"
	createevent "dodoensemble/internal/core/services/create_event"
	createmilestone "dodoensemble/internal/core/services/create_milestone"
	createsecretnote "dodoensemble/internal/core/services/create_secret_note"
	deleteevent "dodoensemble/internal/core/services/delete_event"
	deletemilestone "dodoensemble/internal/core/services/delete_milestone"
	dispatchreminders "dodoensemble/internal/core/services/dispatch_reminders"
	getcheckin "dodoensemble/internal/core/services/get_checkin"
	getplanning "dodoensemble/internal/core/services/get_planning"
	getuserbysessiontoken "dodoensemble/internal/core/services/get_user_by_session_token"
	listevents "dodoensemble/internal/core/services/list_events"
	listmatches "dodoensemble/internal/core/services/list_matches"
	listmilestones "dodoensemble/internal/core/services/list_milestones"
	listmovies "dodoensemble/internal/core/services/list_movies"
	listsecretnotes "dodoensemble/internal/core/services/list_secret_notes"
	loginwithname "dodoensemble/internal/core/services/log_in_with_name"
	logout "dodoensemble/internal/core/services/log_out"
	ratelimiting "dodoensemble/internal/core/services/rate_limiting"
	saveplanning "dodoensemble/internal/core/services/save_planning"
	savesubscription "dodoensemble/internal/core/services/save_subscription"
	swipemovie "dodoensemble/internal/core/services/swipe_movie"
	unlocksecretnote "dodoensemble/internal/core/services/unlock_secret_note"
	updateevent "dodoensemble/internal/core/services/update_event"
)

type Services struct {
	LogInWithName         services.Service[loginwithname.Input, loginwithname.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]

	CreateEvent services.Service[createevent.Input, createevent.Result]
	ListEvents  services.Service[listevents.Input, listevents.Result]
	UpdateEvent services.Service[updateevent.Input, updateevent.Result]
	DeleteEvent services.Service[deleteevent.Input, deleteevent.Result]

	SaveSubscription  services.Service[savesubscription.Input, savesubscription.Result]
	DispatchReminders services.Service[dispatchreminders.Input, dispatchreminders.Result]

	AnswerCheckin services.Service[answercheckin.Input, answercheckin.Result]
	GetCheckin    services.Service[getcheckin.Input, getcheckin.Result]

	AddMovie    services.Service[addmovie.Input, addmovie.Result]
	ListMovies  services.Service[listmovies.Input, listmovies.Result]
	SwipeMovie  services.Service[swipemovie.Input, swipemovie.Result]
	ListMatches services.Service[listmatches.Input, listmatches.Result]

	CreateMilestone services.Service[createmilestone.Input, createmilestone.Result]
	ListMilestones  services.Service[listmilestones.Input, listmilestones.Result]
	DeleteMilestone services.Service[deletemilestone.Input, deletemilestone.Result]

	CreateSecretNote services.Service[createsecretnote.Input, createsecretnote.Result]
	ListSecretNotes  services.Service[listsecretnotes.Input, listsecretnotes.Result]
	UnlockSecretNote services.Service[unlocksecretnote.Input, unlocksecretnote.Result]

	SavePlanning services.Service[saveplanning.Input, saveplanning.Result]
	GetPlanning  services.Service[getplanning.Input, getplanning.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.LogInWithName = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithname.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(deps.SessionRepository)

	s.CreateEvent = auth.WithAuthentication(
		deps.SessionRepository,
		createevent.New(deps.Logger, deps.EventRepository, deps.Now),
	)
	s.ListEvents = auth.WithAuthentication(
		deps.SessionRepository,
		listevents.New(deps.Logger, deps.EventRepository),
	)
	s.UpdateEvent = auth.WithAuthentication(
		deps.SessionRepository,
		updateevent.New(deps.Logger, deps.EventRepository),
	)
	s.DeleteEvent = auth.WithAuthentication(
		deps.SessionRepository,
		deleteevent.New(deps.Logger, deps.EventRepository),
	)

	s.SaveSubscription = auth.WithAuthentication(
		deps.SessionRepository,
		savesubscription.New(deps.Logger, deps.SubscriptionRepository, deps.Now),
	)
	s.DispatchReminders = dispatchreminders.New(
		deps.Logger,
		deps.EventRepository,
		deps.SubscriptionRepository,
		deps.PushSender,
		deps.Now,
	)

	s.AnswerCheckin = auth.WithAuthentication(
		deps.SessionRepository,
		answercheckin.New(deps.Logger, deps.CheckinRepository, deps.Now),
	)
	s.GetCheckin = auth.WithAuthentication(
		deps.SessionRepository,
		getcheckin.New(deps.Logger, deps.CheckinRepository),
	)

	s.AddMovie = auth.WithAuthentication(
		deps.SessionRepository,
		addmovie.New(deps.Logger, deps.MovieRepository, deps.Now),
	)
	s.ListMovies = auth.WithAuthentication(
		deps.SessionRepository,
		listmovies.New(deps.Logger, deps.MovieRepository),
	)
	s.SwipeMovie = auth.WithAuthentication(
		deps.SessionRepository,
		swipemovie.New(
			deps.Logger,
			deps.MovieRepository,
			deps.SwipeRepository,
			deps.MatchAnnouncer,
			deps.Now,
		),
	)
	s.ListMatches = auth.WithAuthentication(
		deps.SessionRepository,
		listmatches.New(deps.Logger, deps.SwipeRepository),
	)

	s.CreateMilestone = auth.WithAuthentication(
		deps.SessionRepository,
		createmilestone.New(deps.Logger, deps.MilestoneRepository, deps.Now),
	)
	s.ListMilestones = auth.WithAuthentication(
		deps.SessionRepository,
		listmilestones.New(deps.Logger, deps.MilestoneRepository),
	)
	s.DeleteMilestone = auth.WithAuthentication(
		deps.SessionRepository,
		deletemilestone.New(deps.Logger, deps.MilestoneRepository),
	)

	s.CreateSecretNote = auth.WithAuthentication(
		deps.SessionRepository,
		createsecretnote.New(deps.Logger, deps.NoteRepository, deps.Now),
	)
	s.ListSecretNotes = auth.WithAuthentication(
		deps.SessionRepository,
		listsecretnotes.New(deps.Logger, deps.NoteRepository, deps.Now),
	)
	s.UnlockSecretNote = auth.WithAuthentication(
		deps.SessionRepository,
		unlocksecretnote.New(deps.Logger, deps.NoteRepository, deps.Now),
	)

	s.SavePlanning = auth.WithAuthentication(
		deps.SessionRepository,
		saveplanning.New(deps.Logger, deps.PlanningRepository),
	)
	s.GetPlanning = auth.WithAuthentication(
		deps.SessionRepository,
		getplanning.New(deps.Logger, deps.PlanningRepository),
	)

	return s
}
