package app

import (
	"fmt"
	"net/http"

	"dodoensemble/internal/app/deps"
	"dodoensemble/internal/app/services"
	"dodoensemble/internal/http/handlers/auth"
	loginwithname "dodoensemble/internal/http/handlers/auth/log_in_with_name"
	logout "dodoensemble/internal/http/handlers/auth/log_out"
	me "dodoensemble/internal/http/handlers/auth/me"
	answercheckin "dodoensemble/internal/http/handlers/checkin/answer_checkin"
	getcheckin "dodoensemble/internal/http/handlers/checkin/get_checkin"
	triggerdispatch "dodoensemble/internal/http/handlers/dispatch/trigger_dispatch"
	createevent "dodoensemble/internal/http/handlers/events/create_event"
	deleteevent "dodoensemble/internal/http/handlers/events/delete_event"
	listevents "dodoensemble/internal/http/handlers/events/list_events"
	updateevent "dodoensemble/internal/http/handlers/events/update_event"
	createmilestone "dodoensemble/internal/http/handlers/milestones/create_milestone"
	deletemilestone "dodoensemble/internal/http/handlers/milestones/delete_milestone"
	listmilestones "dodoensemble/internal/http/handlers/milestones/list_milestones"
	addmovie "dodoensemble/internal/http/handlers/movies/add_movie"
	listmatches "dodoensemble/internal/http/handlers/movies/list_matches"
	listmovies "dodoensemble/internal/http/handlers/movies/list_movies"
	matchevents "dodoensemble/internal/http/handlers/movies/match_events"
	swipemovie "dodoensemble/internal/http/handlers/movies/swipe_movie"
	getplanning "dodoensemble/internal/http/handlers/planning/get_planning"
	saveplanning "dodoensemble/internal/http/handlers/planning/save_planning"
	createsecretnote "dodoensemble/internal/http/handlers/secretbox/create_secret_note"
	listsecretnotes "dodoensemble/internal/http/handlers/secretbox/list_secret_notes"
	unlocksecretnote "dodoensemble/internal/http/handlers/secretbox/unlock_secret_note"
	savesubscription "dodoensemble/internal/http/handlers/subscriptions/save_subscription"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/login", loginwithname.New(s.LogInWithName))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))

	eventsRouter := chi.NewRouter()
	eventsRouter.Use(auth.SetAuthTokenToContext)
	eventsRouter.Method(http.MethodGet, "/", listevents.New(s.ListEvents))
	eventsRouter.Method(http.MethodPost, "/", createevent.New(s.CreateEvent))
	eventsRouter.Method(http.MethodPut, "/{eventID:[0-9]+}", updateevent.New(s.UpdateEvent))
	eventsRouter.Method(http.MethodDelete, "/{eventID:[0-9]+}", deleteevent.New(s.DeleteEvent))

	subscriptionsRouter := chi.NewRouter()
	subscriptionsRouter.Use(auth.SetAuthTokenToContext)
	subscriptionsRouter.Method(http.MethodPost, "/", savesubscription.New(s.SaveSubscription))

	checkinRouter := chi.NewRouter()
	checkinRouter.Use(auth.SetAuthTokenToContext)
	checkinRouter.Method(http.MethodPost, "/", answercheckin.New(s.AnswerCheckin))
	checkinRouter.Method(http.MethodGet, "/", getcheckin.New(s.GetCheckin))

	moviesRouter := chi.NewRouter()
	moviesRouter.Use(auth.SetAuthTokenToContext)
	moviesRouter.Method(http.MethodGet, "/", listmovies.New(s.ListMovies))
	moviesRouter.Method(http.MethodPost, "/", addmovie.New(s.AddMovie))
	moviesRouter.Method(http.MethodPost, "/{movieID:[0-9]+}/swipe", swipemovie.New(s.SwipeMovie))
	moviesRouter.Method(http.MethodGet, "/matches", listmatches.New(s.ListMatches))
	moviesRouter.Method(
		http.MethodGet,
		"/matches/events",
		matchevents.New(deps.Logger, deps.SseServer, s.GetUserBySessionToken),
	)

	milestonesRouter := chi.NewRouter()
	milestonesRouter.Use(auth.SetAuthTokenToContext)
	milestonesRouter.Method(http.MethodGet, "/", listmilestones.New(s.ListMilestones))
	milestonesRouter.Method(http.MethodPost, "/", createmilestone.New(s.CreateMilestone))
	milestonesRouter.Method(
		http.MethodDelete,
		"/{milestoneID:[0-9]+}",
		deletemilestone.New(s.DeleteMilestone),
	)

	secretboxRouter := chi.NewRouter()
	secretboxRouter.Use(auth.SetAuthTokenToContext)
	secretboxRouter.Method(http.MethodGet, "/", listsecretnotes.New(s.ListSecretNotes))
	secretboxRouter.Method(http.MethodPost, "/", createsecretnote.New(s.CreateSecretNote))
	secretboxRouter.Method(http.MethodPost, "/{noteID}/unlock", unlocksecretnote.New(s.UnlockSecretNote))

	planningRouter := chi.NewRouter()
	planningRouter.Use(auth.SetAuthTokenToContext)
	planningRouter.Method(http.MethodGet, "/", getplanning.New(s.GetPlanning))
	planningRouter.Method(http.MethodPut, "/", saveplanning.New(s.SavePlanning))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/events", eventsRouter)
	router.Mount("/subscriptions", subscriptionsRouter)
	router.Mount("/checkin", checkinRouter)
	router.Mount("/movies", moviesRouter)
	router.Mount("/milestones", milestonesRouter)
	router.Mount("/secretbox", secretboxRouter)
	router.Mount("/planning", planningRouter)
	router.Method(
		http.MethodPost,
		"/api/send-reminders",
		triggerdispatch.New(s.DispatchReminders, deps.Config.DispatchSecret),
	)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
