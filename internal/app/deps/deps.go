package deps

import (
	"context"
	"sync"
	"time"

	"dodoensemble/internal/config"
	"dodoensemble/internal/core/domain/checkin"
	"dodoensemble/internal/core/domain/event"
	dl "dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/milestone"
	"dodoensemble/internal/core/domain/movie"
	"dodoensemble/internal/core/domain/planning"
	"dodoensemble/internal/core/domain/push"
	drl "dodoensemble/internal/core/domain/rate_limiter"
	"dodoensemble/internal/core/domain/secretbox"
	"dodoensemble/internal/core/domain/subscription"
	"dodoensemble/internal/core/domain/user"
	dbcheckin "dodoensemble/internal/db/checkin"
	dbevent "dodoensemble/internal/db/event"
	dbmilestone "dodoensemble/internal/db/milestone"
	dbmovie "dodoensemble/internal/db/movie"
	dbplanning "dodoensemble/internal/db/planning"
	dbsecretbox "dodoensemble/internal/db/secretbox"
	dbsubscription "dodoensemble/internal/db/subscription"
	dbuser "dodoensemble/internal/db/user"
	"dodoensemble/internal/implementations/logging"
	matchannouncer "dodoensemble/internal/implementations/match_announcer"
	randomstringgenerator "dodoensemble/internal/implementations/random_string_generator"
	ratelimiter "dodoensemble/internal/implementations/rate_limiter"
	"dodoensemble/internal/implementations/webpush"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	SseServer *sse.Server

	Now      func() time.Time
	Location *time.Location

	UserRepository         user.Repository
	SessionRepository      user.SessionRepository
	EventRepository        event.Repository
	SubscriptionRepository subscription.Repository
	CheckinRepository      checkin.Repository
	MovieRepository        movie.Repository
	SwipeRepository        movie.SwipeRepository
	MilestoneRepository    milestone.Repository
	NoteRepository         secretbox.Repository
	PlanningRepository     planning.Repository

	RateLimiter           drl.RateLimiter
	SessionTokenGenerator user.SessionTokenGenerator
	PushSender            push.Sender
	MatchAnnouncer        movie.MatchAnnouncer
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeSseServer := deps.initSseServer()

	deps.initLocation()
	deps.Now = func() time.Time { return time.Now().In(deps.Location) }

	userRepository := dbuser.NewPgxUserRepository(deps.DB)
	if err := userRepository.EnsureExists(context.Background(), deps.Config.PartnerNames); err != nil {
		deps.Logger.Error(context.Background(), "Could not provision partner accounts.", dl.Entry("err", err))
		panic(err)
	}
	deps.UserRepository = userRepository
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.EventRepository = dbevent.NewPgxEventRepository(deps.DB)
	deps.SubscriptionRepository = dbsubscription.NewPgxSubscriptionRepository(deps.DB)
	deps.CheckinRepository = dbcheckin.NewPgxCheckinRepository(deps.DB)
	deps.MovieRepository = dbmovie.NewPgxMovieRepository(deps.DB)
	deps.SwipeRepository = dbmovie.NewPgxSwipeRepository(deps.DB)
	deps.MilestoneRepository = dbmilestone.NewPgxMilestoneRepository(deps.DB)
	deps.NoteRepository = dbsecretbox.NewPgxNoteRepository(deps.DB)
	deps.PlanningRepository = dbplanning.NewPgxPlanningRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.SessionTokenGenerator = randomstringgenerator.NewGenerator()
	deps.PushSender = webpush.NewSender(
		deps.Config.VapidPublicKey,
		deps.Config.VapidPrivateKey,
		deps.Config.VapidSubscriber,
	)
	deps.MatchAnnouncer = matchannouncer.NewSSE(deps.SseServer)

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initLocation() {
	location, err := time.LoadLocation(deps.Config.Timezone)
	if err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not load timezone, falling back to UTC.",
			dl.Entry("timezone", deps.Config.Timezone),
			dl.Entry("err", err),
		)
		location = time.UTC
	}
	deps.Location = location
}
