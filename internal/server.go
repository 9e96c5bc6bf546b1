package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitbuddy/internal/account"
	"github.com/2beens/fitbuddy/internal/auth"
	"github.com/2beens/fitbuddy/internal/config"
	"github.com/2beens/fitbuddy/internal/dashboard"
	"github.com/2beens/fitbuddy/internal/db"
	"github.com/2beens/fitbuddy/internal/middleware"
	"github.com/2beens/fitbuddy/internal/misc"
	"github.com/2beens/fitbuddy/internal/nutrition"
	"github.com/2beens/fitbuddy/internal/profile"
	"github.com/2beens/fitbuddy/internal/progress"
	"github.com/2beens/fitbuddy/internal/session"
	"github.com/2beens/fitbuddy/internal/telemetry/metrics"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/internal/wellness"
	"github.com/2beens/fitbuddy/internal/workout"
	"github.com/2beens/fitbuddy/pkg"
)

// freecache needs at least 512KB
const profileCacheSizeBytes = 1024 * 1024

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config         *config.Config
	dbPool         *pgxpool.Pool
	phrasesManager *misc.PhrasesManager
	profileCache   *profile.ExistenceCache

	redisClient  *redis.Client
	rateLimiter  middleware.RequestRateLimiter
	loginChecker auth.Checker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	Secrets                 *config.Secrets
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Secrets.PostgresUser,
		DBPassword:     params.Secrets.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitbuddy", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.Secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitbuddy-backend", rdb)
	if err != nil {
		return nil, err
	}

	if params.Config.PasswordHashCost > 0 {
		pkg.PasswordHashCost = params.Config.PasswordHashCost
	}

	phrasesManager, err := loadPhrases(params.Config.PhrasesCsvPath)
	if err != nil {
		return nil, err
	}

	sessionTTL := params.Config.SessionTTL()
	s := &Server{
		config:         params.Config,
		dbPool:         dbPool,
		versionInfo:    params.VersionInfo,
		phrasesManager: phrasesManager,
		profileCache:   profile.NewExistenceCache(profileCacheSizeBytes, params.Config.ProfileCacheTTLSeconds),

		redisClient:  rdb,
		rateLimiter:  redis_rate.NewLimiter(rdb),
		authService:  auth.NewAuthService(sessionTTL, rdb),
		loginChecker: auth.NewLoginChecker(sessionTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func loadPhrases(path string) (*misc.PhrasesManager, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return nil, fmt.Errorf("check phrases file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("phrases file [%s] not found", path)
	}

	phrasesCsvFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phrases file: %w", err)
	}
	defer func() {
		if err := phrasesCsvFile.Close(); err != nil {
			log.Warnf("close phrases csv file: %s", err)
		}
	}()

	phrasesManager, err := misc.NewPhrasesManager(csv.NewReader(phrasesCsvFile))
	if err != nil {
		return nil, fmt.Errorf("create phrases manager: %w", err)
	}
	return phrasesManager, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	activeStore := workout.NewActiveStore(s.redisClient, workout.DefaultActiveTTL)
	draftStore := nutrition.NewDraftStore(s.redisClient, nutrition.DefaultDraftTTL)

	profileService := profile.NewService(profile.NewRepo(s.dbPool), s.profileCache)
	workoutService := workout.NewService(workout.NewRepo(s.dbPool), activeStore)
	nutritionService := nutrition.NewService(nutrition.NewRepo(s.dbPool), draftStore, profileService)
	progressService := progress.NewService(progress.NewRepo(s.dbPool), profileService)
	wellnessService := wellness.NewService(wellness.NewRepo(s.dbPool), profileService)
	accountService := account.NewService(
		account.NewRepo(s.dbPool),
		s.authService,
		s.metricsManager,
		activeStore,
		draftStore,
		s.profileCache,
	)
	sessionLoader := session.NewLoader(session.Sources{
		Profiles: profileService,
		Workouts: workoutService,
		Food:     nutritionService,
		Progress: progressService,
		Wellness: wellnessService,
	})

	// open routes, and the ones that only need a logged account
	misc.NewHandler(s.phrasesManager, s.versionInfo).SetupRoutes(r)

	workoutHandler := workout.NewHandler(workoutService, s.metricsManager)
	workoutHandler.SetupCatalogRoutes(r)
	nutritionHandler := nutrition.NewHandler(nutritionService, s.metricsManager)
	nutritionHandler.SetupCatalogRoutes(r)

	account.NewHandler(accountService).SetupRoutes(
		r,
		s.rateLimiter,
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	)
	profile.NewHandler(profileService).SetupRoutes(r)
	session.NewHandler(sessionLoader).SetupRoutes(r)

	// everything else waits for the profile
	gated := r.NewRoute().Subrouter()
	workoutHandler.SetupRoutes(gated)
	nutritionHandler.SetupRoutes(gated)
	progress.NewHandler(progressService).SetupRoutes(gated)
	wellness.NewHandler(wellnessService).SetupRoutes(gated)
	dashboard.NewHandler(dashboard.NewService(dashboard.Sources{
		Profiles: profileService,
		Workouts: workoutService,
		Meals:    nutritionService,
		Wellness: wellnessService,
		Phrases:  s.phrasesManager,
	})).SetupRoutes(gated)
	gated.Use(middleware.ProfileRequired(profileService))

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	go s.cleanupSessions(ctx, s.config.SessionCleanupInterval())

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// cleanupSessions drops expired session tokens until ctx is done.
func (s *Server) cleanupSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("session cleanup stopped")
			return
		case <-ticker.C:
			s.authService.ScanAndClean(ctx)
		}
	}
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the storage goes away
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
