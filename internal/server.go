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
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mpavlovic/fitlog/internal/assistant"
	"github.com/mpavlovic/fitlog/internal/auth"
	"github.com/mpavlovic/fitlog/internal/config"
	"github.com/mpavlovic/fitlog/internal/daykey"
	"github.com/mpavlovic/fitlog/internal/db"
	"github.com/mpavlovic/fitlog/internal/exercises"
	"github.com/mpavlovic/fitlog/internal/middleware"
	"github.com/mpavlovic/fitlog/internal/misc"
	"github.com/mpavlovic/fitlog/internal/telemetry/metrics"
	metricsmiddleware "github.com/mpavlovic/fitlog/internal/telemetry/metrics/middleware"
	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"
	"github.com/mpavlovic/fitlog/internal/trainings"
	"github.com/mpavlovic/fitlog/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	dbPool        *pgxpool.Pool
	dayResolver   *daykey.Resolver
	openAIClient  *openai.Client
	quotesManager *misc.QuotesManager

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	OpenAIApiKey            string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
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
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitlog", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitlog-backend")
	if err != nil {
		return nil, err
	}

	dayResolver, err := daykey.NewResolver(params.Config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("new day resolver: %w", err)
	}

	openAIConfig := openai.DefaultConfig(params.OpenAIApiKey)
	openAIConfig.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		dayResolver: dayResolver,
		versionInfo: params.VersionInfo,

		openAIClient: openai.NewClientWithConfig(openAIConfig),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	quotesCsvFile, err := os.Open(params.Config.QuotesCsvPath)
	if err != nil {
		return nil, fmt.Errorf("open quotes file: %w", err)
	}
	defer func() {
		if err := quotesCsvFile.Close(); err != nil {
			log.Warnf("close quotes csv file: %s", err)
		}
	}()

	s.quotesManager, err = misc.NewQuotesManager(csv.NewReader(quotesCsvFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create quotes manager: %w", err)
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	exercisesRepo := exercises.NewRepo(s.dbPool)
	exercisesHandler := exercises.NewHandler(exercisesRepo)
	r.HandleFunc("/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/categories", exercisesHandler.HandleAddCategory).Methods("POST", "OPTIONS").Name("new-category")
	r.HandleFunc("/categories", exercisesHandler.HandleListCategories).Methods("GET", "OPTIONS").Name("list-categories")
	r.HandleFunc("/categories/{id}", exercisesHandler.HandleDeleteCategory).Methods("DELETE", "OPTIONS").Name("delete-category")

	setsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(
		setsRepo,
		workouts.NewAnalyzer(setsRepo),
		s.dayResolver,
		s.metricsManager,
	)
	r.HandleFunc("/sets", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-set")
	r.HandleFunc("/sets", workoutsHandler.HandleListForDay).Methods("GET", "OPTIONS").Name("list-sets")
	r.HandleFunc("/sets/{id}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-set")
	r.HandleFunc("/sets/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-set")
	r.HandleFunc("/stats/weekly", workoutsHandler.HandleWeeklyStats).Methods("GET", "OPTIONS").Name("weekly-stats")
	r.HandleFunc("/stats/monthly", workoutsHandler.HandleMonthlyStats).Methods("GET", "OPTIONS").Name("monthly-stats")

	trainingsHandler := trainings.NewHandler(
		trainings.NewService(trainings.NewRepo(s.dbPool), s.dayResolver),
	)
	r.HandleFunc("/trainings/start", trainingsHandler.HandleTrainingStart).Methods("POST", "OPTIONS").Name("training-start")
	r.HandleFunc("/trainings/finish", trainingsHandler.HandleTrainingFinish).Methods("POST", "OPTIONS").Name("training-finish")
	r.HandleFunc("/trainings/timer", trainingsHandler.HandleTimerFinish).Methods("POST", "OPTIONS").Name("timer-finish")
	r.HandleFunc("/trainings/list/page/{page}/size/{size}", trainingsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-trainings")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	assistantService := assistant.NewService(
		exercisesRepo,
		setsRepo,
		assistant.NewIntentResolver(s.openAIClient, s.config.AssistantModels),
		assistant.NewSuggestionStore(
			s.redisClient,
			time.Duration(s.config.SuggestionsTTLMins)*time.Minute,
		),
		s.dayResolver,
		s.metricsManager,
	)
	assistantHandler := assistant.NewHandler(
		assistantService,
		assistant.NewTranscriber(s.openAIClient, s.config.TranscriptionModel),
		s.metricsManager,
	)
	assistantRouter := r.PathPrefix("/assistant").Subrouter()
	assistantRouter.HandleFunc("/chat", assistantHandler.HandleChat).Methods("POST", "OPTIONS").Name("assistant-chat")
	assistantRouter.HandleFunc("/voice", assistantHandler.HandleVoice).Methods("POST", "OPTIONS").Name("assistant-voice")
	// model calls are not free, keep the assistant behind a rate limit
	assistantRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		"assistant",
		s.config.AssistantRateLimitAllowedPerMin,
		s.metricsManager,
	))

	miscHandler := misc.NewHandler(s.quotesManager, s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(_ context.Context, host string, port int) {
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
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
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

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
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
