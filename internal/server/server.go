package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	appcards "github.com/preston-bernstein/team-scores-service/internal/app/cards"
	"github.com/preston-bernstein/team-scores-service/internal/app/championship"
	"github.com/preston-bernstein/team-scores-service/internal/config"
	"github.com/preston-bernstein/team-scores-service/internal/domain/cards"
	httpserver "github.com/preston-bernstein/team-scores-service/internal/http"
	"github.com/preston-bernstein/team-scores-service/internal/http/handlers"
	"github.com/preston-bernstein/team-scores-service/internal/logging"
	"github.com/preston-bernstein/team-scores-service/internal/metrics"
	"github.com/preston-bernstein/team-scores-service/internal/poller"
	"github.com/preston-bernstein/team-scores-service/internal/providers"
	"github.com/preston-bernstein/team-scores-service/internal/publisher"
	"github.com/preston-bernstein/team-scores-service/internal/store"
	"github.com/preston-bernstein/team-scores-service/internal/stream"
	"github.com/preston-bernstein/team-scores-service/internal/view"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	cardsService  *appcards.Service
	hub           *stream.Hub
	redis         io.Closer
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider and default wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScoreboardProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.ScoreboardProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	provider = newProviderFactory(logger, recorder).build(cfg, provider)

	memoryStore := store.NewMemoryStore()
	var cardSvc *appcards.Service
	hub := stream.NewHub(logger, func() []cards.Card { return cardSvc.Cards() })

	sinks := []view.Sink{memoryStore, hub}
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		sinks = append(sinks, publisher.NewRedisPublisher(redisClient, cfg.Redis.Channel))
		logging.Info(logger, "redis card publisher enabled", "addr", cfg.Redis.Addr, "channel", cfg.Redis.Channel)
	}
	renderer := view.NewCardRenderer(logger, recorder, sinks...)

	plr := poller.New(provider, renderer, poller.Config{
		Leagues:  cfg.Leagues,
		Teams:    cfg.Teams,
		Resolver: championship.NewResolver(championship.DefaultRules),
		Interval: cfg.PollInterval,
	}, logger, recorder)
	cardSvc = appcards.NewService(memoryStore, plr.ViewKeys())

	httpSrv := buildHTTPServer(cfg, cardSvc, hub, logger, recorder, plr)

	srv := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		cardsService:  cardSvc,
		hub:           hub,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
	if redisClient != nil {
		srv.redis = redisClient
	}
	return srv
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, cardSvc *appcards.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:          cfg,
		logger:       logger,
		cardsService: cardSvc,
		httpServer:   httpSrv,
		poller:       plr,
	}
}

func buildHTTPServer(cfg config.Config, cardSvc *appcards.Service, hub *stream.Hub, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:        handlers.NewHandler(cardSvc, logger, statusFn),
		Stream:         hub,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
		Recorder:       recorder,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the stream hub, poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startStream(ctx)
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startStream(ctx context.Context) {
	if s.hub == nil {
		return
	}
	go s.hub.Run(ctx)
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			logging.Warn(s.logger, "redis close failed", logging.FieldError, err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
