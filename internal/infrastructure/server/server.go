package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/CatOS/backend/internal/api/http"
	"github.com/GriffinCanCode/CatOS/backend/internal/api/middleware"
	"github.com/GriffinCanCode/CatOS/backend/internal/api/ws"
	"github.com/GriffinCanCode/CatOS/backend/internal/domain/events"
	"github.com/GriffinCanCode/CatOS/backend/internal/domain/session"
	"github.com/GriffinCanCode/CatOS/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/CatOS/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/CatOS/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/CatOS/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	session *session.Session
	hub     *ws.Hub
	stream  *ws.Handler
	tracer  *tracing.Tracer
	metrics *monitoring.Metrics
	logger  *logging.Logger
	config  *config.Config
}

// Option overrides a dependency, mainly for tests
type Option func(*options)

type options struct {
	clock  clock.Clock
	random chance.Source
	logger *logging.Logger
}

// WithClock drives every timer from c
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithRandom replaces the seeded random source
func WithRandom(src chance.Source) Option {
	return func(o *options) { o.random = src }
}

// WithLogger replaces the logger built from the config
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New wires the desktop session to the HTTP API and WebSocket stream
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.random == nil {
		o.random = chance.New(cfg.Simulation.Seed)
	}

	logger := o.logger
	if logger == nil {
		var err error
		logger, err = logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
	}

	logger.Info("Initializing CatOS server",
		zap.String("addr", cfg.Address()),
		zap.Strings("cors_origins", cfg.CORS.Origins),
	)

	catalogue := events.Default()
	if cfg.Simulation.Catalogue != "" {
		loaded, err := events.LoadFile(cfg.Simulation.Catalogue)
		if err != nil {
			return nil, err
		}
		catalogue = loaded
		logger.Info("Loaded event catalogue", zap.String("path", cfg.Simulation.Catalogue))
	}

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("catos", logger.Component("access").Logger)
	hub := ws.NewHub(ws.HubOptions{
		Clock:    o.clock,
		Logger:   logger,
		Recorder: metrics,
	})

	sess := session.New(session.Options{
		Clock:       o.clock,
		Random:      o.random,
		Catalogue:   catalogue,
		Observer:    session.Observers{hub, metrics},
		Logger:      logger,
		Timing:      timing(cfg.Simulation),
		LogCapacity: cfg.Simulation.LogCapacity,
	})

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.Origins...)))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}

	handlers := apihttp.NewHandlers(sess, logger)
	handlers.Register(router)

	wsHandler := ws.NewHandler(hub, sess, originChecker(cfg.CORS.Origins))
	router.GET("/stream", wsHandler.HandleConnection)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized", zap.String("session_id", sess.ID().String()))

	return &Server{
		router:  router,
		session: sess,
		hub:     hub,
		stream:  wsHandler,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
		config:  cfg,
	}, nil
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Session returns the desktop session served by s
func (s *Server) Session() *session.Session {
	return s.session
}

// Run boots the desktop and serves until ctx is cancelled, then shuts down
// gracefully and releases every resource.
func (s *Server) Run(ctx context.Context) error {
	if err := s.session.Start(); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	srv := &http.Server{
		Addr:              s.config.Address(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("HTTP shutdown failed", zap.Error(err))
			serveErr = fmt.Errorf("failed to shut down http server: %w", err)
		}
	case err, ok := <-errCh:
		if ok {
			serveErr = fmt.Errorf("http server: %w", err)
		}
	}

	if err := s.Close(); err != nil && serveErr == nil {
		serveErr = err
	}
	return serveErr
}

// Close stops the session timers, disconnects stream clients and flushes
// the access log. Safe to call more than once.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	if err := s.session.Close(); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	s.hub.Close()
	s.stream.Shutdown()
	s.tracer.Close()

	_ = s.logger.Sync()
	return nil
}

func timing(c config.SimulationConfig) session.Timing {
	return session.Timing{
		AttentionDecay:       c.AttentionDecay,
		PrioritySelect:       c.PrioritySelect,
		ProcessSimulation:    c.ProcessSimulation,
		RandomEvents:         c.RandomEvents,
		CrashProgress:        c.CrashProgress,
		CrashSettle:          c.CrashSettle,
		LostInterestDelay:    c.LostInterestDelay,
		ZoomiesDuration:      c.ZoomiesDuration,
		NotificationDuration: c.NotificationDuration,
	}
}

// originChecker mirrors the CORS policy for WebSocket upgrades
func originChecker(origins []string) func(r *http.Request) bool {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return nil
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(origins, origin)
	}
}
