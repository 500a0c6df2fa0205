package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/loanlens/emi-calculator/internal/calculation"
	"github.com/loanlens/emi-calculator/internal/config"
	"github.com/loanlens/emi-calculator/internal/output"
	"github.com/loanlens/emi-calculator/internal/repository"
)

// Dependencies contains server dependencies.
type Dependencies struct {
	Engine   *calculation.CalculationEngine
	Cache    repository.CacheRepository
	Logger   *logrus.Logger
	Settings config.ServerSettings
	Labels   output.LabelStyle
}

// Server exposes the calculator over HTTP and owns the live chart surfaces.
type Server struct {
	engine    *calculation.CalculationEngine
	cache     repository.CacheRepository
	logger    *logrus.Logger
	settings  config.ServerSettings
	labels    output.LabelStyle
	presenter *output.Presenter
	limiter   *RateLimiter
	ownCache  *repository.MemoryCache // default cache created by New, closed by Close
	now       func() time.Time
}

// New wires a server. A nil cache falls back to an in-memory cache and a
// nil logger to logrus.StandardLogger().
func New(deps Dependencies) *Server {
	if deps.Engine == nil {
		deps.Engine = calculation.NewCalculationEngine()
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	var ownCache *repository.MemoryCache
	if deps.Cache == nil {
		ownCache = repository.NewMemoryCache(deps.Settings.CacheTTL)
		deps.Cache = ownCache
	}
	s := &Server{
		engine:    deps.Engine,
		cache:     deps.Cache,
		logger:    deps.Logger,
		settings:  deps.Settings,
		labels:    deps.Labels,
		presenter: output.NewPresenter(deps.Engine.TierClassifier(), deps.Labels),
		ownCache:  ownCache,
		now:       time.Now,
	}
	if deps.Settings.RateLimit > 0 {
		s.limiter = NewRateLimiter(deps.Settings.RateLimit, deps.Settings.RateWindow)
	}
	return s
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(LogMiddleware(s.logger))
	router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	if s.limiter != nil {
		api.Use(RateLimitMiddleware(s.limiter))
	}
	api.HandleFunc("/loans/calculate", s.calculate).Methods(http.MethodPost)
	api.HandleFunc("/loans/classify", s.classify).Methods(http.MethodGet)
	api.HandleFunc("/messages", s.message).Methods(http.MethodPost)
	api.HandleFunc("/chart", s.chart).Methods(http.MethodGet)
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.Close()
	srv := &http.Server{
		Addr:         s.settings.Addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting server on %s", s.settings.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("Server gracefully stopped")
	return nil
}

// Close stops background work and clears the live artifacts.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.ownCache != nil {
		_ = s.ownCache.Close()
	}
	for _, surface := range []*output.Surface{s.presenter.Bar, s.presenter.Pie, s.presenter.Gauge, s.presenter.Table} {
		surface.Clear()
	}
}
