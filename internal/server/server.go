// Package server wires the study front-end together: the ui-api endpoints
// that the browser app calls, the reverse proxies for the backend API and
// Mechanical Turk, and the middleware stack around both.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/image-ranking-studies/studyfront/internal/client"
	"github.com/image-ranking-studies/studyfront/internal/config"
	"github.com/image-ranking-studies/studyfront/internal/logger"
	"github.com/image-ranking-studies/studyfront/internal/mturk"
	"github.com/image-ranking-studies/studyfront/internal/server/handlers"
	"github.com/image-ranking-studies/studyfront/internal/server/middleware"
	"github.com/image-ranking-studies/studyfront/internal/session"
)

const (
	// ServerShutdownTimeout is the timeout for graceful server shutdown
	ServerShutdownTimeout = 10 * time.Second

	maxRequestBodyBytes = 1 << 20 // 1 MiB
)

type Server struct {
	router   *chi.Mux
	config   *config.Config
	logger   *slog.Logger
	handlers *handlers.HandlerService
}

func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	apiClient := client.NewClient(cfg.APIBaseURL(), cfg.APICtxPath, logger)

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		handlers: &handlers.HandlerService{
			ApiClient:    apiClient,
			Sessions:     session.NewStore(),
			MTurk:        mturk.NewSubmitter(logger),
			Environment:  cfg.Environment,
			MTurkSandbox: cfg.MTurkSandbox,
		},
	}

	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Router returns the server's router, mainly for tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

func (s *Server) setupRoutes() error {
	ctxPath := s.config.CtxPath

	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.SecurityHeaders(s.config.Environment))
	s.router.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))

	corsMiddleware, err := middleware.NewCORS(s.config.Origins())
	if err != nil {
		return err
	}

	// ui-api: endpoints the browser app calls on this server
	s.router.Route(ctxPath+"ui-api", func(r chi.Router) {
		r.Use(corsMiddleware)
		r.Use(middleware.RequestSizeLimit(maxRequestBodyBytes))

		r.Post("/login", s.handlers.HandleLogin)
		r.Post("/logout", s.handlers.HandleLogout)

		r.Get("/samples/{studyType}/next", s.handlers.HandleNextSample)
		r.Get("/samples/{studyType}/{sampleID}", s.handlers.HandleLoadSample)
		r.Put("/results/{studyType}", s.handlers.HandleSubmitResult)

		r.Put("/feedback", s.handlers.HandleFeedback)
		r.Get("/images/{imageID}", s.handlers.HandleImageURL)
		r.Post("/images/urls", s.handlers.HandleImageURLs)
		r.Post("/mturk/submit", s.handlers.HandleMTurkSubmit)

		r.Group(func(r chi.Router) {
			r.Use(s.handlers.RequireSession)
			r.Get("/progress", s.handlers.HandleProgress)
		})
	})

	s.router.Get(ctxPath+"health/live", s.handlers.HandleLiveness)
	s.router.Get(ctxPath+"health/ready", s.handlers.HandleReadiness)

	// reverse proxies for the paths the browser app addresses relatively
	apiTarget, err := parseTargetURL(s.config.APIBaseURL() + strings.TrimSuffix(s.config.APICtxPath, "/"))
	if err != nil {
		return err
	}
	mturkTarget, err := parseTargetURL(mturk.EndpointURL(s.config.MTurkSandbox))
	if err != nil {
		return err
	}

	s.router.Handle(ctxPath+"api/*", newAPIProxy(apiTarget, ctxPath, s.logger))
	s.router.Handle(ctxPath+"mturk/*", newMTurkProxy(mturkTarget, ctxPath, s.logger))

	return nil
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("study front-end listening",
			slog.String("addr", addr),
			slog.String("ctx_path", s.config.CtxPath),
			slog.String("api", s.config.APIBaseURL()),
			slog.Bool("mturk_sandbox", s.config.MTurkSandbox),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down study front-end")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ServerShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server forced to shutdown", slog.String("error", err.Error()))
			return err
		}
	}

	return nil
}

func parseTargetURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy target URL %q: %w", raw, err)
	}
	return u, nil
}
