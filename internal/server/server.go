// Пакет server: HTTP-сервер каталога пресетов с graceful shutdown.
// Без TLS: TLS termination выполняется на ingress.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bigkaa/preset-catalog/internal/api/envelope"
	"github.com/bigkaa/preset-catalog/internal/api/handlers"
	"github.com/bigkaa/preset-catalog/internal/config"
)

// Server: HTTP-сервер каталога пресетов.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// New создаёт HTTP-сервер с настроенными routes и middleware.
// middlewares применяются ко всем маршрутам в порядке переданного среза.
// Маршруты /api ограничены по времени cfg.RequestTimeout.
func New(cfg *config.Config, logger *slog.Logger, handler *handlers.APIHandler, middlewares ...func(http.Handler) http.Handler) *Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      NewRouter(cfg, handler, middlewares...),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}
}

// NewRouter собирает chi-маршрутизатор API.
func NewRouter(cfg *config.Config, h *handlers.APIHandler, middlewares ...func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	for _, mw := range middlewares {
		router.Use(mw)
	}
	router.NotFound(envelope.RouteNotFound)
	router.MethodNotAllowed(envelope.RouteNotFound)

	router.Get("/health/live", h.HealthLive)
	router.Get("/health/ready", h.HealthReady)
	router.Get("/metrics", h.GetMetrics)

	router.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(cfg.RequestTimeout))

		r.Route("/presets", func(r chi.Router) {
			r.Get("/", h.ListPresets)
			r.Post("/", h.CreatePreset)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPreset)
				r.Delete("/", h.DeletePreset)
				r.Get("/comments", h.ListComments)
				r.Post("/comments", h.SubmitComment)
				r.Post("/downloads", h.RecordDownload)
			})
		})

		r.Delete("/comments/{comment_id}", h.DeleteComment)
	})

	return router
}

// Run запускает сервер и ожидает сигнала завершения (SIGINT, SIGTERM).
// При получении сигнала выполняется graceful shutdown.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP-сервер запущен",
			slog.String("addr", s.httpServer.Addr),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		s.logger.Info("Получен сигнал завершения", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Выполняется graceful shutdown...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при graceful shutdown: %w", err)
	}

	s.logger.Info("HTTP-сервер остановлен")
	return nil
}
