package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server представляет HTTP-сервер.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
}

// NewServer создает и настраивает новый экземпляр сервера.
func NewServer(port string, h *Handlers) *Server {
	handler := otelhttp.NewHandler(setupRouter(h), "japantune")
	return &Server{
		handler: handler,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler возвращает корневой обработчик со всеми middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run запускает HTTP-сервер и блокируется до его остановки.
func (s *Server) Run() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("HTTP-сервер запущен")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown дожидается завершения текущих запросов.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// setupRouter настраивает маршрутизацию.
func setupRouter(h *Handlers) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(RequestLogger)
	router.Use(middleware.Recoverer)
	router.Use(Metrics)
	router.Use(h.identify)

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/static/*", http.FileServer(http.FS(assets)))

	router.Get("/", h.Home)
	router.Get("/login", h.LoginPage)
	router.Post("/login", h.Login)
	router.Get("/register", h.RegisterPage)
	router.Post("/register", h.Register)
	router.Post("/logout", h.Logout)

	// Разделы сущностей
	router.Group(func(r chi.Router) {
		if h.authRequired {
			r.Use(h.RequireAuth)
		}
		for _, res := range h.resources {
			res.Mount(r, h)
		}
	})

	router.NotFound(h.notFound)
	return router
}
