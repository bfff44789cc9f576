// internal/server/server.go
package server

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"interview-backend/internal/catalog"
	"interview-backend/internal/common/config"
	"interview-backend/internal/common/logger"
	"interview-backend/internal/common/metrics"
	"interview-backend/internal/evaluation"
	"interview-backend/internal/salary"
)

// Server owns the HTTP surface. All domain objects are injected; the server
// itself holds no mutable state beyond the router.
type Server struct {
	config     *config.Config
	logger     logger.Logger
	evaluator  *evaluation.Evaluator
	calculator *salary.Calculator
	catalog    *catalog.Store
	router     *chi.Mux
	httpServer *http.Server
}

func NewServer(
	cfg *config.Config,
	log logger.Logger,
	evaluator *evaluation.Evaluator,
	calculator *salary.Calculator,
	store *catalog.Store,
) *Server {
	s := &Server{
		config:     cfg,
		logger:     log.WithFields(map[string]interface{}{"component": "http-server"}),
		evaluator:  evaluator,
		calculator: calculator,
		catalog:    store,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(config.GetDuration(s.config.Server.RequestTimeout)))
	r.Use(corsMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/evaluate", s.handleEvaluate)
		r.Post("/salary/calculate", s.handleSalaryCalculate)
		r.Post("/real_time_feedback", s.handleRealTimeFeedback)
		r.Post("/analysis/progress", s.handleAnalysisProgress)
		r.Post("/chat", s.handleChat)
		r.Post("/users/{username}/insights/hexagon", s.handleHexagonInsights)
	})

	r.Post("/start_interview", s.handleStartInterview)
	r.Post("/submit_answer", s.handleSubmitAnswer)

	// Static mounts. The frontend handler is registered last so API routes
	// always win.
	if dir := s.config.Server.DataDir; dirExists(dir) {
		r.Handle("/data/*", http.StripPrefix("/data/", http.FileServer(http.Dir(dir))))
	}
	if dir := s.config.Server.StaticDir; dirExists(dir) {
		r.Handle("/*", http.FileServer(http.Dir(dir)))
	}

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start runs the server until ctx is cancelled, then drains connections.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.config.Server.Addr(),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", map[string]interface{}{
			"addr": s.config.Server.Addr(),
		})
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down http server", nil)
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
	})
}

func dirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
