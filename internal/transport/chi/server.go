package chi

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/metrics"
	cataloguc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/catalog"
	chatuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/chat"
	healthuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/health"
	usageuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/usage"
)

// Server exposes the chat, catalog and operational endpoints over chi.
type Server struct {
	chat          *chatuc.Service
	catalog       *cataloguc.Service
	health        *healthuc.Service
	usage         *usageuc.Service
	logger        *zap.Logger
	staticDir     string
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	chat *chatuc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		chat:    chat,
		catalog: catalog,
		health:  health,
		usage:   usageuc.New(nil),
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, msgInvalidRequest),
		sentinelHandler(domain.ErrInvalidProduct, http.StatusBadRequest, msgInvalidProduct),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, msgNotFound),
	}
	return s
}

// WithUsage sets the token usage reporter. Without it usage reports are empty.
func (s *Server) WithUsage(usage *usageuc.Service) *Server {
	s.usage = usage
	return s
}

// WithStaticDir serves files from dir at the root path when the directory exists.
func (s *Server) WithStaticDir(dir string) *Server {
	s.staticDir = dir
	return s
}

// Handler builds the router with the full middleware chain.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(corsMiddleware())
	r.Use(metrics.Middleware())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.Chat)
		r.Post("/chat/context", s.ChatContext)
		r.Get("/chat/history", s.ChatHistory)

		r.Get("/products", s.ListProducts)
		r.Post("/products", s.CreateProduct)
		r.Delete("/products/{id}", s.DeleteProduct)

		r.Get("/usage", s.Usage)
	})

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	if s.staticDir != "" {
		if fi, err := os.Stat(s.staticDir); err == nil && fi.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(s.staticDir)))
		} else {
			s.logger.Warn("static directory not found, skipping", zap.String("dir", s.staticDir))
		}
	}

	return r
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	status := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
