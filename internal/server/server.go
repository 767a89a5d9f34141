package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/handler"
	"github.com/osse101/ArcPlanner_Go/internal/loadout"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
	"github.com/osse101/ArcPlanner_Go/internal/metrics"
)

// CatalogStore is the catalog surface the HTTP layer needs
type CatalogStore interface {
	crafting.Catalog
	handler.HealthChecker
	handler.CatalogRefresher
}

// Options configures the HTTP layer
type Options struct {
	Port           int
	AdminAPIKey    string
	TrustedProxies []string
	ServiceName    string
	Version        string
	MaxBodyBytes   int64
}

// Services are the domain services exposed over HTTP
type Services struct {
	Catalog  CatalogStore
	Planner  crafting.Service
	Loadouts loadout.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack and every route
func NewRouter(opts Options, svc Services) http.Handler {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewClientGuard()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, guard))
	r.Use(RequestSizeLimitMiddleware(maxBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Catalog))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	items := handler.NewItemHandler(svc.Catalog)
	craft := handler.NewCraftingHandler(svc.Planner)
	loadouts := handler.NewLoadoutHandler(svc.Loadouts)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", items.HandleCategories)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", items.HandleList)
			r.Get("/{id}", items.HandleGet)
			r.Get("/{id}/tree", craft.HandleTree)
			r.Get("/{id}/predecessor", craft.HandlePredecessor)
		})

		r.Post("/plan", craft.HandlePlan)

		r.Route("/loadouts", func(r chi.Router) {
			r.Post("/", loadouts.HandleCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", loadouts.HandleGet)
				r.Delete("/", loadouts.HandleDelete)
				r.Put("/slots/{slot}", loadouts.HandleEquip)
				r.Delete("/slots/{slot}/{instanceID}", loadouts.HandleUnequip)
				r.Put("/mods/{weapon}/{index}", loadouts.HandleEquipMod)
				r.Delete("/mods/{weapon}/{index}", loadouts.HandleUnequipMod)
				r.Post("/quantity", loadouts.HandleAdjustQuantity)
				r.Get("/plan", loadouts.HandlePlan)
			})
		})

		if opts.AdminAPIKey == "" {
			slog.Default().Warn(LogMsgAdminDisabled)
		}
		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(opts.AdminAPIKey, opts.TrustedProxies, guard))
			r.Post("/catalog/refresh", handler.HandleRefreshCatalog(svc.Catalog, svc.Catalog))
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		// Reuse a caller-supplied request id when present
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
