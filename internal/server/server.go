package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/handler"
	"github.com/osse101/CaseForge_Go/internal/ledger"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/metrics"
	"github.com/osse101/CaseForge_Go/internal/sse"
)

// Options wires the server to its services
type Options struct {
	Port           int
	AdminAPIKey    string
	TrustedProxies []string

	Ledger   ledger.Service
	Catalog  *catalog.Catalog
	Store    handler.Pinger
	Hub      *sse.Hub
	RNGMode  string
	Fairness handler.FairnessInfo // nil unless draws are provably fair
	Rotator  handler.SeedRotator  // nil unless draws are provably fair
	Now      func() time.Time
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the HTTP routes
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	adminOnly := AuthMiddleware(opts.AdminAPIKey, opts.TrustedProxies, detector)
	sessions := handler.NewSessionHandler(opts.Ledger, opts.Now)
	catalogHandler := handler.NewCatalogHandler(opts.Catalog)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/cases", catalogHandler.HandleListCases)
			r.Get("/rarities", catalogHandler.HandleListRarities)
			r.Get("/promocodes", catalogHandler.HandleListPromos)
			r.Get("/market", catalogHandler.HandleListMarket)
		})

		r.Get("/fairness", handler.HandleFairness(opts.RNGMode, opts.Fairness))
		r.Post("/fairness/verify", handler.HandleVerifyDraw())
		if opts.Rotator != nil {
			r.With(adminOnly).Post("/fairness/rotate", handler.HandleRotateSeed(opts.Rotator))
		}

		if opts.Hub != nil {
			r.Get("/live", sse.Handler(opts.Hub))
		}

		r.With(adminOnly).Delete("/admin/sessions/{sessionID}", sessions.HandleDeleteSession)

		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", sessions.HandleGetState)
			r.Delete("/", sessions.HandleReset)

			r.Post("/cases/{caseID}/open", sessions.HandleOpenCase)

			r.Route("/inventory", func(r chi.Router) {
				r.Delete("/", sessions.HandleClearInventory)
				r.Post("/{entryID}/sell", sessions.HandleSellItem)
				r.Delete("/{entryID}", sessions.HandleRemoveItem)
			})

			r.Route("/upgrade", func(r chi.Router) {
				r.Post("/", sessions.HandleUpgrade)
				r.Post("/quote", sessions.HandleQuoteUpgrade)
				r.Get("/history", sessions.HandleUpgradeHistory)
				r.Delete("/history", sessions.HandleClearUpgradeHistory)
				r.Get("/targets", sessions.HandleUpgradeTargets)

				// Custom targets are curated by admins
				r.With(adminOnly).Post("/targets", sessions.HandleAddCustomTarget)
				r.With(adminOnly).Delete("/targets/{targetID}", sessions.HandleRemoveCustomTarget)
			})

			r.Post("/contracts", sessions.HandleExecuteContract)
			r.Post("/promocodes/redeem", sessions.HandleRedeemPromo)

			r.Route("/bonus/daily", func(r chi.Router) {
				r.Get("/", sessions.HandleDailyBonusStatus)
				r.Post("/claim", sessions.HandleClaimDailyBonus)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

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
		statusCode:     http.StatusOK, // default status
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

// Flush keeps the live feed streaming through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
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
