package server

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/StormSheet_Go/internal/character"
	"github.com/osse101/StormSheet_Go/internal/combat"
	"github.com/osse101/StormSheet_Go/internal/database"
	"github.com/osse101/StormSheet_Go/internal/grant"
	"github.com/osse101/StormSheet_Go/internal/handler"
	"github.com/osse101/StormSheet_Go/internal/logger"
	"github.com/osse101/StormSheet_Go/internal/metrics"
	"github.com/osse101/StormSheet_Go/internal/sse"
	"github.com/osse101/StormSheet_Go/internal/ws"
)

// Dependencies groups everything the router needs.
type Dependencies struct {
	// DBPool is nil when running on in-memory storage.
	DBPool         database.Pool
	Combat         combat.Service
	Characters     character.Service
	Grants         grant.Service
	SSEHub         *sse.Hub
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
	deps       Dependencies
}

// NewServer creates a new Server instance
func NewServer(port int, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		deps: deps,
	}
}

// NewRouter builds the chi router with the full middleware stack and all routes.
func NewRouter(deps Dependencies) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(deps.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	wsHandler := ws.NewHandler(deps.Grants)
	r.Get("/ws", wsHandler.Handle)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attack", func(r chi.Router) {
			r.Post("/execute", handler.HandleExecuteAttack(deps.Combat))
			r.Post("/combination", handler.HandleAttackCombination(deps.Combat))
			r.Post("/validate", handler.HandleValidateAttack(deps.Combat))
		})

		r.Get("/events", sse.Handler(deps.SSEHub))

		r.Route("/characters/{id}", func(r chi.Router) {
			r.Get("/", handler.HandleGetCharacter(deps.Characters))
			r.Put("/", handler.HandleUpsertCharacter(deps.Characters))
			r.Post("/attack", handler.HandleCharacterAttack(deps.Combat))
			r.Get("/events", sse.CharacterHandler(deps.SSEHub, deps.Grants))

			r.Route("/grants", func(r chi.Router) {
				// Registered before /{kind} so "confirmed" is never parsed as a kind.
				r.Get("/confirmed", handler.HandleListConfirmedGrants(deps.Grants))
				r.Get("/{kind}", handler.HandleListPendingGrants(deps.Grants))
				r.Post("/{kind}", handler.HandleIssueGrant(deps.Grants))
				r.Post("/{kind}/ack", handler.HandleAcknowledgeGrant(deps.Grants))
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

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	return h.Hijack()
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if slices.ContainsFunc(QuietPaths, func(p string) bool { return strings.HasPrefix(r.URL.Path, p) }) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
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
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
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
