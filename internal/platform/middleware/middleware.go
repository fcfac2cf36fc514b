// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

/*
Package middleware provides the cross-cutting HTTP chain wrapped around every
route the API serves.

Chain (outermost first):

  - RequestID: correlation ID per request (UUID v7).
  - StructuredLogger: per-request slog sub-logger plus a final access log line.
  - RateLimit: per-IP token bucket with idle-client eviction.
  - PanicRecovery: turns handler panics into logged 500 responses.
  - CORS: origin allow-listing driven by the runtime environment.
  - SessionGuard (guard.go): cookie-based session enforcement for
    non-public paths.

Fleet handlers below this chain read identity and the request logger from
context and never touch these concerns directly.
*/
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/quangphan/fleetra/internal/platform/constants"
	"github.com/quangphan/fleetra/internal/platform/ctxutil"
)

// # Request Tracing

// RequestID attaches a correlation ID to every request for log tracing.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// Reuse the caller's ID when present so traces span proxies.
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if requestID == "" {
				// UUID v7 keeps IDs time-sortable in log storage.
				if uuidV7, err := uuid.NewV7(); err == nil {
					requestID = uuidV7.String()
				} else {
					requestID = uuid.New().String()
				}
			}

			ctx := ctxutil.WithRequestID(request.Context(), requestID)
			writer.Header().Set(constants.HeaderXRequestID, requestID)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Activity Logging

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// StructuredLogger logs every request status and performance metrics.
// It also injects a request-specific logger into the context.
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			startTime := time.Now()

			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			// Downstream handlers pull this sub-logger from context.
			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrappedWriter, request.WithContext(ctx))

			logLevel := slog.LevelInfo
			switch {
			case wrappedWriter.status >= 500:
				logLevel = slog.LevelError
			case wrappedWriter.status >= 400:
				logLevel = slog.LevelWarn
			}

			logAttrs := []any{
				slog.Int("status", wrappedWriter.status),
				slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			}

			// The session guard writes the verified identity into the shared
			// header map, which is the only place it is visible upstream.
			if userID := request.Header.Get(constants.HeaderUserID); userID != "" {
				logAttrs = append(logAttrs, slog.String("user_id", userID))
			}

			requestLogger.Log(ctx, logLevel, "http_request_finished", logAttrs...)
		})
	}
}

// # Rate Limiting

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	mu      sync.Mutex
	clients = make(map[string]*rateLimitClient)
)

// RateLimit applies a token bucket per client IP. This is the coarse global
// brake; per-account login throttling lives in the auth service.
//
// The context stops the eviction goroutine on shutdown.
func RateLimit(context context.Context) func(http.Handler) http.Handler {

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Evict buckets for IPs that went quiet.
				mu.Lock()
				for ip, clientInfo := range clients {
					if time.Since(clientInfo.lastSeen) > constants.RateLimitClientTTL {
						delete(clients, ip)
					}
				}
				mu.Unlock()
			case <-context.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			clientIP := RealIP(request)

			mu.Lock()
			clientInfo, found := clients[clientIP]
			if !found {
				clientInfo = &rateLimitClient{
					limiter: rate.NewLimiter(
						rate.Limit(constants.DefaultRateLimitRPS),
						constants.DefaultRateLimitBurst,
					),
				}
				clients[clientIP] = clientInfo
			}
			clientInfo.lastSeen = time.Now()
			allowed := clientInfo.limiter.Allow()
			mu.Unlock()

			if !allowed {
				writeError(writer, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Rate limit exceeded")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Reliability & Safety

// PanicRecovery converts a handler panic into a logged 500 so one bad
// request cannot take the process down.
func PanicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			defer func() {
				if err := recover(); err != nil {
					stackTrace := make([]byte, 2048)
					length := runtime.Stack(stackTrace, false)

					// Prefer the per-request logger so the stack carries
					// the request ID; fall back to the app logger when the
					// panic happened before logging middleware ran.
					reqLogger := logger
					if ctxLogger := ctxutil.GetLogger(request.Context()); ctxLogger != slog.Default() {
						reqLogger = ctxLogger
					}
					reqLogger.ErrorContext(request.Context(), "panic_recovered",
						slog.Any("error", err),
						slog.String("stack", string(stackTrace[:length])),
					)

					writeError(writer, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred")
				}
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// # Cross-Origin Resource Sharing

// AppConfig defines the behavior needed by the CORS middleware.
type AppConfig interface {
	IsDevelopment() bool
	AllowedExtraOrigins() []string
}

// CORS allows any origin in development. In production it accepts first-party
// fleetra.app origins plus the exact origins listed in EXTRA_ORIGINS, since
// the dashboard cookie rides Allow-Credentials requests.
func CORS(cfg AppConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				// Same-origin or non-browser client.
				next.ServeHTTP(writer, request)
				return
			}

			if originAllowed(cfg, origin) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization, X-Request-ID")
				header.Set("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Set("Access-Control-Max-Age", "300")
			}

			// Preflight requests terminate here regardless of origin.
			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

func originAllowed(cfg AppConfig, origin string) bool {
	if cfg.IsDevelopment() {
		return true
	}
	if strings.HasSuffix(origin, "fleetra.app") {
		return true
	}
	for _, allowed := range cfg.AllowedExtraOrigins() {
		if origin == allowed {
			return true
		}
	}
	return false
}

// # Middleware Helpers

// RealIP resolves the client address, preferring proxy headers over the
// direct connection. The leftmost X-Forwarded-For entry is the origin client.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, _ := net.SplitHostPort(request.RemoteAddr)
	return host
}

// writeError emits the flat error envelope used by middleware responses,
// matching the shape respond.Error produces for handlers.
func writeError(writer http.ResponseWriter, status int, code, message string) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]string{
		constants.FieldCode:  code,
		constants.FieldError: message,
	})
}
