// middleware.go contains middleware for request ID, proxy headers, logging, recovery for all routes.
package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey ctxKey = "request_id"

// GetRequestID safely extracts the request ID from context.
// Returns empty string if missing (shouldn't happen once middleware is wired).
func GetRequestID(ctx context.Context) string {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDKey, rid)
		r = r.WithContext(ctx)

		w.Header().Set("X-Request-ID", rid)

		next.ServeHTTP(w, r)
	})
}

// lastHop returns the value appended by the nearest proxy
func lastHop(v string) string {
	if i := strings.LastIndex(v, ","); i >= 0 {
		v = v[i+1:]
	}
	return strings.TrimSpace(v)
}

// proxyHeadersMiddleware trusts one proxy hop for X-Forwarded-Proto and
// X-Forwarded-Host.
func proxyHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if proto := lastHop(r.Header.Get("X-Forwarded-Proto")); proto != "" {
			r.URL.Scheme = proto
		}
		if host := lastHop(r.Header.Get("X-Forwarded-Host")); host != "" {
			r.Host = host
		}
		next.ServeHTTP(w, r)
	})
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs the request and response.
func loggingMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sr := &statusRecorder{
			ResponseWriter: w,
			status:         http.StatusOK, // default if handler never calls WriteHeader
		}

		next.ServeHTTP(sr, r)

		log.Info("request",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sr.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// recoverMiddleware recovers from panics and answers with a JSON 500.
func recoverMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)

				// If headers/body already started, we can't reliably send a new response.
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal server error"}` + "\n"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
