package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// Wrap applies the middleware stack to an http.Handler: request ID
// assignment, access logging, and panic recovery.
func Wrap(next http.Handler) http.Handler {
	return requestIDMiddleware(accessLogMiddleware(recoverMiddleware(next)))
}

// requestIDMiddleware tags every request with an ID, honoring one supplied
// by an upstream proxy.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the response status code for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.WithFields(log.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   time.Since(start).String(),
			"request_id": requestIDFrom(r.Context()),
		}).Info("request completed")
	})
}

// recoverMiddleware converts a handler panic into the 500 JSON envelope.
// The process never dies from a request-handling fault.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithFields(log.Fields{
					"panic":      rec,
					"path":       r.URL.Path,
					"request_id": requestIDFrom(r.Context()),
				}).Error("recovered from panic in handler")
				writeErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
