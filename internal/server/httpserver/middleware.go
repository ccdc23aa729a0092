package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/avasquez/taskkeeper/internal/common"
	"github.com/avasquez/taskkeeper/internal/logging"
	"github.com/avasquez/taskkeeper/internal/server/auth"
)

// Context keys for request-scoped values.
type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the authenticated user id attached by the Auth
// middleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// Middleware wraps an http.Handler with additional functionality.
type Middleware func(http.Handler) http.Handler

// Chain chains multiple middlewares together. The first middleware in the
// list becomes the outermost wrapper.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Auth is the gate in front of protected routes. A missing Authorization
// header is rejected with 403; anything present is split on whitespace and
// the second segment is verified as a token. A malformed header (no space,
// or scheme text where the token should be) is indistinguishable from a bad
// token and gets the same 401.
func Auth(secret []byte, logger logging.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AuthorizationHeaderName)
			if header == "" {
				writeMessage(w, http.StatusForbidden, msgTokenRequired)
				return
			}

			fields := strings.Fields(header)
			if len(fields) < 2 {
				writeMessage(w, http.StatusUnauthorized, msgTokenInvalid)
				return
			}

			userID, err := auth.GetUserIDFromToken(fields[1], secret)
			if err != nil {
				// expired vs forged matters only in the log; the wire
				// response is the same either way
				logger.Warn(r.Context(), "token rejected", "reason", err.Error())
				writeMessage(w, http.StatusUnauthorized, msgTokenInvalid)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestID tags each request and its response with a unique id.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
				r.Header.Set("X-Request-ID", requestID)
			}
			w.Header().Set("X-Request-ID", requestID)
			next.ServeHTTP(w, r)
		})
	}
}

// Recover converts handler panics into a generic 500 response.
func Recover(logger logging.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error(r.Context(), "panic in handler", "panic", rec, "path", r.URL.Path)
					writeMessage(w, http.StatusInternalServerError, msgInternalError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// CORS allows cross-origin requests from any origin and answers preflight
// requests directly.
func CORS() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
