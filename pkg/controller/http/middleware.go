package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ekshello/pkg/domain/model"
)

// LoggingMiddleware returns a middleware that logs HTTP requests. The
// request scoped logger is stored in the request context.
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := ctxlog.From(ctx).With("request_id", middleware.GetReqID(r.Context()))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("HTTP request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"remote_addr", r.RemoteAddr,
					"duration_ms", time.Since(start).Milliseconds(),
				)
			}()

			next.ServeHTTP(ww, r.WithContext(ctxlog.With(r.Context(), logger)))
		})
	}
}

// writeJSON writes v as a compact JSON body with no trailing newline
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		ctxlog.From(r.Context()).Warn("Failed to write response", "error", err)
	}
}

// writeError writes an error response and reports server errors to Sentry
// when it is enabled for the request
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	if status >= http.StatusInternalServerError {
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}
	}

	writeJSON(w, r, status, &model.ErrorResponse{Error: err.Error()})
}

// handleNotFound answers 404, except when toggling the trailing slash of
// the path reaches a route: then the client gets a 307 to that path.
func handleNotFound(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if target, ok := slashRedirectTarget(routes, r); ok {
			w.Header().Set("Location", target)
			w.WriteHeader(http.StatusTemporaryRedirect)
			return
		}

		writeJSON(w, r, http.StatusNotFound, &model.ErrorDetail{Detail: "Not Found"})
	}
}

func slashRedirectTarget(routes chi.Routes, r *http.Request) (string, bool) {
	path := r.URL.Path
	if path == "/" || path == "" {
		return "", false
	}

	if strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	} else {
		path += "/"
	}

	for _, method := range allowCandidates {
		if routes.Match(chi.NewRouteContext(), method, path) {
			if r.URL.RawQuery != "" {
				path += "?" + r.URL.RawQuery
			}
			return path, true
		}
	}
	return "", false
}

// PanicResponse writes a plain text 500 for a panicking handler and passes
// the panic on to the outer recoverer, which logs the stack
func PanicResponse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr != http.ErrAbortHandler {
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				if _, err := w.Write([]byte(http.StatusText(http.StatusInternalServerError))); err != nil {
					ctxlog.From(r.Context()).Warn("Failed to write panic response", "error", err)
				}
			}
			panic(rvr)
		}()

		next.ServeHTTP(w, r)
	})
}

var allowCandidates = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// handleMethodNotAllowed answers 405 with an Allow header built from the
// methods routes registers for the requested path
func handleMethodNotAllowed(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range allowCandidates {
			if routes.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		writeJSON(w, r, http.StatusMethodNotAllowed, &model.ErrorDetail{Detail: "Method Not Allowed"})
	}
}
