package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/KirkDiggler/robuxroyale/internal/metrics"
)

// requestLogger logs every request and counts it by route pattern
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	log := h.log.With(zap.String("component", "middleware/logger"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			metrics.HTTPRequest(r.Method, route, strconv.Itoa(status))

			log.Debug("request completed",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)))
		}()

		next.ServeHTTP(ww, r)
	})
}
