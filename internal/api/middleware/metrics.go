// metrics.go: Prometheus HTTP метрики каталога пресетов.
// Регистрирует метрики: pc_http_requests_total, pc_http_request_duration_seconds.
// В лейбл path попадает шаблон маршрута chi, а не фактический путь.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute: значение лейбла path для запросов без маршрута.
const unmatchedRoute = "unmatched"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pc_http_requests_total",
			Help: "Общее количество HTTP-запросов к каталогу пресетов",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pc_http_request_duration_seconds",
			Help:    "Длительность HTTP-запросов к каталогу пресетов в секундах",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware возвращает HTTP middleware для сбора Prometheus метрик.
// Должен подключаться к chi.Router: шаблон маршрута читается из chi.RouteContext
// после обработки запроса.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			path := routePattern(r)

			httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

// routePattern возвращает шаблон маршрута (/api/presets/{id}) для лейбла метрик.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}
