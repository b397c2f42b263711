// health.go: health endpoints каталога пресетов.
// /health/live: liveness probe (процесс жив)
// /health/ready: readiness probe (PostgreSQL доступен)
// /metrics: Prometheus метрики
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bigkaa/preset-catalog/internal/config"
)

// ServiceName: имя сервиса в health-ответах и метриках зависимостей.
const ServiceName = "preset-catalog"

// Статусы health check.
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusFail     = "fail"
)

// ReadinessChecker: интерфейс проверки готовности зависимости.
type ReadinessChecker interface {
	// CheckReady возвращает статус ("ok", "degraded", "fail") и сообщение.
	CheckReady() (status, message string)
}

// DependencyReporter: текущее состояние фоновых проверок зависимостей.
// Ключ: имя зависимости, значение: true если ok.
type DependencyReporter interface {
	Health() map[string]bool
}

// HealthHandler: обработчик health endpoints.
type HealthHandler struct {
	pgChecker   ReadinessChecker
	deps        DependencyReporter
	promHandler http.Handler
	now         func() time.Time
}

// NewHealthHandler создаёт обработчик health endpoints.
// pgChecker может быть nil, тогда readiness вернёт "fail".
// deps может быть nil, тогда раздел dependencies не выводится.
func NewHealthHandler(pgChecker ReadinessChecker, deps DependencyReporter) *HealthHandler {
	return &HealthHandler{
		pgChecker:   pgChecker,
		deps:        deps,
		promHandler: promhttp.Handler(),
		now:         time.Now,
	}
}

type healthCheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type healthResponse struct {
	Status       string                       `json:"status"`
	Timestamp    string                       `json:"timestamp"`
	Version      string                       `json:"version"`
	Service      string                       `json:"service"`
	Checks       map[string]healthCheckResult `json:"checks,omitempty"`
	Dependencies map[string]bool              `json:"dependencies,omitempty"`
}

func (h *HealthHandler) baseResponse() healthResponse {
	return healthResponse{
		Status:    statusOK,
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Version:   config.Version,
		Service:   ServiceName,
	}
}

// HealthLive: liveness probe. Возвращает 200 если процесс жив.
func (h *HealthHandler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	writeHealth(w, http.StatusOK, h.baseResponse())
}

// HealthReady: readiness probe. Проверяет PostgreSQL.
// Возвращает 200 (ok/degraded) или 503 (fail).
func (h *HealthHandler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	resp := h.baseResponse()

	pg := healthCheckResult{Status: statusFail, Message: "не инициализирован"}
	if h.pgChecker != nil {
		pg.Status, pg.Message = h.pgChecker.CheckReady()
	}
	resp.Checks = map[string]healthCheckResult{"postgresql": pg}
	resp.Status = overallStatus(pg.Status)

	if h.deps != nil {
		resp.Dependencies = h.deps.Health()
	}

	status := http.StatusOK
	if resp.Status == statusFail {
		status = http.StatusServiceUnavailable
	}
	writeHealth(w, status, resp)
}

// GetMetrics: Prometheus метрики.
func (h *HealthHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.promHandler.ServeHTTP(w, r)
}

func writeHealth(w http.ResponseWriter, status int, resp healthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// overallStatus определяет итоговый статус из статусов зависимостей.
// fail доминирует над degraded, degraded над ok.
func overallStatus(statuses ...string) string {
	result := statusOK
	for _, s := range statuses {
		switch s {
		case statusFail:
			return statusFail
		case statusDegraded:
			result = statusDegraded
		}
	}
	return result
}
