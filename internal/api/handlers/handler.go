// handler.go: основной обработчик API каталога пресетов.
// Объединяет health и бизнес-обработчики, маппит ошибки сервисов в конверт ответа.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/netip"

	"github.com/bigkaa/preset-catalog/internal/api/envelope"
	"github.com/bigkaa/preset-catalog/internal/domain/model"
	"github.com/bigkaa/preset-catalog/internal/service"
)

// maxBodyBytes: ограничение размера тела запроса.
const maxBodyBytes = 1 << 20

// CatalogService: операции каталога, используемые обработчиками.
type CatalogService interface {
	Get(ctx context.Context, rawID string) (*model.Preset, error)
	List(ctx context.Context, q service.ListQuery) ([]*model.Preset, error)
	Create(ctx context.Context, in service.CreatePresetInput) (*model.Preset, error)
	Delete(ctx context.Context, rawID string) error
}

// CommentService: операции с комментариями.
type CommentService interface {
	Submit(ctx context.Context, rawPresetID string, ip netip.Addr, in service.SubmitCommentInput) (*model.Comment, error)
	List(ctx context.Context, rawPresetID string) ([]*model.Comment, error)
	Delete(ctx context.Context, rawCommentID string) error
}

// DownloadService: фиксация скачиваний.
type DownloadService interface {
	Record(ctx context.Context, rawPresetID string, ip netip.Addr) (*model.Download, error)
}

// APIHandler: основной обработчик API каталога.
type APIHandler struct {
	health    *HealthHandler
	catalog   CatalogService
	comments  CommentService
	downloads DownloadService
	logger    *slog.Logger
}

// NewAPIHandler создаёт основной обработчик API.
func NewAPIHandler(
	health *HealthHandler,
	catalog CatalogService,
	comments CommentService,
	downloads DownloadService,
	logger *slog.Logger,
) *APIHandler {
	return &APIHandler{
		health:    health,
		catalog:   catalog,
		comments:  comments,
		downloads: downloads,
		logger:    logger.With(slog.String("component", "api_handler")),
	}
}

// --- Health endpoints (делегируются в HealthHandler) ---

// HealthLive: liveness probe.
func (h *APIHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	h.health.HealthLive(w, r)
}

// HealthReady: readiness probe.
func (h *APIHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	h.health.HealthReady(w, r)
}

// GetMetrics: Prometheus метрики.
func (h *APIHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.health.GetMetrics(w, r)
}

// --- Вспомогательные функции ---

// errorMessages: сообщения для ошибок конкретного ресурса.
type errorMessages struct {
	key       string
	invalidID string
	notFound  string
}

var (
	presetMessages = errorMessages{
		key:       envelope.KeyPresets,
		invalidID: envelope.MsgInvalidPresetID,
		notFound:  envelope.MsgPresetNotFound,
	}
	commentMessages = errorMessages{
		key:       envelope.KeyComments,
		invalidID: envelope.MsgInvalidCommentID,
		notFound:  envelope.MsgCommentNotFound,
	}
)

// writeServiceError маппит ошибку сервисного слоя в конверт ответа.
// Ошибки хранилища логируются с причиной, клиент получает общее сообщение.
func (h *APIHandler) writeServiceError(w http.ResponseWriter, r *http.Request, msgs errorMessages, op string, err error) {
	var verr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrSortRequired):
		envelope.SortRequired(w)
	case errors.Is(err, model.ErrInvalidID):
		envelope.ValidationError(w, msgs.key, msgs.invalidID)
	case errors.Is(err, model.ErrUnknownSortOrder):
		envelope.ValidationError(w, msgs.key, envelope.MsgInvalidSort)
	case errors.Is(err, model.ErrUnknownHardware):
		envelope.ValidationError(w, msgs.key, envelope.MsgUnknownHardware)
	case errors.As(err, &verr):
		envelope.ValidationError(w, msgs.key, verr.Message)
	case errors.Is(err, service.ErrValidation):
		envelope.ValidationError(w, msgs.key, envelope.MsgInvalidBody)
	case errors.Is(err, service.ErrNotFound):
		envelope.NotFound(w, msgs.key, msgs.notFound)
	default:
		h.logger.Error("Ошибка выполнения операции",
			slog.String("operation", op),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		envelope.InternalError(w, msgs.key)
	}
}

// decodeJSON читает JSON-тело запроса с ограничением размера.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// clientIP возвращает адрес клиента из RemoteAddr.
// После middleware.RealIP RemoteAddr может содержать адрес без порта.
func clientIP(r *http.Request) netip.Addr {
	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		return ap.Addr()
	}
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		host = h
	}
	if addr, err := netip.ParseAddr(host); err == nil {
		return addr
	}
	return netip.IPv4Unspecified()
}
