// catalog.go: получение, список, создание и удаление пресетов.
// Координирует repository, LRU-кэш, валидацию и Prometheus-метрики.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/preset-catalog/internal/domain/model"
	"github.com/bigkaa/preset-catalog/internal/repository"
)

// Prometheus-метрики каталога.
var (
	catalogOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pc_catalog_operations_total",
		Help: "Общее количество операций каталога по типу и результату.",
	}, []string{"operation", "result"})
	catalogOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pc_catalog_operation_duration_seconds",
		Help:    "Длительность операций каталога.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// CreatePresetInput: запрос на создание пресета.
type CreatePresetInput struct {
	Name         string  `json:"preset_name" validate:"required,notblank,max=100"`
	DownloadURL  string  `json:"download_url" validate:"required,url,max=2048"`
	Description  string  `json:"description" validate:"required,notblank,max=5000"`
	HardwareType string  `json:"hardware_type" validate:"required,hardware"`
	PhotoURL     *string `json:"photo_url" validate:"omitempty,url,max=2048"`
	YoutubeURL   *string `json:"youtube_url" validate:"omitempty,url,max=2048"`
	Game         *string `json:"game" validate:"omitempty,notblank,max=100"`
}

// ListQuery: сырые параметры списка пресетов из запроса.
// Пустая строка означает, что параметр не передан.
type ListQuery struct {
	Hardware string
	Game     string
	Sort     string
}

// CatalogService: сервис каталога пресетов.
type CatalogService struct {
	presets   repository.PresetRepository
	cache     *CacheService
	validator *Validator
	logger    *slog.Logger
}

// NewCatalogService создаёт сервис каталога.
func NewCatalogService(
	presets repository.PresetRepository,
	cache *CacheService,
	validator *Validator,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		presets:   presets,
		cache:     cache,
		validator: validator,
		logger:    logger.With(slog.String("component", "catalog_service")),
	}
}

// Get возвращает пресет по ID.
// Некорректный ID отклоняется без обращения к хранилищу.
// Сначала проверяется кэш, при промахе запрос идёт в PostgreSQL.
func (s *CatalogService) Get(ctx context.Context, rawID string) (preset *model.Preset, err error) {
	defer observe("get", time.Now(), &err)

	id, err := model.ParseID(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if p, ok := s.cache.Get(id); ok {
		s.logger.Debug("Кэш hit для пресета", slog.String("preset_id", id))
		return p, nil
	}

	gen := s.cache.Generation()
	p, err := s.presets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("получение пресета: %w", err)
	}

	if !s.cache.SetIfFresh(p, gen) {
		s.logger.Debug("Пресет изменён во время чтения, кэш не обновлён", slog.String("preset_id", id))
	}
	return p, nil
}

// List возвращает отфильтрованный и упорядоченный список пресетов.
// Отсутствие sort даёт ErrSortRequired, неизвестные значения hardware
// и sort дают ErrValidation. В этих случаях хранилище не вызывается.
func (s *CatalogService) List(ctx context.Context, q ListQuery) (presets []*model.Preset, err error) {
	defer observe("list", time.Now(), &err)

	if q.Sort == "" {
		return nil, ErrSortRequired
	}

	hw, err := model.ParseHardwareFilter(q.Hardware)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	sort, err := model.ParseSortOrder(q.Sort)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	filter := repository.PresetFilter{Hardware: hw, Sort: sort}
	if game := strings.TrimSpace(q.Game); game != "" {
		filter.Game = &game
	}

	items, err := s.presets.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("список пресетов: %w", err)
	}

	s.logger.Debug("Список пресетов получен",
		slog.String("sort", string(sort)),
		slog.Int("count", len(items)),
	)
	return items, nil
}

// Create валидирует запрос и сохраняет новый пресет.
// ID, время создания и нулевые счётчики назначает хранилище.
func (s *CatalogService) Create(ctx context.Context, in CreatePresetInput) (preset *model.Preset, err error) {
	defer observe("create", time.Now(), &err)

	in.PhotoURL = nilIfBlank(in.PhotoURL)
	in.YoutubeURL = nilIfBlank(in.YoutubeURL)
	in.Game = nilIfBlank(in.Game)

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	hw, err := model.ParseHardware(in.HardwareType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	p := &model.Preset{
		Name:        strings.TrimSpace(in.Name),
		DownloadURL: in.DownloadURL,
		Description: in.Description,
		YoutubeURL:  in.YoutubeURL,
		PhotoURL:    in.PhotoURL,
		Game:        in.Game,
		Hardware:    hw,
	}
	if err := s.presets.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("создание пресета: %w", err)
	}

	s.logger.Info("Пресет создан",
		slog.String("preset_id", p.ID),
		slog.String("hardware", string(p.Hardware)),
	)
	return p, nil
}

// Delete удаляет пресет по ID. Удаление идемпотентно: отсутствие
// записи не считается ошибкой.
func (s *CatalogService) Delete(ctx context.Context, rawID string) (err error) {
	defer observe("delete", time.Now(), &err)

	id, err := model.ParseID(rawID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	// Инвалидация после удаления из БД: чтение, начатое до удаления,
	// не сможет вернуть строку в кэш.
	err = s.presets.Delete(ctx, id)
	s.cache.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("Пресет для удаления не найден", slog.String("preset_id", id))
			return nil
		}
		return fmt.Errorf("удаление пресета: %w", err)
	}

	s.logger.Info("Пресет удалён", slog.String("preset_id", id))
	return nil
}

// observe записывает метрики операции каталога.
func observe(operation string, start time.Time, errp *error) {
	catalogOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	catalogOperationsTotal.WithLabelValues(operation, operationResult(*errp)).Inc()
}

// operationResult классифицирует ошибку для метки result.
func operationResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrValidation), errors.Is(err, ErrSortRequired):
		return "invalid"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func nilIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
