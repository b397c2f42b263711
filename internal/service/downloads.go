// downloads.go: фиксация скачиваний пресетов.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"github.com/bigkaa/preset-catalog/internal/domain/model"
	"github.com/bigkaa/preset-catalog/internal/repository"
)

// DownloadService: сервис журнала скачиваний.
type DownloadService struct {
	downloads repository.DownloadRepository
	cache     *CacheService
	logger    *slog.Logger
}

// NewDownloadService создаёт сервис скачиваний.
func NewDownloadService(
	downloads repository.DownloadRepository,
	cache *CacheService,
	logger *slog.Logger,
) *DownloadService {
	return &DownloadService{
		downloads: downloads,
		cache:     cache,
		logger:    logger.With(slog.String("component", "download_service")),
	}
}

// Record фиксирует скачивание пресета клиентом с адресом ip.
// Счётчик downloads пресета увеличивается, запись в кэше инвалидируется.
func (s *DownloadService) Record(ctx context.Context, rawPresetID string, ip netip.Addr) (download *model.Download, err error) {
	defer observe("download_record", time.Now(), &err)

	presetID, err := model.ParseID(rawPresetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	d := &model.Download{PresetID: presetID, IPAddr: ip.Unmap().String()}
	if err := s.downloads.Record(ctx, d); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("фиксация скачивания: %w", err)
	}
	s.cache.Delete(presetID)

	s.logger.Debug("Скачивание зафиксировано",
		slog.String("preset_id", presetID),
		slog.Int64("download_id", d.ID),
	)
	return d, nil
}
