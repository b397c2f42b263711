package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/preset-catalog/internal/domain/model"
)

// DownloadRepository описывает журнал скачиваний.
type DownloadRepository interface {
	// Record фиксирует скачивание и увеличивает счётчик downloads пресета
	// одним запросом. ErrNotFound, если пресета нет.
	Record(ctx context.Context, d *model.Download) error
}

type downloadRepo struct {
	db DBTX
}

// NewDownloadRepository создаёт репозиторий скачиваний.
func NewDownloadRepository(db DBTX) DownloadRepository {
	return &downloadRepo{db: db}
}

func (r *downloadRepo) Record(ctx context.Context, d *model.Download) error {
	// UPDATE и INSERT в одном выражении: событие не появится без инкремента счётчика.
	query := `
		WITH bumped AS (
			UPDATE presets
			SET downloads = downloads + 1, last_updated_on = now()
			WHERE preset_id = $1
			RETURNING preset_id
		)
		INSERT INTO downloads (preset_id, ip_addr)
		SELECT preset_id, $2::inet FROM bumped
		RETURNING download_id, preset_id, host(ip_addr), created_at`

	err := r.db.QueryRow(ctx, query, d.PresetID, d.IPAddr).Scan(
		&d.ID, &d.PresetID, &d.IPAddr, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка записи скачивания: %w", err)
	}
	return nil
}
