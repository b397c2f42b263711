package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/preset-catalog/internal/domain/model"
)

// presetColumns используется во всех SELECT и RETURNING по таблице presets.
// hardware приводится к text, чтобы не регистрировать enum-тип в pgx.
const presetColumns = `preset_id, preset_name, created_on, last_updated_on,
	download_url, description, youtube_url, photo_url, game,
	hardware::text, views, downloads`

// PresetFilter задаёт фильтры и порядок выдачи списка пресетов.
// nil-поля означают, что фильтр не применяется.
type PresetFilter struct {
	// Hardware точное совпадение типа оборудования
	Hardware *model.Hardware
	// Game совпадение имени игры без учёта регистра
	Game *string
	// Sort обязательный порядок сортировки
	Sort model.SortOrder
}

// PresetRepository описывает CRUD для таблицы presets.
type PresetRepository interface {
	// GetByID возвращает пресет по UUID или ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Preset, error)
	// List возвращает отфильтрованные пресеты в детерминированном порядке.
	List(ctx context.Context, filter PresetFilter) ([]*model.Preset, error)
	// Create вставляет пресет и заполняет поля, назначенные базой.
	Create(ctx context.Context, p *model.Preset) error
	// Delete удаляет пресет. ErrNotFound, если строки не было.
	Delete(ctx context.Context, id string) error
}

type presetRepo struct {
	db DBTX
}

// NewPresetRepository создаёт репозиторий пресетов.
func NewPresetRepository(db DBTX) PresetRepository {
	return &presetRepo{db: db}
}

func (r *presetRepo) GetByID(ctx context.Context, id string) (*model.Preset, error) {
	query := fmt.Sprintf(`SELECT %s FROM presets WHERE preset_id = $1`, presetColumns)

	p, err := scanPreset(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения пресета: %w", err)
	}
	return p, nil
}

func (r *presetRepo) List(ctx context.Context, filter PresetFilter) ([]*model.Preset, error) {
	orderBy, err := buildPresetOrderBy(filter.Sort)
	if err != nil {
		return nil, err
	}
	where, args := buildPresetWhere(filter, 1)

	query := fmt.Sprintf(`SELECT %s FROM presets %s %s`, presetColumns, where, orderBy)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка пресетов: %w", err)
	}
	defer rows.Close()

	result := make([]*model.Preset, 0)
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования пресета: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации результатов: %w", err)
	}
	return result, nil
}

func (r *presetRepo) Create(ctx context.Context, p *model.Preset) error {
	query := fmt.Sprintf(`
		INSERT INTO presets (preset_name, download_url, description, hardware,
			photo_url, youtube_url, game)
		VALUES ($1, $2, $3, $4::hardware_type, $5, $6, $7)
		RETURNING %s`, presetColumns)

	created, err := scanPreset(r.db.QueryRow(ctx, query,
		p.Name, p.DownloadURL, p.Description, string(p.Hardware),
		p.PhotoURL, p.YoutubeURL, p.Game,
	))
	if err != nil {
		return fmt.Errorf("ошибка создания пресета: %w", err)
	}
	*p = *created
	return nil
}

func (r *presetRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM presets WHERE preset_id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления пресета: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanPreset читает строку в порядке presetColumns.
func scanPreset(row rowScanner) (*model.Preset, error) {
	p := &model.Preset{}
	var hardware string
	if err := row.Scan(
		&p.ID, &p.Name, &p.CreatedOn, &p.LastUpdatedOn,
		&p.DownloadURL, &p.Description, &p.YoutubeURL, &p.PhotoURL, &p.Game,
		&hardware, &p.Views, &p.Downloads,
	); err != nil {
		return nil, err
	}
	h, err := model.ParseHardware(hardware)
	if err != nil {
		return nil, fmt.Errorf("hardware %q: %w", hardware, err)
	}
	p.Hardware = h
	return p, nil
}

// buildPresetWhere строит WHERE и аргументы для списка пресетов.
// startArg задаёт номер первого $-параметра.
func buildPresetWhere(filter PresetFilter, startArg int) (whereClause string, args []any) {
	var conditions []string
	argNum := startArg

	if filter.Hardware != nil {
		conditions = append(conditions, fmt.Sprintf("hardware = $%d::hardware_type", argNum))
		args = append(args, string(*filter.Hardware))
		argNum++
	}

	if filter.Game != nil && *filter.Game != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(game) = LOWER($%d)", argNum))
		args = append(args, *filter.Game)
	}

	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}
	return whereClause, args
}

// buildPresetOrderBy строит ORDER BY для порядка сортировки.
// preset_id ASC добавляется последним ключом, чтобы одинаковые значения
// выдавались в одном и том же порядке между запросами.
func buildPresetOrderBy(sort model.SortOrder) (string, error) {
	var column string
	switch sort {
	case model.SortMostPopular:
		column = "views"
	case model.SortMostDownloads:
		column = "downloads"
	case model.SortMostNew:
		column = "created_on"
	default:
		return "", fmt.Errorf("%w: %q", model.ErrUnknownSortOrder, sort)
	}
	return fmt.Sprintf("ORDER BY %s DESC, preset_id ASC", column), nil
}
