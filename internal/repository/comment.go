package repository

import (
	"context"
	"fmt"

	"github.com/bigkaa/preset-catalog/internal/domain/model"
)

const commentColumns = `comment_id, preset_id, host(ip_addr), text, created_on`

// CommentRepository описывает доступ к таблице comments.
type CommentRepository interface {
	// Create сохраняет комментарий. ErrNotFound, если пресета нет.
	Create(ctx context.Context, c *model.Comment) error
	// ListByPreset возвращает комментарии пресета, старые первыми.
	ListByPreset(ctx context.Context, presetID string) ([]*model.Comment, error)
	// Delete удаляет комментарий. ErrNotFound, если строки не было.
	Delete(ctx context.Context, commentID int64) error
}

type commentRepo struct {
	db DBTX
}

// NewCommentRepository создаёт репозиторий комментариев.
func NewCommentRepository(db DBTX) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, c *model.Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO comments (preset_id, ip_addr, text)
		VALUES ($1, $2::inet, $3)
		RETURNING %s`, commentColumns)

	err := r.db.QueryRow(ctx, query, c.PresetID, c.IPAddr, c.Text).Scan(
		&c.ID, &c.PresetID, &c.IPAddr, &c.Text, &c.CreatedOn,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка создания комментария: %w", err)
	}
	return nil
}

func (r *commentRepo) ListByPreset(ctx context.Context, presetID string) ([]*model.Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM comments
		WHERE preset_id = $1
		ORDER BY created_on ASC, comment_id ASC`, commentColumns)

	rows, err := r.db.Query(ctx, query, presetID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения комментариев: %w", err)
	}
	defer rows.Close()

	result := make([]*model.Comment, 0)
	for rows.Next() {
		c := &model.Comment{}
		if err := rows.Scan(&c.ID, &c.PresetID, &c.IPAddr, &c.Text, &c.CreatedOn); err != nil {
			return nil, fmt.Errorf("ошибка сканирования комментария: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *commentRepo) Delete(ctx context.Context, commentID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("ошибка удаления комментария: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
