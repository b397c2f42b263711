// comments.go: сервис комментариев к пресетам.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/bigkaa/preset-catalog/internal/domain/model"
	"github.com/bigkaa/preset-catalog/internal/repository"
)

// SubmitCommentInput: запрос на добавление комментария.
type SubmitCommentInput struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
}

// CommentService: сервис комментариев.
type CommentService struct {
	comments  repository.CommentRepository
	validator *Validator
	logger    *slog.Logger
}

// NewCommentService создаёт сервис комментариев.
func NewCommentService(
	comments repository.CommentRepository,
	validator *Validator,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		comments:  comments,
		validator: validator,
		logger:    logger.With(slog.String("component", "comment_service")),
	}
}

// Submit добавляет комментарий к пресету от клиента с адресом ip.
func (s *CommentService) Submit(ctx context.Context, rawPresetID string, ip netip.Addr, in SubmitCommentInput) (comment *model.Comment, err error) {
	defer observe("comment_submit", time.Now(), &err)

	presetID, err := model.ParseID(rawPresetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	c := &model.Comment{
		PresetID: presetID,
		IPAddr:   ip.Unmap().String(),
		Text:     strings.TrimSpace(in.Text),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("добавление комментария: %w", err)
	}

	s.logger.Debug("Комментарий добавлен",
		slog.String("preset_id", presetID),
		slog.Int64("comment_id", c.ID),
	)
	return c, nil
}

// List возвращает комментарии пресета, старые первыми.
func (s *CommentService) List(ctx context.Context, rawPresetID string) (comments []*model.Comment, err error) {
	defer observe("comment_list", time.Now(), &err)

	presetID, err := model.ParseID(rawPresetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	items, err := s.comments.ListByPreset(ctx, presetID)
	if err != nil {
		return nil, fmt.Errorf("список комментариев: %w", err)
	}
	return items, nil
}

// Delete удаляет комментарий. Отсутствующий комментарий даёт ErrNotFound.
func (s *CommentService) Delete(ctx context.Context, rawCommentID string) (err error) {
	defer observe("comment_delete", time.Now(), &err)

	id, err := strconv.ParseInt(rawCommentID, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, model.ErrInvalidID)
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("удаление комментария: %w", err)
	}

	s.logger.Info("Комментарий удалён", slog.Int64("comment_id", id))
	return nil
}
