package service

import (
	"context"

	"github.com/bigkaa/preset-catalog/internal/domain/model"
	"github.com/bigkaa/preset-catalog/internal/repository"
)

// mockPresetRepo: мок PresetRepository для unit-тестов.
type mockPresetRepo struct {
	getByIDFn func(ctx context.Context, id string) (*model.Preset, error)
	listFn    func(ctx context.Context, filter repository.PresetFilter) ([]*model.Preset, error)
	createFn  func(ctx context.Context, p *model.Preset) error
	deleteFn  func(ctx context.Context, id string) error

	calls int
}

func (m *mockPresetRepo) GetByID(ctx context.Context, id string) (*model.Preset, error) {
	m.calls++
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockPresetRepo) List(ctx context.Context, filter repository.PresetFilter) ([]*model.Preset, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []*model.Preset{}, nil
}

func (m *mockPresetRepo) Create(ctx context.Context, p *model.Preset) error {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return nil
}

func (m *mockPresetRepo) Delete(ctx context.Context, id string) error {
	m.calls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockCommentRepo: мок CommentRepository.
type mockCommentRepo struct {
	createFn       func(ctx context.Context, c *model.Comment) error
	listByPresetFn func(ctx context.Context, presetID string) ([]*model.Comment, error)
	deleteFn       func(ctx context.Context, commentID int64) error

	calls int
}

func (m *mockCommentRepo) Create(ctx context.Context, c *model.Comment) error {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return nil
}

func (m *mockCommentRepo) ListByPreset(ctx context.Context, presetID string) ([]*model.Comment, error) {
	m.calls++
	if m.listByPresetFn != nil {
		return m.listByPresetFn(ctx, presetID)
	}
	return []*model.Comment{}, nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, commentID int64) error {
	m.calls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, commentID)
	}
	return nil
}

// mockDownloadRepo: мок DownloadRepository.
type mockDownloadRepo struct {
	recordFn func(ctx context.Context, d *model.Download) error

	calls int
}

func (m *mockDownloadRepo) Record(ctx context.Context, d *model.Download) error {
	m.calls++
	if m.recordFn != nil {
		return m.recordFn(ctx, d)
	}
	return nil
}
