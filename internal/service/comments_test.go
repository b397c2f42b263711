package service

import (
	"context"
	"errors"
	"log/slog"
	"net/netip"
	"testing"
	"time"

	"github.com/bigkaa/preset-catalog/internal/domain/model"
	"github.com/bigkaa/preset-catalog/internal/repository"
)

// TestCommentService_Submit проверяет добавление комментария.
func TestCommentService_Submit(t *testing.T) {
	repo := &mockCommentRepo{
		createFn: func(_ context.Context, c *model.Comment) error {
			c.ID = 7
			c.CreatedOn = time.Now()
			return nil
		},
	}
	svc := NewCommentService(repo, NewValidator(), slog.Default())

	ip := netip.MustParseAddr("::ffff:10.0.0.1")
	c, err := svc.Submit(context.Background(), testPresetID, ip, SubmitCommentInput{Text: "  хорошо  "})
	if err != nil {
		t.Fatalf("Submit() ошибка: %v", err)
	}
	if c.ID != 7 || c.PresetID != testPresetID {
		t.Errorf("comment = %+v", c)
	}
	if c.IPAddr != "10.0.0.1" {
		t.Errorf("IPAddr = %q, ожидался 10.0.0.1", c.IPAddr)
	}
	if c.Text != "хорошо" {
		t.Errorf("Text = %q, ожидался обрезанный текст", c.Text)
	}
}

// TestCommentService_Submit_Errors проверяет ошибки добавления.
func TestCommentService_Submit_Errors(t *testing.T) {
	ip := netip.MustParseAddr("10.0.0.1")

	repo := &mockCommentRepo{}
	svc := NewCommentService(repo, NewValidator(), slog.Default())

	if _, err := svc.Submit(context.Background(), "bad", ip, SubmitCommentInput{Text: "x"}); !errors.Is(err, ErrValidation) {
		t.Errorf("некорректный ID: ошибка = %v, ожидалась ErrValidation", err)
	}
	if _, err := svc.Submit(context.Background(), testPresetID, ip, SubmitCommentInput{Text: " "}); !errors.Is(err, ErrValidation) {
		t.Errorf("пустой текст: ошибка = %v, ожидалась ErrValidation", err)
	}
	if repo.calls != 0 {
		t.Errorf("хранилище вызвано %d раз, ожидалось 0", repo.calls)
	}

	repo.createFn = func(_ context.Context, _ *model.Comment) error { return repository.ErrNotFound }
	if _, err := svc.Submit(context.Background(), testPresetID, ip, SubmitCommentInput{Text: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("нет пресета: ошибка = %v, ожидалась ErrNotFound", err)
	}
}

// TestCommentService_Delete проверяет удаление комментария.
func TestCommentService_Delete(t *testing.T) {
	var deleted int64
	repo := &mockCommentRepo{
		deleteFn: func(_ context.Context, id int64) error {
			if id == 404 {
				return repository.ErrNotFound
			}
			deleted = id
			return nil
		},
	}
	svc := NewCommentService(repo, NewValidator(), slog.Default())

	if err := svc.Delete(context.Background(), "12"); err != nil {
		t.Fatalf("Delete() ошибка: %v", err)
	}
	if deleted != 12 {
		t.Errorf("удалён %d, ожидался 12", deleted)
	}
	if err := svc.Delete(context.Background(), "404"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ошибка = %v, ожидалась ErrNotFound", err)
	}
	for _, raw := range []string{"abc", "0", "-1"} {
		if err := svc.Delete(context.Background(), raw); !errors.Is(err, ErrValidation) {
			t.Errorf("Delete(%q) = %v, ожидалась ErrValidation", raw, err)
		}
	}
}

// TestCommentService_List проверяет список комментариев.
func TestCommentService_List(t *testing.T) {
	repo := &mockCommentRepo{
		listByPresetFn: func(_ context.Context, presetID string) ([]*model.Comment, error) {
			return []*model.Comment{{ID: 1, PresetID: presetID}}, nil
		},
	}
	svc := NewCommentService(repo, NewValidator(), slog.Default())

	items, err := svc.List(context.Background(), testPresetID)
	if err != nil {
		t.Fatalf("List() ошибка: %v", err)
	}
	if len(items) != 1 || items[0].PresetID != testPresetID {
		t.Errorf("items = %v", items)
	}
}
