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

// TestDownloadService_Record проверяет фиксацию скачивания и инвалидацию кэша.
func TestDownloadService_Record(t *testing.T) {
	repo := &mockDownloadRepo{
		recordFn: func(_ context.Context, d *model.Download) error {
			d.ID = 1
			d.CreatedAt = time.Now()
			return nil
		},
	}
	cache := NewCacheService(10, time.Minute)
	putPreset(cache, &model.Preset{ID: testPresetID, Downloads: 0})
	svc := NewDownloadService(repo, cache, slog.Default())

	d, err := svc.Record(context.Background(), testPresetID, netip.MustParseAddr("2001:db8::1"))
	if err != nil {
		t.Fatalf("Record() ошибка: %v", err)
	}
	if d.IPAddr != "2001:db8::1" || d.PresetID != testPresetID {
		t.Errorf("download = %+v", d)
	}
	if _, ok := cache.Get(testPresetID); ok {
		t.Error("запись осталась в кэше после скачивания")
	}
}

// TestDownloadService_Record_Errors проверяет некорректный ID и отсутствие пресета.
func TestDownloadService_Record_Errors(t *testing.T) {
	repo := &mockDownloadRepo{}
	svc := NewDownloadService(repo, NewCacheService(10, time.Minute), slog.Default())
	ip := netip.MustParseAddr("10.0.0.1")

	if _, err := svc.Record(context.Background(), "nope", ip); !errors.Is(err, ErrValidation) {
		t.Errorf("ошибка = %v, ожидалась ErrValidation", err)
	}
	if repo.calls != 0 {
		t.Errorf("хранилище вызвано %d раз, ожидалось 0", repo.calls)
	}

	repo.recordFn = func(_ context.Context, _ *model.Download) error { return repository.ErrNotFound }
	if _, err := svc.Record(context.Background(), testPresetID, ip); !errors.Is(err, ErrNotFound) {
		t.Errorf("ошибка = %v, ожидалась ErrNotFound", err)
	}
}

// TestDownloadService_Record_ConcurrentGet проверяет, что чтение, начатое до
// скачивания, не кэширует старое значение счётчика.
func TestDownloadService_Record_ConcurrentGet(t *testing.T) {
	read := make(chan struct{})
	release := make(chan struct{})

	downloads := 0
	presets := &mockPresetRepo{}
	presets.getByIDFn = func(_ context.Context, id string) (*model.Preset, error) {
		p := &model.Preset{ID: id, Hardware: model.HardwareHeadset, Downloads: downloads}
		if downloads == 0 {
			read <- struct{}{}
			<-release
		}
		return p, nil
	}
	recorder := &mockDownloadRepo{
		recordFn: func(_ context.Context, d *model.Download) error {
			downloads++
			d.ID = int64(downloads)
			return nil
		},
	}

	cache := NewCacheService(10, time.Minute)
	catalog := NewCatalogService(presets, cache, NewValidator(), slog.Default())
	svc := NewDownloadService(recorder, cache, slog.Default())

	done := make(chan error, 1)
	go func() {
		_, err := catalog.Get(context.Background(), testPresetID)
		done <- err
	}()

	<-read
	if _, err := svc.Record(context.Background(), testPresetID, netip.MustParseAddr("10.0.0.1")); err != nil {
		t.Fatalf("Record() ошибка: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("Get() ошибка: %v", err)
	}

	p, err := catalog.Get(context.Background(), testPresetID)
	if err != nil {
		t.Fatalf("Get() ошибка: %v", err)
	}
	if p.Downloads != 1 {
		t.Errorf("Downloads = %d, ожидалось 1", p.Downloads)
	}
}
