package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bigkaa/preset-catalog/internal/api/handlers"
	"github.com/bigkaa/preset-catalog/internal/config"
	"github.com/bigkaa/preset-catalog/internal/service"
)

// newTestRouter собирает маршрутизатор с сервисами без хранилища.
// Проверяемые запросы отклоняются до обращения к repository.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.Default()
	cfg := &config.Config{RequestTimeout: time.Second}

	validator := service.NewValidator()
	cache := service.NewCacheService(10, time.Minute)
	h := handlers.NewAPIHandler(
		handlers.NewHealthHandler(nil, nil),
		service.NewCatalogService(nil, cache, validator, logger),
		service.NewCommentService(nil, validator, logger),
		service.NewDownloadService(nil, cache, logger),
		logger,
	)
	return NewRouter(cfg, h)
}

// TestRouter_NotFound проверяет plain-text 404 для неизвестных маршрутов.
func TestRouter_NotFound(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/", "/api", "/api/unknown", "/api/presets/x/y/z"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: статус = %d, ожидался 404", target, rec.Code)
		}
		if rec.Body.String() != "The requested resource was not found" {
			t.Errorf("%s: тело = %q", target, rec.Body.String())
		}
	}
}

// TestRouter_API проверяет маршрутизацию и ответы без обращения к хранилищу.
func TestRouter_API(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantMsg    string
	}{
		{"список без sort", http.MethodGet, "/api/presets", http.StatusOK, "Please provide a sort order"},
		{"неизвестный sort", http.MethodGet, "/api/presets?sort=Oldest", http.StatusBadRequest, "Invalid sort order"},
		{"некорректный ID", http.MethodGet, "/api/presets/123", http.StatusBadRequest, "Invalid Preset ID"},
		{"удаление с некорректным ID", http.MethodDelete, "/api/presets/abc", http.StatusBadRequest, "Invalid Preset ID"},
		{"комментарии с некорректным ID", http.MethodGet, "/api/presets/abc/comments", http.StatusBadRequest, "Invalid Preset ID"},
		{"скачивание с некорректным ID", http.MethodPost, "/api/presets/abc/downloads", http.StatusBadRequest, "Invalid Preset ID"},
		{"удаление комментария", http.MethodDelete, "/api/comments/zero", http.StatusBadRequest, "Invalid Comment ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("статус = %d, ожидался %d", rec.Code, tt.wantStatus)
			}
			var body struct {
				Error   bool   `json:"error"`
				Message string `json:"message"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("ответ не JSON: %v", err)
			}
			if !body.Error || body.Message != tt.wantMsg {
				t.Errorf("конверт = %+v, ожидалось сообщение %q", body, tt.wantMsg)
			}
		})
	}
}

// TestRouter_HealthLive проверяет health endpoint вне /api.
func TestRouter_HealthLive(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("статус = %d, ожидался 200", rec.Code)
	}
}
