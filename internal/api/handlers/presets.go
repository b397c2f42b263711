// presets.go: обработчики /api/presets endpoints.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bigkaa/preset-catalog/internal/api/envelope"
	"github.com/bigkaa/preset-catalog/internal/domain/model"
	"github.com/bigkaa/preset-catalog/internal/service"
)

// presetDTO: представление пресета в ответах API.
type presetDTO struct {
	ID            string     `json:"preset_id"`
	Name          string     `json:"preset_name"`
	CreatedOn     time.Time  `json:"created_on"`
	LastUpdatedOn *time.Time `json:"last_updated_on"`
	DownloadURL   string     `json:"download_url"`
	Description   string     `json:"description"`
	YoutubeURL    *string    `json:"youtube_url"`
	PhotoURL      *string    `json:"photo_url"`
	Game          *string    `json:"game"`
	Hardware      string     `json:"hardware"`
	Views         int        `json:"views"`
	Downloads     int        `json:"downloads"`
}

func mapPreset(p *model.Preset) presetDTO {
	return presetDTO{
		ID:            p.ID,
		Name:          p.Name,
		CreatedOn:     p.CreatedOn,
		LastUpdatedOn: p.LastUpdatedOn,
		DownloadURL:   p.DownloadURL,
		Description:   p.Description,
		YoutubeURL:    p.YoutubeURL,
		PhotoURL:      p.PhotoURL,
		Game:          p.Game,
		Hardware:      p.Hardware.String(),
		Views:         p.Views,
		Downloads:     p.Downloads,
	}
}

func mapPresets(items []*model.Preset) []presetDTO {
	out := make([]presetDTO, 0, len(items))
	for _, p := range items {
		out = append(out, mapPreset(p))
	}
	return out
}

// GetPreset: GET /api/presets/{id}.
func (h *APIHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, presetMessages, "get_preset", err)
		return
	}
	envelope.Success(w, envelope.KeyPresets, envelope.MsgFoundPresets, mapPreset(p))
}

// ListPresets: GET /api/presets?hardware=&game=&sort=.
// Без sort возвращает 200 с error=true.
func (h *APIHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.catalog.List(r.Context(), service.ListQuery{
		Hardware: q.Get("hardware"),
		Game:     q.Get("game"),
		Sort:     q.Get("sort"),
	})
	if err != nil {
		h.writeServiceError(w, r, presetMessages, "list_presets", err)
		return
	}
	envelope.Success(w, envelope.KeyPresets, envelope.MsgFoundPresets, mapPresets(items))
}

// CreatePreset: POST /api/presets.
// Ответ содержит последовательность из одного созданного пресета.
func (h *APIHandler) CreatePreset(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePresetInput
	if err := decodeJSON(w, r, &req); err != nil {
		envelope.ValidationError(w, envelope.KeyPresets, envelope.MsgInvalidBody)
		return
	}

	p, err := h.catalog.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, presetMessages, "create_preset", err)
		return
	}
	envelope.Success(w, envelope.KeyPresets, envelope.MsgInsertedPreset, []presetDTO{mapPreset(p)})
}

// DeletePreset: DELETE /api/presets/{id}.
func (h *APIHandler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, presetMessages, "delete_preset", err)
		return
	}
	envelope.Success(w, envelope.KeyPresets, envelope.MsgRemovedPreset, nil)
}
