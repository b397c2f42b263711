// downloads.go: обработчик фиксации скачиваний.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bigkaa/preset-catalog/internal/api/envelope"
)

// downloadDTO: представление события скачивания в ответах API.
type downloadDTO struct {
	ID        int64     `json:"download_id"`
	PresetID  string    `json:"preset_id"`
	IPAddr    string    `json:"ip_addr"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordDownload: POST /api/presets/{id}/downloads.
func (h *APIHandler) RecordDownload(w http.ResponseWriter, r *http.Request) {
	d, err := h.downloads.Record(r.Context(), chi.URLParam(r, "id"), clientIP(r))
	if err != nil {
		h.writeServiceError(w, r, errorMessages{
			key:       envelope.KeyDownload,
			invalidID: envelope.MsgInvalidPresetID,
			notFound:  envelope.MsgPresetNotFound,
		}, "record_download", err)
		return
	}
	envelope.Success(w, envelope.KeyDownload, envelope.MsgRecordedDownload, downloadDTO{
		ID:        d.ID,
		PresetID:  d.PresetID,
		IPAddr:    d.IPAddr,
		CreatedAt: d.CreatedAt,
	})
}
