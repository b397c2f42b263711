// comments.go: обработчики комментариев к пресетам.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bigkaa/preset-catalog/internal/api/envelope"
	"github.com/bigkaa/preset-catalog/internal/domain/model"
	"github.com/bigkaa/preset-catalog/internal/service"
)

// commentDTO: представление комментария в ответах API.
type commentDTO struct {
	ID        int64     `json:"comment_id"`
	PresetID  string    `json:"preset_id"`
	IPAddr    string    `json:"ip_addr"`
	Text      string    `json:"text"`
	CreatedOn time.Time `json:"created_on"`
}

func mapComment(c *model.Comment) commentDTO {
	return commentDTO{
		ID:        c.ID,
		PresetID:  c.PresetID,
		IPAddr:    c.IPAddr,
		Text:      c.Text,
		CreatedOn: c.CreatedOn,
	}
}

// SubmitComment: POST /api/presets/{id}/comments.
func (h *APIHandler) SubmitComment(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitCommentInput
	if err := decodeJSON(w, r, &req); err != nil {
		envelope.ValidationError(w, envelope.KeyComments, envelope.MsgInvalidBody)
		return
	}

	// Ошибки пресета (ID, not found) сообщаются в терминах пресета.
	c, err := h.comments.Submit(r.Context(), chi.URLParam(r, "id"), clientIP(r), req)
	if err != nil {
		h.writeServiceError(w, r, errorMessages{
			key:       envelope.KeyComments,
			invalidID: envelope.MsgInvalidPresetID,
			notFound:  envelope.MsgPresetNotFound,
		}, "submit_comment", err)
		return
	}
	envelope.Success(w, envelope.KeyComments, envelope.MsgInsertedComment, []commentDTO{mapComment(c)})
}

// ListComments: GET /api/presets/{id}/comments.
func (h *APIHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	items, err := h.comments.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, errorMessages{
			key:       envelope.KeyComments,
			invalidID: envelope.MsgInvalidPresetID,
			notFound:  envelope.MsgPresetNotFound,
		}, "list_comments", err)
		return
	}

	out := make([]commentDTO, 0, len(items))
	for _, c := range items {
		out = append(out, mapComment(c))
	}
	envelope.Success(w, envelope.KeyComments, envelope.MsgFoundComments, out)
}

// DeleteComment: DELETE /api/comments/{comment_id}.
func (h *APIHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.comments.Delete(r.Context(), chi.URLParam(r, "comment_id")); err != nil {
		h.writeServiceError(w, r, commentMessages, "delete_comment", err)
		return
	}
	envelope.Success(w, envelope.KeyComments, envelope.MsgRemovedComment, nil)
}
