// Пакет envelope: единый формат ответов API каталога.
// Формат: {"error": bool, "message": "...", "<key>": payload|null}.
// error=true всегда означает payload=null. Все JSON-ответы API пишутся через Write.
package envelope

import (
	"encoding/json"
	"net/http"
)

// Ключи полезной нагрузки для ресурсов API.
const (
	KeyPresets  = "presets"
	KeyComments = "comments"
	KeyDownload = "download"
)

// Сообщения клиентского контракта.
const (
	MsgFoundPresets     = "Successfully found presets"
	MsgInsertedPreset   = "Successfully inserted preset"
	MsgRemovedPreset    = "Successfully removed preset"
	MsgInvalidPresetID  = "Invalid Preset ID"
	MsgPresetNotFound   = "Preset not found"
	MsgSortRequired     = "Please provide a sort order"
	MsgInvalidSort      = "Invalid sort order"
	MsgUnknownHardware  = "Unknown Hardware Type Provided"
	MsgInvalidBody      = "Invalid request body"
	MsgInternalError    = "There was an error"
	MsgFoundComments    = "Successfully found comments"
	MsgInsertedComment  = "Successfully inserted comment"
	MsgRemovedComment   = "Successfully removed comment"
	MsgInvalidCommentID = "Invalid Comment ID"
	MsgCommentNotFound  = "Comment not found"
	MsgRecordedDownload = "Successfully recorded download"
	MsgResourceNotFound = "The requested resource was not found"
)

// Write записывает конверт с указанным статусом.
// payload == nil сериализуется как null.
func Write(w http.ResponseWriter, statusCode int, key string, isError bool, message string, payload any) {
	if isError {
		payload = nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":   isError,
		"message": message,
		key:       payload,
	})
}

// Success: 200 с полезной нагрузкой (nil для удаления).
func Success(w http.ResponseWriter, key, message string, payload any) {
	Write(w, http.StatusOK, key, false, message, payload)
}

// Error: конверт ошибки с указанным статусом.
func Error(w http.ResponseWriter, statusCode int, key, message string) {
	Write(w, statusCode, key, true, message, nil)
}

// --- Конструкторы для типичных ошибок ---

// ValidationError: 400 некорректные входные данные.
func ValidationError(w http.ResponseWriter, key, message string) {
	Error(w, http.StatusBadRequest, key, message)
}

// NotFound: 404 ресурс не найден.
func NotFound(w http.ResponseWriter, key, message string) {
	Error(w, http.StatusNotFound, key, message)
}

// InternalError: 500 ошибка хранилища. Причина клиенту не раскрывается.
func InternalError(w http.ResponseWriter, key string) {
	Error(w, http.StatusInternalServerError, key, MsgInternalError)
}

// SortRequired отвечает 200 с error=true, если не указан порядок сортировки.
func SortRequired(w http.ResponseWriter) {
	Error(w, http.StatusOK, KeyPresets, MsgSortRequired)
}

// RouteNotFound: 404 text/plain для несуществующих маршрутов.
func RouteNotFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(MsgResourceNotFound))
}
