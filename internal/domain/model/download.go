package model

import "time"

// Download фиксирует одно скачивание пресета. Записи не изменяются.
type Download struct {
	ID        int64
	PresetID  string
	IPAddr    string
	CreatedAt time.Time
}
