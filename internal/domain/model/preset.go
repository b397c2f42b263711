package model

import "time"

// Preset описывает одну опубликованную конфигурацию оборудования.
// ID, CreatedOn и счётчики назначаются базой данных при создании.
type Preset struct {
	// ID (UUID), назначается при создании и не меняется
	ID string
	// Name отображаемое имя пресета
	Name string
	// CreatedOn время создания
	CreatedOn time.Time
	// LastUpdatedOn время последнего изменения (nil, если изменений не было)
	LastUpdatedOn *time.Time
	// DownloadURL ссылка на файл пресета
	DownloadURL string
	// Description описание пресета
	Description string
	// YoutubeURL ссылка на видео (опционально)
	YoutubeURL *string
	// PhotoURL ссылка на фото (опционально)
	PhotoURL *string
	// Game игра, для которой предназначен пресет (опционально)
	Game *string
	// Hardware тип оборудования
	Hardware Hardware
	// Views счётчик просмотров, не убывает
	Views int
	// Downloads счётчик скачиваний, не убывает
	Downloads int
}
