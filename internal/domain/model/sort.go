package model

import (
	"errors"
	"strings"
)

// ErrUnknownSortOrder возвращается для неизвестного порядка сортировки.
var ErrUnknownSortOrder = errors.New("неизвестный порядок сортировки")

// SortOrder задаёт обязательный порядок выдачи списка пресетов.
type SortOrder string

// Поддерживаемые порядки сортировки.
const (
	// SortMostPopular: по просмотрам, по убыванию.
	SortMostPopular SortOrder = "MostPopular"
	// SortMostDownloads: по скачиваниям, по убыванию.
	SortMostDownloads SortOrder = "MostDownloads"
	// SortMostNew: по дате создания, сначала новые.
	SortMostNew SortOrder = "MostNew"
)

// ParseSortOrder разбирает порядок сортировки без учёта регистра.
func ParseSortOrder(s string) (SortOrder, error) {
	for _, o := range []SortOrder{SortMostPopular, SortMostDownloads, SortMostNew} {
		if strings.EqualFold(s, string(o)) {
			return o, nil
		}
	}
	return "", ErrUnknownSortOrder
}
