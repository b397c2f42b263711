// errors.go: ошибки бизнес-логики сервисного слоя.
package service

import "errors"

var (
	// ErrNotFound: ресурс не найден.
	ErrNotFound = errors.New("ресурс не найден")
	// ErrValidation: ошибка валидации входных данных.
	ErrValidation = errors.New("ошибка валидации")
	// ErrSortRequired: не указан порядок сортировки списка.
	ErrSortRequired = errors.New("не указан порядок сортировки")
)
