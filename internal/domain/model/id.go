package model

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidID возвращается, если идентификатор не является UUID.
var ErrInvalidID = errors.New("некорректный идентификатор")

// ParseID проверяет формат идентификатора записи и возвращает
// его каноническое представление.
func ParseID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
