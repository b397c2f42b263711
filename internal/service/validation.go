// validation.go: валидация входных структур через go-playground/validator.
// Имена полей в сообщениях берутся из json-тегов.
package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bigkaa/preset-catalog/internal/domain/model"
)

// Validator: обёртка над validator.Validate с пользовательскими правилами.
type Validator struct {
	validate *validator.Validate
}

// NewValidator создаёт валидатор с json-именами полей и правилами
// notblank и hardware.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank: строка содержит хотя бы один непробельный символ.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// hardware: строка разбирается в один из типов оборудования.
	_ = v.RegisterValidation("hardware", func(fl validator.FieldLevel) bool {
		_, err := model.ParseHardware(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Struct проверяет структуру. Возвращает ошибку, обёрнутую в ErrValidation,
// с сообщением о первом нарушенном правиле.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe.Field(), fe.Tag(), fe.Param()),
		}
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// ValidationError описывает нарушение правила валидации одного поля.
// errors.Is(err, ErrValidation) для неё возвращает true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap связывает ошибку с ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// validationMessage возвращает клиентское сообщение для нарушенного тега.
func validationMessage(field, tag, param string) string {
	switch tag {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "hardware":
		return "Unknown Hardware Type Provided"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
