package validator

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/coverage-planner/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Имена полей в ошибках берём из json-тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate - валидация структуры, ошибки приводятся к INVALID_REQUEST
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	fields := make(map[string]interface{}, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Namespace()] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"fields": fields,
	})
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
