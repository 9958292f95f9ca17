// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports json field names and knows the provider catalog
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return fld.Name
	})

	// provider: the value is a catalog provider id
	_ = v.RegisterValidation("provider", func(fl validator.FieldLevel) bool {
		_, ok := entity.LookupProvider(fl.Field().String())

		return ok
	})

	return &Validator{validate: v}
}

// Validate returns ErrValidationFailed describing the first failing field
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok || len(validationErrors) == 0 {
		return errors.Wrap(err, "validate request")
	}

	return domainerrors.ErrValidationFailed.WithDetails(describe(validationErrors[0]))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Field())
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s long", fe.Field(), fe.Param())
	case "provider":
		return fmt.Sprintf("field '%s' must be a known provider id", fe.Field())
	default:
		return fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag())
	}
}
